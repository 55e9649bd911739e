package parser

import (
	"bytes"

	"github.com/bbarker/listnr-tools/internal/leaf"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownWalker flattens a goldmark AST into the ordered leaf sequence.
//
// Only nodes carrying literal text yield a leaf: text runs, code spans, and
// code blocks. Structural containers (headings, lists, emphasis, ...)
// contribute nothing themselves but their descendants are still visited.
// Embedded HTML is degraded to its plain text content rather than dropped.
type MarkdownWalker struct{}

func (mw *MarkdownWalker) Extract(src []byte) []leaf.Leaf {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var leaves []leaf.Leaf
	add := func(kind leaf.Kind, payload string) {
		if payload != "" {
			leaves = append(leaves, leaf.Leaf{Kind: kind, Payload: payload})
		}
	}

	// The walk callback never returns an error, so neither does ast.Walk.
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			add(leaf.Text, string(node.Value(src)))
		case *ast.CodeSpan:
			add(leaf.InlineCode, inlineText(node, src))
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			add(leaf.CodeBlock, blockLines(node, src))
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			add(leaf.CodeBlock, blockLines(node, src))
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock:
			add(leaf.Text, htmlText(blockLines(node, src)))
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			add(leaf.Text, htmlText(rawSegments(node, src)))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return leaves
}

// inlineText concatenates the text children of an inline node (a code span's
// literal content).
func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
		}
	}
	return buf.String()
}

// blockLines joins the raw source lines of a block node, newlines included.
func blockLines(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(src))
	}
	return buf.String()
}

func rawSegments(n *ast.RawHTML, src []byte) string {
	var buf bytes.Buffer
	for i := 0; i < n.Segments.Len(); i++ {
		s := n.Segments.At(i)
		buf.Write(s.Value(src))
	}
	return buf.String()
}
