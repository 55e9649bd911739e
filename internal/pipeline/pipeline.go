package pipeline

import (
	"errors"
	"unicode/utf8"

	"github.com/bbarker/listnr-tools/internal/chunker"
	"github.com/bbarker/listnr-tools/internal/config"
	"github.com/bbarker/listnr-tools/internal/leaf"
	"github.com/bbarker/listnr-tools/internal/parser"
	"github.com/bbarker/listnr-tools/internal/subst"
)

// ErrInvalidUTF8 is returned for input that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("document is not valid UTF-8")

// Pipeline runs one document through substitution, structural parsing, code
// block elision and chunk accumulation. It holds no mutable state: the same
// Pipeline can process any number of documents, one synchronous pass each.
type Pipeline struct {
	Table    *subst.Table // Optional; nil means no substitutions.
	Walker   parser.Walker
	Elision  chunker.ElisionConfig
	Chunking chunker.Config
}

// New builds a Pipeline over the markdown walker from a config and an
// optional substitution table.
func New(table *subst.Table, cfg config.Config) *Pipeline {
	return &Pipeline{
		Table:  table,
		Walker: &parser.MarkdownWalker{},
		Elision: chunker.ElisionConfig{
			Threshold:   cfg.ElisionThreshold,
			Placeholder: cfg.ElisionPlaceholder,
		},
		Chunking: chunker.Config{
			Limit:     cfg.Limit,
			Separator: cfg.Separator,
		},
	}
}

// Run transforms one document into its chunk sequence. Substitutions apply
// to the raw text before parsing, elision applies to code block leaves only.
func (p *Pipeline) Run(content string) []leaf.Chunk {
	content = p.Table.Apply(content)

	leaves := p.Walker.Extract([]byte(content))

	payloads := make([]string, 0, len(leaves))
	for _, l := range leaves {
		s := l.Payload
		if l.Kind == leaf.CodeBlock {
			s = p.Elision.Elide(s)
		}
		payloads = append(payloads, s)
	}

	texts := chunker.Accumulate(payloads, p.Chunking)

	chunks := make([]leaf.Chunk, len(texts))
	for i, t := range texts {
		chunks[i] = leaf.Chunk{
			Index:  i,
			Text:   t,
			Length: utf8.RuneCountInString(t),
		}
	}
	return chunks
}

// RunBytes rejects input that is not valid UTF-8 before processing. Both the
// CLI and the HTTP server route raw file or body bytes through here.
func (p *Pipeline) RunBytes(content []byte) ([]leaf.Chunk, error) {
	if !utf8.Valid(content) {
		return nil, ErrInvalidUTF8
	}
	return p.Run(string(content)), nil
}
