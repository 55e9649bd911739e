package parser

import "github.com/bbarker/listnr-tools/internal/leaf"

// Walker produces the ordered leaf sequence of a document.
//
// Implementations must be total over arbitrary UTF-8 input: malformed markup
// degrades to plain text, it never fails. The returned slice is in depth-first
// document order and callers must treat it as read-only.
type Walker interface {
	Extract(src []byte) []leaf.Leaf
}
