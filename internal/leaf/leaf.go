package leaf

// Kind classifies the text-bearing units extracted from a parsed document.
type Kind int

const (
	// Text is a plain text run from any structural context (paragraph,
	// heading, list item, emphasis, ...).
	Text Kind = iota
	// InlineCode is a backtick code span.
	InlineCode
	// CodeBlock is a fenced or indented code listing.
	CodeBlock
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case InlineCode:
		return "inline_code"
	case CodeBlock:
		return "code_block"
	}
	return "unknown"
}

// Leaf is one text-bearing unit of a document. Position is implicit:
// leaves appear in depth-first document order and are never reordered.
type Leaf struct {
	Kind    Kind
	Payload string
}

// Chunk is a sized text segment produced by the accumulator, ready for output.
type Chunk struct {
	Index  int    `json:"index"`  // Sequence number within the document.
	Text   string `json:"text"`   // One or more joined leaf payloads.
	Length int    `json:"length"` // Length of Text in characters (runes).
}
