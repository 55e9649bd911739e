package chunker

import "unicode/utf8"

// DefaultElisionThreshold is the longest code listing kept verbatim.
const DefaultElisionThreshold = 80

// DefaultPlaceholder replaces elided listings. Its length is below the
// default threshold, which makes elision idempotent.
const DefaultPlaceholder = "listing omitted; please see the original source"

// ElisionConfig controls replacement of oversized code listings.
// It applies to code block leaves only; text and inline code are never elided.
type ElisionConfig struct {
	Threshold   int    // Listings longer than this many characters are replaced.
	Placeholder string // Replacement text.
}

// DefaultElisionConfig returns the production elision settings.
func DefaultElisionConfig() ElisionConfig {
	return ElisionConfig{
		Threshold:   DefaultElisionThreshold,
		Placeholder: DefaultPlaceholder,
	}
}

// Elide returns the placeholder when payload exceeds the threshold,
// otherwise the payload unchanged.
func (c ElisionConfig) Elide(payload string) string {
	if utf8.RuneCountInString(payload) > c.Threshold {
		return c.Placeholder
	}
	return payload
}
