package chunker

import (
	"strings"
	"unicode/utf8"
)

// Config controls chunk accumulation.
type Config struct {
	Limit     int    // Maximum chunk length in characters.
	Separator string // Joiner between adjacent leaves within a chunk. Empty concatenates directly.
}

// DefaultConfig returns the production defaults: 1500-character chunks
// joined by a single space.
func DefaultConfig() Config {
	return Config{
		Limit:     1500,
		Separator: " ",
	}
}

// Accumulate merges ordered leaf payloads into bounded chunks.
//
// A single buffer grows until the next payload would push it past the limit,
// at which point the buffer is emitted and restarted. A payload that alone
// exceeds the limit is never split: it becomes an oversized single-leaf
// chunk. Output order matches input order, and identical inputs always yield
// an identical result; no state survives between calls.
func Accumulate(payloads []string, cfg Config) []string {
	if cfg.Limit <= 0 {
		cfg.Limit = 1500
	}
	sepLen := utf8.RuneCountInString(cfg.Separator)

	var chunks []string
	var buf strings.Builder
	bufLen := 0 // rune length of buf

	for _, s := range payloads {
		if s == "" {
			continue
		}
		n := utf8.RuneCountInString(s)

		if bufLen > 0 && bufLen+sepLen+n > cfg.Limit {
			chunks = append(chunks, buf.String())
			buf.Reset()
			bufLen = 0
		}
		if bufLen > 0 {
			buf.WriteString(cfg.Separator)
			bufLen += sepLen
		}
		buf.WriteString(s)
		bufLen += n
	}

	if bufLen > 0 {
		chunks = append(chunks, buf.String())
	}
	return chunks
}
