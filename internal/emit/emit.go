// Package emit writes chunk records to an output stream.
package emit

import (
	"fmt"
	"io"

	"github.com/bbarker/listnr-tools/internal/leaf"
)

const delimiter = "--- --- ---"

// Write renders one record per chunk: a separator line carrying the chunk's
// character length, the chunk text, then a blank line.
func Write(w io.Writer, chunks []leaf.Chunk) error {
	for _, c := range chunks {
		if _, err := fmt.Fprintf(w, "%s %d %s\n%s\n\n", delimiter, c.Length, delimiter, c.Text); err != nil {
			return err
		}
	}
	return nil
}
