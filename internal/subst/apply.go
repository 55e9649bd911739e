package subst

import "strings"

// Apply rewrites text by a single left-to-right scan. At each position the
// longest matching From among all rules wins; the replacement text is never
// rescanned, so one rule's To cannot trigger another rule (non-cascading).
// A nil or empty table is the identity transform.
func (t *Table) Apply(text string) string {
	if t == nil || len(t.rules) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		matched := false
		for _, r := range t.rules {
			if strings.HasPrefix(text[i:], r.From) {
				b.WriteString(r.To)
				i += len(r.From)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(text[i])
			i++
		}
	}

	return b.String()
}
