package subst

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
)

// Rule rewrites every occurrence of a literal substring.
type Rule struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Table is a set of substitution rules with unique From keys, held in
// application order: longest From first, ties broken lexicographically.
// The fixed order makes the result independent of how the rules were
// supplied, even when keys overlap.
type Table struct {
	rules []Rule
}

// NewTable builds a Table from rules. An empty or duplicate From is an error.
func NewTable(rules []Rule) (*Table, error) {
	seen := make(map[string]bool, len(rules))
	ordered := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.From == "" {
			return nil, fmt.Errorf("substitution rule with empty from")
		}
		if seen[r.From] {
			return nil, fmt.Errorf("duplicate substitution key %q", r.From)
		}
		seen[r.From] = true
		ordered = append(ordered, r)
	}

	sort.Slice(ordered, func(i, j int) bool {
		if len(ordered[i].From) != len(ordered[j].From) {
			return len(ordered[i].From) > len(ordered[j].From)
		}
		return ordered[i].From < ordered[j].From
	})

	return &Table{rules: ordered}, nil
}

// Len reports the number of rules in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rules)
}

// LoadCSV reads a two-column substitution file (from,to). The first row is a
// header and is discarded. Rows that do not have exactly two fields are
// skipped; skipped is how many were. A file that cannot be opened or read is
// an error.
func LoadCSV(path string) (table *Table, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open substitutions: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("parse substitutions: %w", err)
	}

	var rules []Rule
	for i, record := range records {
		if i == 0 {
			continue // header
		}
		if len(record) != 2 {
			skipped++
			continue
		}
		rules = append(rules, Rule{From: record[0], To: record[1]})
	}

	table, err = NewTable(rules)
	if err != nil {
		return nil, skipped, fmt.Errorf("substitutions %s: %w", path, err)
	}
	return table, skipped, nil
}
