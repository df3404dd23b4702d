package search

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Summarize writes the canned blurb for a query and its matches: a count
// sentence, one hint per matching category and a closing tip, one per line.
func Summarize(table *Table, query string, matches []Match) string {
	if strings.TrimSpace(query) == "" {
		return table.Summary.Prompt
	}

	base, tip := table.Summary.NotFound, table.Summary.TipNotFound
	if len(matches) > 0 {
		base, tip = fmt.Sprintf(table.Summary.Found, len(matches)), table.Summary.TipFound
	}

	hints := lo.FilterMap(table.Matching(Normalize(query)), func(c *Category, _ int) (string, bool) {
		return c.Hint, c.Hint != ""
	})

	lines := []string{base}
	if len(hints) > 0 {
		lines = append(lines, strings.Join(hints, " "))
	}
	lines = append(lines, tip)
	return strings.Join(lines, "\n")
}
