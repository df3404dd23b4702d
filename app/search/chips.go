package search

import (
	"strings"

	"github.com/samber/lo"
)

const (
	// ChipSourceMatches is how many top matches contribute their tags.
	ChipSourceMatches = 6
	// MaxChips caps the number of suggested chips.
	MaxChips = 10
)

// ExtractChips suggests refinement tags: first the chips of the categories
// the query falls into, then the tags of the best matches. Duplicates are
// dropped and the list is cut to MaxChips.
func ExtractChips(table *Table, query string, matches []Match) []string {
	var chips []string
	for _, c := range table.Matching(Normalize(query)) {
		if c.Chip != "" {
			chips = append(chips, c.Chip)
		}
	}
	for _, m := range matches[:min(len(matches), ChipSourceMatches)] {
		chips = append(chips, m.Document.Tags...)
	}

	chips = lo.Uniq(chips)
	if len(chips) > MaxChips {
		chips = chips[:MaxChips]
	}
	return chips
}

// RefineQuery appends chip to query, the way tapping a chip does.
func RefineQuery(query, chip string) string {
	q := strings.TrimSpace(query)
	if q == "" {
		return chip
	}
	if chip == "" {
		return q
	}
	return q + " " + chip
}
