package search

import (
	"slices"

	"github.com/samber/lo"
)

// Match is a document together with its relevance score.
type Match struct {
	Document Document `json:"document"`
	Score    int      `json:"score"`
}

// ScoreDocument scores the full document text and adds the score of the
// tags alone, so tag hits weigh double.
func ScoreDocument(query string, d Document) int {
	return Score(query, d.Haystack()) + Score(query, d.TagText())
}

// Rank returns the documents that match query, best first. Documents with
// equal scores keep their input order.
func Rank(query string, docs []Document) []Match {
	if Normalize(query) == "" {
		return []Match{}
	}

	scored := lo.Map(docs, func(d Document, _ int) Match {
		return Match{Document: d, Score: ScoreDocument(query, d)}
	})
	matches := lo.Filter(scored, func(m Match, _ int) bool { return m.Score > 0 })
	slices.SortStableFunc(matches, func(a, b Match) int { return b.Score - a.Score })
	return matches
}
