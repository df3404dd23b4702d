// Package search ranks posts and replies against a free-text query and
// derives refinement chips and a short summary from the matches.
package search

import (
	"strings"
	"unicode/utf8"
)

const (
	// ExactScore is awarded when the whole query occurs in the text.
	ExactScore = 100
	// TokenScore is awarded for each query token found in the text.
	TokenScore = 12
	// MinTokenLength is the shortest token, in characters, that is scored.
	MinTokenLength = 2
)

// Normalize trims s and lowercases it.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Score rates how well text matches query. An exact phrase match scores
// ExactScore; otherwise every query token of at least MinTokenLength
// characters that occurs in text adds TokenScore.
func Score(query, text string) int {
	q := Normalize(query)
	if q == "" {
		return 0
	}
	t := Normalize(text)
	if strings.Contains(t, q) {
		return ExactScore
	}

	score := 0
	for _, token := range strings.Fields(q) {
		if utf8.RuneCountInString(token) < MinTokenLength {
			continue
		}
		if strings.Contains(t, token) {
			score += TokenScore
		}
	}
	return score
}
