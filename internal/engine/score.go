// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"strings"
	"unicode/utf8"
)

// maxScore is the relevance ceiling. Scores are clamped, not normalized;
// ties at the ceiling are expected and resolved by the sort stage.
const maxScore = 100

// Scoring weights (prd011-search-engine R2.2).
const (
	occurrenceWeight = 10
	presenceBonus    = 50
	titleBonus       = 100
)

// Tokenize splits a raw query into lowercase whitespace-delimited terms,
// dropping empties. An empty or whitespace-only query yields no tokens,
// which Score treats as "match everything with full relevance".
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// Score computes the relevance of a normalized record against a token
// list. Matching is OR across tokens: any token appearing anywhere in the
// search text is sufficient for inclusion. Each token contributes
// occurrences x token length x 10, a flat +50 when it appears at all, and
// a flat +100 when it appears in the title. The sum is clamped to 100.
//
// With no tokens every record scores 100. With tokens, a score of 0 means
// the record matched nothing and is excluded from results.
func Score(rec NormalizedRecord, tokens []string) int {
	if len(tokens) == 0 {
		return maxScore
	}

	text := strings.ToLower(rec.SearchText)
	title := strings.ToLower(rec.Title)

	score := 0
	for _, tok := range tokens {
		if n := strings.Count(text, tok); n > 0 {
			score += n*utf8.RuneCountInString(tok)*occurrenceWeight + presenceBonus
		}
		if strings.Contains(title, tok) {
			score += titleBonus
		}
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}
