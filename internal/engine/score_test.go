// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import "testing"

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty", "", nil},
		{"whitespace only", "  \t \n ", nil},
		{"lowercases and splits", "Honey  BEES", []string{"honey", "bees"}},
		{"trims runs of whitespace", " one\ttwo\n three ", []string{"one", "two", "three"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScoreNoQueryPassThrough(t *testing.T) {
	// With no tokens every record scores the full 100.
	recs := []NormalizedRecord{
		{Title: "anything", SearchText: "some text"},
		{},
	}
	for _, rec := range recs {
		if got := Score(rec, nil); got != 100 {
			t.Errorf("Score(%+v, nil) = %d, want 100", rec, got)
		}
	}
}

func TestScoreFormulaAndClamp(t *testing.T) {
	// "honey" twice in the text plus title match:
	// 2 x 5 x 10 + 50 + 100 = 250, clamped to 100.
	rec := NormalizedRecord{
		Title:      "Honey and Healing",
		SearchText: "honey was prescribed; the honey cured him",
	}
	if got := Score(rec, []string{"honey"}); got != 100 {
		t.Errorf("score = %d, want 100 (clamped)", got)
	}
}

func TestScoreBelowCeiling(t *testing.T) {
	// One occurrence of a two-rune token, no title match:
	// 1 x 2 x 10 + 50 = 70.
	rec := NormalizedRecord{
		Title:      "unrelated",
		SearchText: "an ox pulled the cart",
	}
	if got := Score(rec, []string{"ox"}); got != 70 {
		t.Errorf("score = %d, want 70", got)
	}
}

func TestScoreTitleBonusWithoutTextMatch(t *testing.T) {
	// Title-only match earns the +100 bonus even when the search text
	// contains no occurrence.
	rec := NormalizedRecord{
		Title:      "Narration 77",
		SearchText: "completely different words",
	}
	if got := Score(rec, []string{"77"}); got != 100 {
		t.Errorf("score = %d, want 100", got)
	}
}

func TestScoreNonMatchingReturnsZero(t *testing.T) {
	// The scorer itself returns 0 for a non-matching record; exclusion is
	// the orchestrator's job.
	rec := NormalizedRecord{Title: "alpha", SearchText: "beta gamma"}
	if got := Score(rec, []string{"zzz"}); got != 0 {
		t.Errorf("score = %d, want 0", got)
	}
}

func TestScoreMonotonicUnderAddedTokens(t *testing.T) {
	// OR-matching with additive bonuses: adding a token never decreases
	// the score.
	rec := NormalizedRecord{
		Title:      "Mountains as Pegs",
		SearchText: "mountains stabilize the crust like pegs",
	}
	base := []string{"zzz"}
	added := [][]string{
		{"zzz", "qqq"},
		{"zzz", "pegs"},
		{"zzz", "pegs", "mountains"},
	}
	prev := Score(rec, base)
	for _, tokens := range added {
		got := Score(rec, tokens)
		if got < prev {
			t.Errorf("Score(%v) = %d, decreased from %d", tokens, got, prev)
		}
		prev = got
	}
}

func TestScoreCaseInsensitive(t *testing.T) {
	rec := NormalizedRecord{
		Title:      "IRON from the sky",
		SearchText: "And We sent down Iron with great strength",
	}
	// Tokens arrive lowercased from Tokenize.
	if got := Score(rec, []string{"iron"}); got != 100 {
		t.Errorf("score = %d, want 100", got)
	}
}

func TestScoreArabicTokenLength(t *testing.T) {
	// Token length counts runes, not bytes: one occurrence of a
	// three-rune Arabic token scores 1 x 3 x 10 + 50 = 80.
	rec := NormalizedRecord{SearchText: "قال عسل طيب"}
	if got := Score(rec, []string{"عسل"}); got != 80 {
		t.Errorf("score = %d, want 80", got)
	}
}
