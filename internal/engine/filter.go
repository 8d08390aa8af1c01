// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"strconv"
	"strings"

	"github.com/sirajlabs/siraj/pkg/types"
)

// ApplyFilters narrows candidates to those matching every active dimension
// of the filter state. Dimensions are AND'd; an empty selection list or a
// zero range is a no-op. Predicates defined for one record shape pass
// records of other shapes through unaffected, so applying the same filter
// twice yields the same set (prd011-search-engine R3.1-R3.7).
func ApplyFilters(candidates []NormalizedRecord, filters types.FilterState) []NormalizedRecord {
	out := make([]NormalizedRecord, 0, len(candidates))
	for _, rec := range candidates {
		if matchesFilters(rec, filters) {
			out = append(out, rec)
		}
	}
	return out
}

func matchesFilters(rec NormalizedRecord, f types.FilterState) bool {
	// Corpus inclusion runs before any shape-specific rule.
	if !f.Selected(rec.Corpus) {
		return false
	}

	switch p := rec.Payload.(type) {
	case types.FactRecord:
		return matchesFact(p, f)
	case types.VerseRecord:
		return matchesVerse(p, f)
	case types.NarrationRecord:
		return matchesNarration(p, f)
	}
	return true
}

func matchesFact(fact types.FactRecord, f types.FilterState) bool {
	if !inSelection(f.Categories, fact.Category) {
		return false
	}
	if !inSelection(f.FulfillmentStatuses, fact.FulfillmentStatus) {
		return false
	}
	if !inSelection(f.ClaimCategories, fact.ClaimCategory) {
		return false
	}
	// Inclusive-OR across the two year fields: the record passes when
	// either year falls in range. An absent year is zero and simply fails
	// its own check without excluding the record.
	if rangeActive(f.YearMin, f.YearMax) {
		if !yearInRange(fact.YearRevealed, f.YearMin, f.YearMax) &&
			!yearInRange(fact.YearFulfilled, f.YearMin, f.YearMax) {
			return false
		}
	}
	return true
}

func matchesVerse(v types.VerseRecord, f types.FilterState) bool {
	// Chapter selections are string-compared against the decimal number.
	if !inSelection(f.Chapters, strconv.Itoa(v.Chapter)) {
		return false
	}
	if rangeActive(f.VerseMin, f.VerseMax) && !inRange(v.Verse, f.VerseMin, f.VerseMax) {
		return false
	}
	if !inSelection(f.Revelations, v.Revelation) {
		return false
	}
	if f.SajdahOnly && !v.Sajdah {
		return false
	}
	return true
}

func matchesNarration(n types.NarrationRecord, f types.FilterState) bool {
	if rangeActive(f.NarrationMin, f.NarrationMax) {
		// Non-numeric sequence numbers fail an active range test.
		num, err := strconv.Atoi(strings.TrimSpace(n.Number))
		if err != nil || !inRange(num, f.NarrationMin, f.NarrationMax) {
			return false
		}
	}
	if !inSelection(f.NarrationChapters, n.Chapter) {
		return false
	}
	return true
}

// inSelection reports membership, treating an empty selection as
// "no restriction on this dimension".
func inSelection(selection []string, value string) bool {
	if len(selection) == 0 {
		return true
	}
	for _, s := range selection {
		if strings.EqualFold(s, value) {
			return true
		}
	}
	return false
}

// yearInRange requires a known (nonzero) year inside the bounds. An
// absent year never satisfies an active range, even one with only an
// upper bound set.
func yearInRange(year, min, max int) bool {
	return year != 0 && inRange(year, min, max)
}

// rangeActive reports whether either bound of a range is set.
func rangeActive(min, max int) bool {
	return min != 0 || max != 0
}

// inRange tests min <= v <= max with zero bounds treated as open ends.
func inRange(v, min, max int) bool {
	if min != 0 && v < min {
		return false
	}
	if max != 0 && v > max {
		return false
	}
	return true
}
