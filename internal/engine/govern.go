// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

// DefaultMaxResults caps the shown result list when neither the filter
// state nor the engine config sets a limit.
const DefaultMaxResults = 1000

// Finalized is the governed tail of a search: the truncated list plus the
// true match count for percentage statistics.
type Finalized struct {
	// Shown holds the first maxResults entries of the sorted list.
	Shown []UnifiedResult

	// ActualCount is the match count before truncation. Statistics must
	// use this, never len(Shown).
	ActualCount int

	// Truncated reports whether results were cut at the cap.
	Truncated bool
}

// Finalize truncates a sorted result list to maxResults entries while
// preserving the true match count (prd011-search-engine R4.4).
func Finalize(sorted []UnifiedResult, maxResults int) Finalized {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	f := Finalized{
		Shown:       sorted,
		ActualCount: len(sorted),
		Truncated:   len(sorted) > maxResults,
	}
	if f.Truncated {
		f.Shown = sorted[:maxResults]
	}
	return f
}
