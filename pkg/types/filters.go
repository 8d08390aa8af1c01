// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SortKey selects the ordering of a unified result list.
// Per prd011-search-engine R4.1.
type SortKey string

const (
	// SortByRelevance orders by the computed relevance score, highest first
	// under ascending order.
	SortByRelevance SortKey = "relevance"

	// SortByTitle orders by title using locale-aware collation.
	SortByTitle SortKey = "title"

	// SortByCorpus orders by corpus type tag.
	SortByCorpus SortKey = "type"

	// SortBySource orders by display source label.
	SortBySource SortKey = "source"

	// SortByNumber orders by the corpus-specific numeric key (narration
	// sequence number, global verse number, fact year revealed). Records
	// without a numeric key fall back to title comparison.
	SortByNumber SortKey = "number"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// FilterState carries every user-selected narrowing criterion across the
// three corpora. The zero value of each dimension means "no restriction";
// an empty selection list never means "exclude everything". Range bounds
// use zero for "unset".
// Per prd011-search-engine R3.1-R3.8.
type FilterState struct {
	// Corpora selects which corpora participate in the search. An empty
	// selection yields zero results without scanning any corpus.
	Corpora []CorpusType `json:"corpora" yaml:"corpora"`

	// Categories restricts facts by topic category.
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`

	// FulfillmentStatuses restricts facts by fulfillment status.
	FulfillmentStatuses []string `json:"fulfillment_statuses,omitempty" yaml:"fulfillment_statuses,omitempty"`

	// ClaimCategories restricts facts by kind of claim.
	ClaimCategories []string `json:"claim_categories,omitempty" yaml:"claim_categories,omitempty"`

	// YearMin and YearMax bound the fact year range, inclusive. A fact
	// passes when either its revealed or its fulfilled year is in range.
	YearMin int `json:"year_min,omitempty" yaml:"year_min,omitempty"`
	YearMax int `json:"year_max,omitempty" yaml:"year_max,omitempty"`

	// Chapters restricts verses by chapter number. Selections are kept as
	// strings and compared against the decimal chapter number.
	Chapters []string `json:"chapters,omitempty" yaml:"chapters,omitempty"`

	// VerseMin and VerseMax bound the within-chapter verse number, inclusive.
	VerseMin int `json:"verse_min,omitempty" yaml:"verse_min,omitempty"`
	VerseMax int `json:"verse_max,omitempty" yaml:"verse_max,omitempty"`

	// Revelations restricts verses by place of revelation.
	Revelations []string `json:"revelations,omitempty" yaml:"revelations,omitempty"`

	// SajdahOnly keeps only verses with the prostration flag set.
	SajdahOnly bool `json:"sajdah_only,omitempty" yaml:"sajdah_only,omitempty"`

	// NarrationMin and NarrationMax bound the numeric narration sequence
	// number, inclusive. Narrations with non-numeric sequence numbers fail
	// an active range test.
	NarrationMin int `json:"narration_min,omitempty" yaml:"narration_min,omitempty"`
	NarrationMax int `json:"narration_max,omitempty" yaml:"narration_max,omitempty"`

	// NarrationChapters restricts narrations by chapter/topic label.
	NarrationChapters []string `json:"narration_chapters,omitempty" yaml:"narration_chapters,omitempty"`

	// SortBy selects the result ordering. Empty means relevance.
	SortBy SortKey `json:"sort_by,omitempty" yaml:"sort_by,omitempty"`

	// Order is the sort direction. Empty means ascending.
	Order SortOrder `json:"order,omitempty" yaml:"order,omitempty"`

	// MaxResults caps the number of results returned to the caller.
	// Zero or negative uses the engine default.
	MaxResults int `json:"max_results,omitempty" yaml:"max_results,omitempty"`
}

// Canonical returns a copy of the filter state with invalid values coerced
// to the nearest valid ones: swapped range bounds are reordered so min <= max,
// and missing sort settings fall back to relevance ascending. Invalid input
// never raises; it is repaired (prd011-search-engine R3.8).
func (f FilterState) Canonical() FilterState {
	c := f
	c.YearMin, c.YearMax = orderedRange(f.YearMin, f.YearMax)
	c.VerseMin, c.VerseMax = orderedRange(f.VerseMin, f.VerseMax)
	c.NarrationMin, c.NarrationMax = orderedRange(f.NarrationMin, f.NarrationMax)
	if c.SortBy == "" {
		c.SortBy = SortByRelevance
	}
	if c.Order != SortDesc {
		c.Order = SortAsc
	}
	return c
}

// orderedRange swaps bounds that arrive reversed. Zero means "unset" and is
// never swapped against a set bound.
func orderedRange(min, max int) (int, int) {
	if min != 0 && max != 0 && min > max {
		return max, min
	}
	return min, max
}

// Selected reports whether the given corpus participates in the search.
func (f FilterState) Selected(c CorpusType) bool {
	for _, sel := range f.Corpora {
		if sel == c {
			return true
		}
	}
	return false
}
