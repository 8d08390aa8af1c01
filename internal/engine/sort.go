// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/sirajlabs/siraj/pkg/types"
)

// collatorLanguage fixes the collation locale. Titles are English chapter
// names and fact headlines; the engine does not localize per caller.
var collatorLanguage = language.English

// sortResults orders the merged result list in place by the selected key.
// The sort is stable: equal keys preserve prior relative order. Descending
// order negates the ascending comparator result rather than reversing the
// sorted slice, which would break stability on ties.
func (e *Engine) sortResults(results []UnifiedResult, key types.SortKey, order types.SortOrder) {
	cmp := e.comparatorFor(key)
	sort.SliceStable(results, func(i, j int) bool {
		c := cmp(results[i], results[j])
		if order == types.SortDesc {
			c = -c
		}
		return c < 0
	})
}

// comparator returns negative when a orders before b under ascending order.
type comparator func(a, b UnifiedResult) int

func (e *Engine) comparatorFor(key types.SortKey) comparator {
	switch key {
	case types.SortByTitle:
		return e.compareTitles
	case types.SortByCorpus:
		return func(a, b UnifiedResult) int {
			return strings.Compare(string(a.Corpus), string(b.Corpus))
		}
	case types.SortBySource:
		return func(a, b UnifiedResult) int {
			return strings.Compare(a.SourceLabel, b.SourceLabel)
		}
	case types.SortByNumber:
		return e.compareNumbers
	default:
		// Relevance is descending-biased: higher scores order first under
		// ascending order. With no query every record scores 100 and the
		// sort degenerates to insertion order.
		return func(a, b UnifiedResult) int {
			return b.Relevance - a.Relevance
		}
	}
}

// compareTitles uses locale-aware collation rather than raw byte order.
func (e *Engine) compareTitles(a, b UnifiedResult) int {
	return e.collator.CompareString(a.Title, b.Title)
}

// compareNumbers orders by the corpus-specific numeric key, falling back
// to title comparison when either side has no numeric key.
func (e *Engine) compareNumbers(a, b UnifiedResult) int {
	ka, aok := numericKey(a)
	kb, bok := numericKey(b)
	if !aok || !bok {
		return e.compareTitles(a, b)
	}
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	default:
		return 0
	}
}

// numericKey extracts the per-corpus numeric sort key: global verse number
// for verses, parsed sequence number for narrations, year revealed for facts.
func numericKey(r UnifiedResult) (int, bool) {
	switch p := r.Payload.(type) {
	case types.VerseRecord:
		return p.GlobalVerse, true
	case types.NarrationRecord:
		n, err := strconv.Atoi(strings.TrimSpace(p.Number))
		return n, err == nil
	case types.FactRecord:
		if p.YearRevealed != 0 {
			return p.YearRevealed, true
		}
	}
	return 0, false
}

// newCollator builds the collator used for title comparison. Loose
// comparison ignores case and diacritics so transliterated chapter names
// sort next to their plain-ASCII spellings.
func newCollator() *collate.Collator {
	return collate.New(collatorLanguage, collate.Loose)
}
