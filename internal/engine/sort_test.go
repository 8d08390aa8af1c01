// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"fmt"
	"testing"

	"github.com/sirajlabs/siraj/pkg/types"
)

func testEngine() *Engine {
	return New(nil, types.EngineConfig{})
}

func result(id, title, source string, relevance int, payload types.SourceRecord) UnifiedResult {
	corpus := types.CorpusType("")
	if payload != nil {
		corpus = payload.Corpus()
	}
	return UnifiedResult{NormalizedRecord: NormalizedRecord{
		ID: id, Corpus: corpus, Title: title, SourceLabel: source,
		Relevance: relevance, Payload: payload,
	}}
}

func resultIDs(rs []UnifiedResult) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func assertOrder(t *testing.T, rs []UnifiedResult, want ...string) {
	t.Helper()
	got := resultIDs(rs)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSortByTitle(t *testing.T) {
	e := testEngine()
	rs := []UnifiedResult{
		result("b", "banana", "", 100, nil),
		result("a", "Apple", "", 100, nil),
		result("c", "cherry", "", 100, nil),
	}

	e.sortResults(rs, types.SortByTitle, types.SortAsc)
	assertOrder(t, rs, "a", "b", "c")

	e.sortResults(rs, types.SortByTitle, types.SortDesc)
	assertOrder(t, rs, "c", "b", "a")
}

func TestSortStabilityOnTies(t *testing.T) {
	// Records with identical keys keep their input order, for every key
	// and both directions. Descending must negate the comparator, not
	// reverse the sorted slice.
	mk := func() []UnifiedResult {
		return []UnifiedResult{
			result("first", "same", "src", 50, nil),
			result("second", "same", "src", 50, nil),
			result("third", "same", "src", 50, nil),
		}
	}

	e := testEngine()
	keys := []types.SortKey{types.SortByTitle, types.SortByCorpus, types.SortBySource, types.SortByNumber, types.SortByRelevance}
	for _, key := range keys {
		for _, order := range []types.SortOrder{types.SortAsc, types.SortDesc} {
			t.Run(fmt.Sprintf("%s/%s", key, order), func(t *testing.T) {
				rs := mk()
				e.sortResults(rs, key, order)
				assertOrder(t, rs, "first", "second", "third")
			})
		}
	}
}

func TestSortByCorpusAndSource(t *testing.T) {
	e := testEngine()
	rs := []UnifiedResult{
		result("v", "", "Qur'an 2:1", 100, types.VerseRecord{Chapter: 2, Verse: 1, GlobalVerse: 8}),
		result("f", "", "51:47", 100, types.FactRecord{ID: "1"}),
		result("n", "", "Bukhari", 100, types.NarrationRecord{Number: "9"}),
	}

	e.sortResults(rs, types.SortByCorpus, types.SortAsc)
	// fact < narration < verse lexicographically.
	assertOrder(t, rs, "f", "n", "v")

	e.sortResults(rs, types.SortBySource, types.SortAsc)
	// "51:47" < "Bukhari" < "Qur'an 2:1" in byte order.
	assertOrder(t, rs, "f", "n", "v")
}

func TestSortByNumber(t *testing.T) {
	e := testEngine()
	rs := []UnifiedResult{
		result("n2583", "Narration 2583", "", 100, types.NarrationRecord{Number: "2583"}),
		result("n3", "Narration 3", "", 100, types.NarrationRecord{Number: "3"}),
		result("v262", "Al-Baqarah 255", "", 100, types.VerseRecord{GlobalVerse: 262}),
	}

	e.sortResults(rs, types.SortByNumber, types.SortAsc)
	assertOrder(t, rs, "n3", "v262", "n2583")

	e.sortResults(rs, types.SortByNumber, types.SortDesc)
	assertOrder(t, rs, "n2583", "v262", "n3")
}

func TestSortByNumberFallsBackToTitle(t *testing.T) {
	// A non-numeric narration number has no numeric key; comparisons
	// involving it fall back to title order.
	e := testEngine()
	rs := []UnifiedResult{
		result("b", "bravo", "", 100, types.NarrationRecord{Number: "x9"}),
		result("a", "alpha", "", 100, types.NarrationRecord{Number: "12c"}),
	}
	e.sortResults(rs, types.SortByNumber, types.SortAsc)
	assertOrder(t, rs, "a", "b")
}

func TestSortByRelevanceDescendingBias(t *testing.T) {
	// Ascending relevance order puts the highest score first.
	e := testEngine()
	rs := []UnifiedResult{
		result("low", "", "", 30, nil),
		result("high", "", "", 100, nil),
		result("mid", "", "", 70, nil),
	}
	e.sortResults(rs, types.SortByRelevance, types.SortAsc)
	assertOrder(t, rs, "high", "mid", "low")

	e.sortResults(rs, types.SortByRelevance, types.SortDesc)
	assertOrder(t, rs, "low", "mid", "high")
}

func TestSortByRelevanceUniformScoresKeepInsertionOrder(t *testing.T) {
	// With no query every record scores 100 and relevance sorting
	// degenerates to insertion order.
	e := testEngine()
	rs := []UnifiedResult{
		result("one", "z", "", 100, nil),
		result("two", "a", "", 100, nil),
		result("three", "m", "", 100, nil),
	}
	e.sortResults(rs, types.SortByRelevance, types.SortAsc)
	assertOrder(t, rs, "one", "two", "three")
}
