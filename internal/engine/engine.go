// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine implements the unified cross-corpus search and filtering
// engine: a synchronous, in-memory scan-and-score design over the fact,
// verse, and narration corpora. Every search call operates on fresh
// normalized copies of the corpus snapshots; no state survives between
// calls.
// Implements: prd011-search-engine (R1-R5);
//
//	docs/ARCHITECTURE § Search Engine.
package engine

import (
	"context"
	"fmt"

	"golang.org/x/text/collate"

	"github.com/sirajlabs/siraj/pkg/types"
)

// CorpusReader yields corpus snapshots. Implementations may apply coarse
// filtering from the hints as an optimization, but the engine re-applies
// the full predicate set so correctness never depends on store-side
// filtering being complete.
type CorpusReader interface {
	FetchFacts(ctx context.Context, hints types.FilterState) ([]types.FactRecord, error)
	FetchVerses(ctx context.Context, hints types.FilterState) ([]types.VerseRecord, error)
	FetchNarrations(ctx context.Context, hints types.FilterState) ([]types.NarrationRecord, error)
}

// CorpusCounter is an optional CorpusReader upgrade that reports full
// per-corpus record counts. When available the engine uses these counts
// as the percentage-of-total denominator so store-side filter pushdown
// does not skew statistics; otherwise it falls back to snapshot lengths.
type CorpusCounter interface {
	Counts(ctx context.Context) (map[types.CorpusType]int, error)
}

// UnifiedResult is one entry of the merged, ranked result list. It is
// constructed per call and carries no identity across calls.
type UnifiedResult struct {
	NormalizedRecord

	// Position is the 1-based rank within the shown results.
	Position int `json:"position" yaml:"position"`
}

// Output is the result of one search call.
type Output struct {
	// Results is the sorted, truncated unified result list.
	Results []UnifiedResult `json:"results" yaml:"results"`

	// ActualCount is the true match count before truncation.
	ActualCount int `json:"actual_count" yaml:"actual_count"`

	// PerCorpus subtotals the matches by corpus, before truncation.
	PerCorpus map[types.CorpusType]int `json:"per_corpus" yaml:"per_corpus"`

	// TotalAvailable is the number of records in the enabled corpora.
	TotalAvailable int `json:"total_available" yaml:"total_available"`

	// PercentageOfTotal is ActualCount/TotalAvailable*100 formatted with
	// one decimal, "0.0" when no records are available.
	PercentageOfTotal string `json:"percentage_of_total" yaml:"percentage_of_total"`

	// Truncated reports whether Results was cut at the result cap.
	Truncated bool `json:"truncated" yaml:"truncated"`

	// NoCorporaSelected distinguishes "nothing was searched" from
	// "nothing matched". When set, no corpus was read or scanned.
	NoCorporaSelected bool `json:"no_corpora_selected" yaml:"no_corpora_selected"`
}

// Engine is the search orchestrator. It is safe for sequential reuse;
// concurrent supersession is handled by Session.
type Engine struct {
	reader     CorpusReader
	collator   *collate.Collator
	maxResults int
}

// New builds an engine over the given corpus reader.
func New(reader CorpusReader, cfg types.EngineConfig) *Engine {
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &Engine{
		reader:     reader,
		collator:   newCollator(),
		maxResults: maxResults,
	}
}

// Search runs one committed search: fetch enabled corpora, normalize,
// filter, score against the tokenized query, merge, sort, truncate.
// An empty corpus selection short-circuits before any corpus read.
// A corpus-read failure aborts the call with a CorpusError.
func (e *Engine) Search(ctx context.Context, query string, filters types.FilterState) (Output, error) {
	filters = filters.Canonical()

	if len(filters.Corpora) == 0 {
		return Output{
			Results:           []UnifiedResult{},
			PerCorpus:         map[types.CorpusType]int{},
			PercentageOfTotal: "0.0",
			NoCorporaSelected: true,
		}, nil
	}

	candidates, totalAvailable, err := e.gather(ctx, filters)
	if err != nil {
		return Output{}, err
	}

	tokens := Tokenize(query)

	merged := make([]UnifiedResult, 0, len(candidates))
	perCorpus := make(map[types.CorpusType]int, len(filters.Corpora))
	for _, rec := range candidates {
		rec.Relevance = Score(rec, tokens)
		// A zero score with a live query means no token matched anywhere.
		if rec.Relevance == 0 && len(tokens) > 0 {
			continue
		}
		perCorpus[rec.Corpus]++
		merged = append(merged, UnifiedResult{NormalizedRecord: rec})
	}

	e.sortResults(merged, filters.SortBy, filters.Order)

	maxResults := filters.MaxResults
	if maxResults <= 0 {
		maxResults = e.maxResults
	}
	final := Finalize(merged, maxResults)
	for i := range final.Shown {
		final.Shown[i].Position = i + 1
	}

	return Output{
		Results:           final.Shown,
		ActualCount:       final.ActualCount,
		PerCorpus:         perCorpus,
		TotalAvailable:    totalAvailable,
		PercentageOfTotal: percentage(final.ActualCount, totalAvailable),
		Truncated:         final.Truncated,
	}, nil
}

// gather fetches, normalizes, and filters each enabled corpus and returns
// the merged candidate list plus the available-record denominator.
func (e *Engine) gather(ctx context.Context, filters types.FilterState) ([]NormalizedRecord, int, error) {
	var candidates []NormalizedRecord
	totalAvailable := 0

	if filters.Selected(types.CorpusFact) {
		facts, err := e.reader.FetchFacts(ctx, filters)
		if err != nil {
			return nil, 0, &CorpusError{Corpus: types.CorpusFact, Err: err}
		}
		totalAvailable += len(facts)
		recs := make([]NormalizedRecord, len(facts))
		for i, f := range facts {
			recs[i] = NormalizeFact(f)
		}
		candidates = append(candidates, ApplyFilters(recs, filters)...)
	}

	if filters.Selected(types.CorpusVerse) {
		verses, err := e.reader.FetchVerses(ctx, filters)
		if err != nil {
			return nil, 0, &CorpusError{Corpus: types.CorpusVerse, Err: err}
		}
		totalAvailable += len(verses)
		recs := make([]NormalizedRecord, len(verses))
		for i, v := range verses {
			recs[i] = NormalizeVerse(v)
		}
		candidates = append(candidates, ApplyFilters(recs, filters)...)
	}

	if filters.Selected(types.CorpusNarration) {
		narrations, err := e.reader.FetchNarrations(ctx, filters)
		if err != nil {
			return nil, 0, &CorpusError{Corpus: types.CorpusNarration, Err: err}
		}
		totalAvailable += len(narrations)
		recs := make([]NormalizedRecord, len(narrations))
		for i, n := range narrations {
			recs[i] = NormalizeNarration(n)
		}
		candidates = append(candidates, ApplyFilters(recs, filters)...)
	}

	// Prefer full corpus counts when the store can report them, so that
	// hint pushdown never shrinks the statistics denominator.
	if counter, ok := e.reader.(CorpusCounter); ok {
		counts, err := counter.Counts(ctx)
		if err == nil {
			full := 0
			for _, c := range filters.Corpora {
				full += counts[c]
			}
			if full > 0 {
				totalAvailable = full
			}
		}
	}

	return candidates, totalAvailable, nil
}

// percentage formats matched/total*100, guarding division by zero.
func percentage(matched, total int) string {
	if total == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(matched)/float64(total)*100)
}
