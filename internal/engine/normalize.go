// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"fmt"
	"strings"

	"github.com/sirajlabs/siraj/pkg/types"
)

// NormalizedRecord is the corpus-agnostic projection the engine scans.
// It is built fresh per search call, never mutated and never cached
// across calls (prd011-search-engine R1.4).
type NormalizedRecord struct {
	// ID is the corpus-prefixed record identifier (e.g. "verse-2583").
	ID string `json:"id" yaml:"id"`

	// Corpus tags which record shape Payload holds. Immutable; it
	// determines which filter predicates apply.
	Corpus types.CorpusType `json:"corpus" yaml:"corpus"`

	// Title is the display headline. May be empty; scoring and display
	// tolerate empty titles.
	Title string `json:"title" yaml:"title"`

	// SearchText is the concatenation of the record's textual fields.
	SearchText string `json:"search_text" yaml:"search_text"`

	// SourceLabel is the human-readable provenance label.
	SourceLabel string `json:"source_label" yaml:"source_label"`

	// Payload is the original source record.
	Payload types.SourceRecord `json:"payload" yaml:"payload"`

	// Relevance is the textual match strength in [0,100]. It defaults to
	// 100 and is overwritten by the scorer when a query is present.
	Relevance int `json:"relevance" yaml:"relevance"`
}

// NormalizeFact projects a fact record into the searchable shape.
// Missing fields become empty strings; a record is never rejected for
// absent data (prd011-search-engine R1.2).
func NormalizeFact(f types.FactRecord) NormalizedRecord {
	var cit types.Citation
	if f.Citation != nil {
		cit = *f.Citation
	}
	label := cit.Primary
	if label == "" {
		label = f.Category
	}
	return NormalizedRecord{
		ID:     "fact-" + f.ID,
		Corpus: types.CorpusFact,
		Title:  f.Title,
		SearchText: joinPresent(
			f.Note,
			cit.Primary,
			cit.Verification,
			cit.Methodology,
			f.FulfillmentEvidence,
			f.ClaimCategory,
		),
		SourceLabel: label,
		Payload:     f,
		Relevance:   maxScore,
	}
}

// NormalizeVerse projects a verse record into the searchable shape.
func NormalizeVerse(v types.VerseRecord) NormalizedRecord {
	return NormalizedRecord{
		ID:     fmt.Sprintf("verse-%d", v.GlobalVerse),
		Corpus: types.CorpusVerse,
		Title:  strings.TrimSpace(fmt.Sprintf("%s %d", v.ChapterName, v.Verse)),
		SearchText: joinPresent(
			v.Translation,
			v.ArabicText,
			v.ChapterName,
			v.ChapterNameArabic,
			v.ChapterNameTranslit,
			v.Revelation,
		),
		SourceLabel: fmt.Sprintf("Qur'an %d:%d", v.Chapter, v.Verse),
		Payload:     v,
		Relevance:   maxScore,
	}
}

// NormalizeNarration projects a narration record into the searchable shape.
func NormalizeNarration(n types.NarrationRecord) NormalizedRecord {
	return NormalizedRecord{
		ID:     "narration-" + n.Number,
		Corpus: types.CorpusNarration,
		Title:  strings.TrimSpace("Narration " + n.Number),
		SearchText: joinPresent(
			n.Text,
			n.ArabicText,
			n.Translation,
			n.Narrator,
			n.Collection,
			n.Chapter,
		),
		SourceLabel: n.Collection,
		Payload:     n,
		Relevance:   maxScore,
	}
}

// joinPresent joins the non-empty fields with single spaces.
func joinPresent(fields ...string) string {
	kept := make([]string, 0, len(fields))
	for _, f := range fields {
		if s := strings.TrimSpace(f); s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, " ")
}
