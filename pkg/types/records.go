// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the siraj search engine.
// Implements: prd010-data-model (SourceRecord union, R1.1-R1.3);
//
//	prd011-search-engine (FilterState, SortKey);
//	prd012-corpus-store (corpus snapshot shapes).
//
// See docs/ARCHITECTURE.md § Data Model.
package types

// CorpusType identifies which of the three knowledge corpora a record
// belongs to. It is the discriminant of the SourceRecord union and is
// immutable once a record is loaded.
type CorpusType string

const (
	CorpusFact      CorpusType = "fact"
	CorpusVerse     CorpusType = "verse"
	CorpusNarration CorpusType = "narration"
)

// AllCorpora lists every corpus type in canonical order.
func AllCorpora() []CorpusType {
	return []CorpusType{CorpusFact, CorpusVerse, CorpusNarration}
}

// SourceRecord is the closed union of the three corpus record shapes.
// Exactly FactRecord, VerseRecord, and NarrationRecord implement it;
// the engine dispatches on the concrete type, never on field sniffing.
type SourceRecord interface {
	// Corpus returns the discriminant for this record shape.
	Corpus() CorpusType
}

// Citation holds the structured source reference attached to a fact.
type Citation struct {
	// Primary is the main reference (book, paper, or verse citation).
	Primary string `json:"primary,omitempty" yaml:"primary,omitempty"`

	// Verification notes how the claim was checked.
	Verification string `json:"verification,omitempty" yaml:"verification,omitempty"`

	// Methodology describes how the supporting evidence was gathered.
	Methodology string `json:"methodology,omitempty" yaml:"methodology,omitempty"`

	// References lists supporting URLs.
	References []string `json:"references,omitempty" yaml:"references,omitempty"`
}

// FactRecord is one curated fact: a short claim with provenance and an
// optional fulfillment history.
type FactRecord struct {
	// ID is the stable identifier of the fact within its corpus.
	ID string `json:"id" yaml:"id"`

	// Category is the fact's topic tag (one of a closed set of categories).
	Category string `json:"category" yaml:"category"`

	// Title is the short display headline.
	Title string `json:"title" yaml:"title"`

	// Note is the free-text body of the fact.
	Note string `json:"note" yaml:"note"`

	// Citation is the structured source reference, when present.
	Citation *Citation `json:"citation,omitempty" yaml:"citation,omitempty"`

	// Status is an optional editorial status tag.
	Status string `json:"status,omitempty" yaml:"status,omitempty"`

	// FulfillmentStatus tags whether the claim is fulfilled, pending, or disputed.
	FulfillmentStatus string `json:"fulfillment_status,omitempty" yaml:"fulfillment_status,omitempty"`

	// FulfillmentEvidence is free text describing what fulfilled the claim.
	FulfillmentEvidence string `json:"fulfillment_evidence,omitempty" yaml:"fulfillment_evidence,omitempty"`

	// ClaimCategory tags the kind of claim (historical, scientific, ...).
	ClaimCategory string `json:"claim_category,omitempty" yaml:"claim_category,omitempty"`

	// YearRevealed is the year the claim was first recorded. Zero when unknown.
	YearRevealed int `json:"year_revealed,omitempty" yaml:"year_revealed,omitempty"`

	// YearFulfilled is the year the claim was fulfilled. Zero when unknown.
	YearFulfilled int `json:"year_fulfilled,omitempty" yaml:"year_fulfilled,omitempty"`
}

// Corpus returns CorpusFact.
func (FactRecord) Corpus() CorpusType { return CorpusFact }

// VerseRecord is one verse of the verse corpus.
type VerseRecord struct {
	// Chapter is the chapter number (1..114).
	Chapter int `json:"chapter" yaml:"chapter"`

	// ChapterName is the English chapter name.
	ChapterName string `json:"chapter_name" yaml:"chapter_name"`

	// ChapterNameArabic is the Arabic chapter name.
	ChapterNameArabic string `json:"chapter_name_arabic,omitempty" yaml:"chapter_name_arabic,omitempty"`

	// ChapterNameTranslit is the transliterated chapter name.
	ChapterNameTranslit string `json:"chapter_name_translit,omitempty" yaml:"chapter_name_translit,omitempty"`

	// Verse is the verse number within its chapter.
	Verse int `json:"verse" yaml:"verse"`

	// GlobalVerse is the verse number across the whole corpus (1..6236).
	GlobalVerse int `json:"global_verse" yaml:"global_verse"`

	// ArabicText is the original Arabic text.
	ArabicText string `json:"arabic_text" yaml:"arabic_text"`

	// Translation is the English translation.
	Translation string `json:"translation" yaml:"translation"`

	// Revelation is the place-of-revelation tag ("meccan" or "medinan").
	Revelation string `json:"revelation,omitempty" yaml:"revelation,omitempty"`

	// Sajdah reports whether the verse requires prostration.
	Sajdah bool `json:"sajdah,omitempty" yaml:"sajdah,omitempty"`

	// WordCount is the number of words in the Arabic text.
	WordCount int `json:"word_count,omitempty" yaml:"word_count,omitempty"`

	// Quarter is the quarter-division index the verse falls in.
	Quarter int `json:"quarter,omitempty" yaml:"quarter,omitempty"`
}

// Corpus returns CorpusVerse.
func (VerseRecord) Corpus() CorpusType { return CorpusVerse }

// NarrationRecord is one narration of the narration corpus.
type NarrationRecord struct {
	// Number is the narration's sequence number. It is stored as a string
	// because some editions use suffixed numbering; numeric filters parse it.
	Number string `json:"number" yaml:"number"`

	// Collection is the originating collection name.
	Collection string `json:"collection" yaml:"collection"`

	// Chapter is the chapter or topic label within the collection.
	Chapter string `json:"chapter,omitempty" yaml:"chapter,omitempty"`

	// Narrator describes the chain of narration.
	Narrator string `json:"narrator,omitempty" yaml:"narrator,omitempty"`

	// Text is the primary English text.
	Text string `json:"text" yaml:"text"`

	// ArabicText is the original Arabic text, when present.
	ArabicText string `json:"arabic_text,omitempty" yaml:"arabic_text,omitempty"`

	// Translation is an alternate translation, when present.
	Translation string `json:"translation,omitempty" yaml:"translation,omitempty"`

	// Grade is the authenticity grade, when present.
	Grade string `json:"grade,omitempty" yaml:"grade,omitempty"`

	// Reference is the citation reference, when present.
	Reference string `json:"reference,omitempty" yaml:"reference,omitempty"`
}

// Corpus returns CorpusNarration.
func (NarrationRecord) Corpus() CorpusType { return CorpusNarration }
