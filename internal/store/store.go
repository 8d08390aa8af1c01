// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists the three corpus snapshots in SQLite and serves
// them to the search engine through the CorpusReader contract. The store
// may push coarse structured predicates into SQL; the engine re-applies
// the full filter set, so pushdown is purely an optimization.
// Implements: prd012-corpus-store (R1-R4);
//
//	docs/ARCHITECTURE § Corpus Store.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sirajlabs/siraj/pkg/types"
)

const (
	corporaDir = "corpora"
	indexDir   = "index"
	dbFile     = "siraj.db"
)

// Store manages the corpus SQLite database.
type Store struct {
	db      *sql.DB
	dataDir string
}

// NewStore opens or creates the corpus database at dataDir/index/siraj.db
// and creates the schema if it does not exist (R1.1, R1.2).
func NewStore(cfg types.StoreConfig) (*Store, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "data"
	}
	dbDir := filepath.Join(dataDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, dataDir: dataDir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS facts (
			id TEXT PRIMARY KEY,
			category TEXT,
			title TEXT,
			note TEXT,
			citation_primary TEXT,
			citation_verification TEXT,
			citation_methodology TEXT,
			citation_references TEXT,
			status TEXT,
			fulfillment_status TEXT,
			fulfillment_evidence TEXT,
			claim_category TEXT,
			year_revealed INTEGER,
			year_fulfilled INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS verses (
			global_verse INTEGER PRIMARY KEY,
			chapter INTEGER NOT NULL,
			chapter_name TEXT,
			chapter_name_arabic TEXT,
			chapter_name_translit TEXT,
			verse INTEGER NOT NULL,
			arabic_text TEXT,
			translation TEXT,
			revelation TEXT,
			sajdah INTEGER,
			word_count INTEGER,
			quarter INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS narrations (
			number TEXT PRIMARY KEY,
			collection TEXT,
			chapter TEXT,
			narrator TEXT,
			text TEXT,
			arabic_text TEXT,
			translation TEXT,
			grade TEXT,
			reference TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_facts_category ON facts(category)`,
		`CREATE INDEX IF NOT EXISTS idx_verses_chapter ON verses(chapter)`,
		`CREATE INDEX IF NOT EXISTS idx_narrations_chapter ON narrations(chapter)`,
		`CREATE TABLE IF NOT EXISTS ingest_status (
			corpus TEXT PRIMARY KEY,
			file_mod_time TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// FetchFacts returns the fact corpus, coarsely narrowed by the category
// selection when present (R2.1).
func (s *Store) FetchFacts(ctx context.Context, hints types.FilterState) ([]types.FactRecord, error) {
	var qb strings.Builder
	var args []any
	qb.WriteString(
		`SELECT id, category, title, note,
			citation_primary, citation_verification, citation_methodology, citation_references,
			status, fulfillment_status, fulfillment_evidence, claim_category,
			year_revealed, year_fulfilled
		FROM facts WHERE 1=1`)
	appendSelection(&qb, &args, "category", hints.Categories)
	qb.WriteString(` ORDER BY id`)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying facts: %w", err)
	}
	defer rows.Close()

	var facts []types.FactRecord
	for rows.Next() {
		var f types.FactRecord
		var cit types.Citation
		var refsJSON string
		if err := rows.Scan(
			&f.ID, &f.Category, &f.Title, &f.Note,
			&cit.Primary, &cit.Verification, &cit.Methodology, &refsJSON,
			&f.Status, &f.FulfillmentStatus, &f.FulfillmentEvidence, &f.ClaimCategory,
			&f.YearRevealed, &f.YearFulfilled,
		); err != nil {
			return nil, fmt.Errorf("scanning fact row: %w", err)
		}
		if refsJSON != "" {
			// Unparseable references degrade to none; the record survives.
			_ = json.Unmarshal([]byte(refsJSON), &cit.References)
		}
		if cit.Primary != "" || cit.Verification != "" || cit.Methodology != "" || len(cit.References) > 0 {
			c := cit
			f.Citation = &c
		}
		facts = append(facts, f)
	}
	return facts, rows.Err()
}

// FetchVerses returns the verse corpus, coarsely narrowed by chapter,
// revelation, and prostration hints when present (R2.2).
func (s *Store) FetchVerses(ctx context.Context, hints types.FilterState) ([]types.VerseRecord, error) {
	var qb strings.Builder
	var args []any
	qb.WriteString(
		`SELECT global_verse, chapter, chapter_name, chapter_name_arabic, chapter_name_translit,
			verse, arabic_text, translation, revelation, sajdah, word_count, quarter
		FROM verses WHERE 1=1`)

	if chapters := numericChapters(hints.Chapters); len(chapters) > 0 {
		qb.WriteString(` AND chapter IN (` + placeholders(len(chapters)) + `)`)
		for _, c := range chapters {
			args = append(args, c)
		}
	}
	appendSelection(&qb, &args, "revelation", hints.Revelations)
	if hints.SajdahOnly {
		qb.WriteString(` AND sajdah = 1`)
	}
	qb.WriteString(` ORDER BY global_verse`)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying verses: %w", err)
	}
	defer rows.Close()

	var verses []types.VerseRecord
	for rows.Next() {
		var v types.VerseRecord
		var sajdah int
		if err := rows.Scan(
			&v.GlobalVerse, &v.Chapter, &v.ChapterName, &v.ChapterNameArabic, &v.ChapterNameTranslit,
			&v.Verse, &v.ArabicText, &v.Translation, &v.Revelation, &sajdah, &v.WordCount, &v.Quarter,
		); err != nil {
			return nil, fmt.Errorf("scanning verse row: %w", err)
		}
		v.Sajdah = sajdah != 0
		verses = append(verses, v)
	}
	return verses, rows.Err()
}

// FetchNarrations returns the narration corpus, coarsely narrowed by the
// chapter selection when present (R2.3).
func (s *Store) FetchNarrations(ctx context.Context, hints types.FilterState) ([]types.NarrationRecord, error) {
	var qb strings.Builder
	var args []any
	qb.WriteString(
		`SELECT number, collection, chapter, narrator, text, arabic_text, translation, grade, reference
		FROM narrations WHERE 1=1`)
	appendSelection(&qb, &args, "chapter", hints.NarrationChapters)
	qb.WriteString(` ORDER BY CAST(number AS INTEGER), number`)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying narrations: %w", err)
	}
	defer rows.Close()

	var narrations []types.NarrationRecord
	for rows.Next() {
		var n types.NarrationRecord
		if err := rows.Scan(
			&n.Number, &n.Collection, &n.Chapter, &n.Narrator,
			&n.Text, &n.ArabicText, &n.Translation, &n.Grade, &n.Reference,
		); err != nil {
			return nil, fmt.Errorf("scanning narration row: %w", err)
		}
		narrations = append(narrations, n)
	}
	return narrations, rows.Err()
}

// Counts reports the full size of each corpus (R4.1). The engine uses
// these as the percentage-of-total denominator.
func (s *Store) Counts(ctx context.Context) (map[types.CorpusType]int, error) {
	counts := make(map[types.CorpusType]int, 3)
	for corpus, table := range map[types.CorpusType]string{
		types.CorpusFact:      "facts",
		types.CorpusVerse:     "verses",
		types.CorpusNarration: "narrations",
	} {
		var n int
		if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM `+table).Scan(&n); err != nil {
			return nil, fmt.Errorf("counting %s: %w", table, err)
		}
		counts[corpus] = n
	}
	return counts, nil
}

// appendSelection adds a case-insensitive IN clause for a selection list.
// Pushdown must never drop records the engine would keep. SQLite's LOWER
// folds ASCII only, while the engine folds full Unicode, so selections
// containing non-ASCII letters are not pushed down at all; the engine's
// own membership test narrows them after the fetch.
func appendSelection(qb *strings.Builder, args *[]any, column string, selection []string) {
	if len(selection) == 0 || !asciiOnly(selection) {
		return
	}
	qb.WriteString(` AND LOWER(` + column + `) IN (` + placeholders(len(selection)) + `)`)
	for _, v := range selection {
		*args = append(*args, strings.ToLower(v))
	}
}

func asciiOnly(selection []string) bool {
	for _, v := range selection {
		for i := 0; i < len(v); i++ {
			if v[i] >= utf8.RuneSelf {
				return false
			}
		}
	}
	return true
}

// numericChapters parses the string-typed chapter selections, dropping
// entries that are not decimal numbers (those can never match a chapter).
func numericChapters(selection []string) []int {
	var out []int
	for _, s := range selection {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			out = append(out, n)
		}
	}
	return out
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
