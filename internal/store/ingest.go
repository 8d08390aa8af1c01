// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/sirajlabs/siraj/pkg/types"
)

// IngestSummary holds counts from a corpus ingest run (R3.4).
type IngestSummary struct {
	Ingested int
	Skipped  int
	Failed   int
}

// Total returns the number of corpus files processed.
func (s IngestSummary) Total() int {
	return s.Ingested + s.Skipped + s.Failed
}

// corpusFiles maps each corpus to its snapshot file under dataDir/corpora/.
var corpusFiles = map[types.CorpusType]string{
	types.CorpusFact:      "facts.yaml",
	types.CorpusVerse:     "verses.yaml",
	types.CorpusNarration: "narrations.yaml",
}

// Ingest loads corpus snapshot YAML files from dataDir/corpora/ into the
// database. Each corpus is replaced atomically in its own transaction.
// Unchanged files are skipped on subsequent runs via mod-time tracking
// (R3.1-R3.3). Missing snapshot files are not errors; the corpus simply
// stays as previously ingested.
func (s *Store) Ingest(ctx context.Context, w io.Writer) (IngestSummary, error) {
	dir := filepath.Join(s.dataDir, corporaDir)

	var summary IngestSummary
	for _, corpus := range types.AllCorpora() {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		path := filepath.Join(dir, corpusFiles[corpus])
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			fmt.Fprintf(w, "failed   %s: %v\n", corpus, err)
			summary.Failed++
			continue
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		// Skip corpora whose snapshot file has not changed (R3.2).
		var storedModTime string
		err = s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM ingest_status WHERE corpus = ?`, corpus,
		).Scan(&storedModTime)
		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped  %s\n", corpus)
			summary.Skipped++
			continue
		}

		count, err := s.ingestCorpus(ctx, corpus, path, modTime)
		if err != nil {
			fmt.Fprintf(w, "failed   %s: %v\n", corpus, err)
			summary.Failed++
			continue
		}
		fmt.Fprintf(w, "ingested %s (%d records)\n", corpus, count)
		summary.Ingested++
	}

	fmt.Fprintf(w, "\ningested: %d, skipped: %d, failed: %d\n",
		summary.Ingested, summary.Skipped, summary.Failed)
	return summary, nil
}

func (s *Store) ingestCorpus(ctx context.Context, corpus types.CorpusType, path, modTime string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading snapshot: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	switch corpus {
	case types.CorpusFact:
		count, err = insertFacts(ctx, tx, data)
	case types.CorpusVerse:
		count, err = insertVerses(ctx, tx, data)
	case types.CorpusNarration:
		count, err = insertNarrations(ctx, tx, data)
	}
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO ingest_status (corpus, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(corpus) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
		corpus, modTime,
	)
	if err != nil {
		return 0, fmt.Errorf("updating ingest status: %w", err)
	}

	return count, tx.Commit()
}

func insertFacts(ctx context.Context, tx *sql.Tx, data []byte) (int, error) {
	var facts []types.FactRecord
	if err := yaml.Unmarshal(data, &facts); err != nil {
		return 0, fmt.Errorf("parsing facts snapshot: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM facts`); err != nil {
		return 0, fmt.Errorf("clearing facts: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO facts (id, category, title, note,
			citation_primary, citation_verification, citation_methodology, citation_references,
			status, fulfillment_status, fulfillment_evidence, claim_category,
			year_revealed, year_fulfilled)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, f := range facts {
		id := f.ID
		if id == "" {
			// Snapshot rows without identifiers get a positional one so
			// normalization always has an ID to prefix.
			id = fmt.Sprintf("%d", i+1)
		}
		var cit types.Citation
		if f.Citation != nil {
			cit = *f.Citation
		}
		refsJSON := ""
		if len(cit.References) > 0 {
			b, _ := json.Marshal(cit.References)
			refsJSON = string(b)
		}
		_, err := stmt.ExecContext(ctx,
			id, f.Category, f.Title, f.Note,
			cit.Primary, cit.Verification, cit.Methodology, refsJSON,
			f.Status, f.FulfillmentStatus, f.FulfillmentEvidence, f.ClaimCategory,
			f.YearRevealed, f.YearFulfilled,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting fact %s: %w", id, err)
		}
	}
	return len(facts), nil
}

func insertVerses(ctx context.Context, tx *sql.Tx, data []byte) (int, error) {
	var verses []types.VerseRecord
	if err := yaml.Unmarshal(data, &verses); err != nil {
		return 0, fmt.Errorf("parsing verses snapshot: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM verses`); err != nil {
		return 0, fmt.Errorf("clearing verses: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO verses (global_verse, chapter, chapter_name,
			chapter_name_arabic, chapter_name_translit, verse, arabic_text,
			translation, revelation, sajdah, word_count, quarter)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, v := range verses {
		sajdah := 0
		if v.Sajdah {
			sajdah = 1
		}
		_, err := stmt.ExecContext(ctx,
			v.GlobalVerse, v.Chapter, v.ChapterName,
			v.ChapterNameArabic, v.ChapterNameTranslit, v.Verse, v.ArabicText,
			v.Translation, v.Revelation, sajdah, v.WordCount, v.Quarter,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting verse %d: %w", v.GlobalVerse, err)
		}
	}
	return len(verses), nil
}

func insertNarrations(ctx context.Context, tx *sql.Tx, data []byte) (int, error) {
	var narrations []types.NarrationRecord
	if err := yaml.Unmarshal(data, &narrations); err != nil {
		return 0, fmt.Errorf("parsing narrations snapshot: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM narrations`); err != nil {
		return 0, fmt.Errorf("clearing narrations: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO narrations (number, collection, chapter, narrator,
			text, arabic_text, translation, grade, reference)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, n := range narrations {
		_, err := stmt.ExecContext(ctx,
			n.Number, n.Collection, n.Chapter, n.Narrator,
			n.Text, n.ArabicText, n.Translation, n.Grade, n.Reference,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting narration %s: %w", n.Number, err)
		}
	}
	return len(narrations), nil
}
