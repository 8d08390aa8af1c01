// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sirajlabs/siraj/internal/fetch"
	"github.com/sirajlabs/siraj/internal/secrets"
	"github.com/sirajlabs/siraj/internal/store"
	"github.com/sirajlabs/siraj/pkg/types"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Manage the local corpus database (fetch, ingest, stats)",
	Long: `Corpus manages the local SQLite corpus database. "fetch" downloads
snapshot files into data/corpora/, "ingest" loads them into the database,
and "stats" prints per-corpus record counts.`,
}

// --- fetch subcommand ---

var corpusFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download corpus snapshot files",
	Long: `Fetch downloads the configured corpus snapshot files into
data/corpora/. Corpora without a configured URL are skipped. Downloads
retry on rate limiting and are written atomically, so an interrupted
fetch never corrupts a previously downloaded snapshot.`,
	RunE: runCorpusFetch,
}

func runCorpusFetch(cmd *cobra.Command, args []string) error {
	token, _ := cmd.Flags().GetString("token")
	cfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("fetch.timeout"),
			UserAgent: viper.GetString("fetch.user_agent"),
		},
		FactsURL:      viper.GetString("fetch.facts_url"),
		VersesURL:     viper.GetString("fetch.verses_url"),
		NarrationsURL: viper.GetString("fetch.narrations_url"),
		APIToken:      loadedSecrets.Value(secrets.CorpusAPIToken, token),
		MaxRetries:    viper.GetInt("fetch.max_retries"),
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	f := fetch.NewFetcher(cfg)
	dir := filepath.Join(dataDir(), "corpora")

	fetched := 0
	for corpus, file := range map[types.CorpusType]string{
		types.CorpusFact:      "facts.yaml",
		types.CorpusVerse:     "verses.yaml",
		types.CorpusNarration: "narrations.yaml",
	} {
		dst := filepath.Join(dir, file)
		err := f.Download(context.Background(), corpus, dst)
		if err != nil {
			// No configured URL just skips the corpus.
			fmt.Fprintf(os.Stderr, "skipped %s: %v\n", corpus, err)
			continue
		}
		fmt.Printf("fetched %s -> %s\n", corpus, dst)
		fetched++
	}
	if fetched == 0 {
		return fmt.Errorf("no corpus snapshots fetched: configure fetch.*_url in siraj.yaml")
	}
	return nil
}

// --- ingest subcommand ---

var corpusIngestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load corpus snapshot files into the database",
	Long: `Ingest reads snapshot YAML files from data/corpora/ and replaces the
corresponding corpus tables. Unchanged files are skipped on subsequent runs.`,
	RunE: runCorpusIngest,
}

func runCorpusIngest(cmd *cobra.Command, args []string) error {
	st, err := store.NewStore(types.StoreConfig{DataDir: dataDir()})
	if err != nil {
		return err
	}
	defer st.Close()

	summary, err := st.Ingest(context.Background(), os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d corpus file(s) failed to ingest", summary.Failed)
	}
	return nil
}

// --- stats subcommand ---

var corpusStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print per-corpus record counts",
	RunE:  runCorpusStats,
}

func runCorpusStats(cmd *cobra.Command, args []string) error {
	st, err := store.NewStore(types.StoreConfig{DataDir: dataDir()})
	if err != nil {
		return err
	}
	defer st.Close()

	counts, err := st.Counts(context.Background())
	if err != nil {
		return err
	}

	total := 0
	for _, corpus := range types.AllCorpora() {
		fmt.Printf("%-10s  %d\n", corpus, counts[corpus])
		total += counts[corpus]
	}
	fmt.Printf("%-10s  %d\n", "total", total)
	return nil
}

func init() {
	corpusFetchCmd.Flags().String("token", "", "bearer token for snapshot downloads (default: .secrets/corpus-api-token)")

	corpusCmd.AddCommand(corpusFetchCmd)
	corpusCmd.AddCommand(corpusIngestCmd)
	corpusCmd.AddCommand(corpusStatsCmd)

	rootCmd.AddCommand(corpusCmd)
}
