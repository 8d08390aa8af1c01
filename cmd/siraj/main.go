// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the siraj CLI.
// Implements: prd011-search-engine, prd012-corpus-store,
//             prd013-snapshot-fetch, prd014-presets (CLI surface).
// See docs/ARCHITECTURE § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sirajlabs/siraj/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets secrets.Secrets

// rootCmd is the base command for the siraj CLI.
var rootCmd = &cobra.Command{
	Use:   "siraj",
	Short: "Unified search over the fact, verse, and narration corpora",
	Long: `siraj is a browsing and search interface over three static knowledge
corpora: curated facts, a verse corpus, and a narration corpus. One search
produces a single ranked result list spanning all three record shapes, with
multi-dimensional filtering, stable sorting, and a result cap.

Corpus snapshots live in a local SQLite database: use "corpus fetch" to
download snapshot files and "corpus ingest" to load them. "search" runs the
engine; "preset" manages saved searches.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", s.Keys())
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./siraj.yaml or ~/.config/siraj/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "base data directory (contains corpora/, index/)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("siraj")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "siraj"))
		}
	}

	viper.SetDefault("store.data_dir", "data")
	viper.SetDefault("engine.max_results", 1000)
	viper.SetDefault("fetch.user_agent", "siraj/"+version)

	viper.SetEnvPrefix("SIRAJ")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// dataDir resolves the data directory from the flag, then config.
func dataDir() string {
	if dir, _ := rootCmd.PersistentFlags().GetString("data-dir"); dir != "" {
		return dir
	}
	return viper.GetString("store.data_dir")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
