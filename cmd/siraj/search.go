// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sirajlabs/siraj/internal/engine"
	"github.com/sirajlabs/siraj/internal/preset"
	"github.com/sirajlabs/siraj/internal/store"
	"github.com/sirajlabs/siraj/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the fact, verse, and narration corpora",
	Long: `Search runs a unified query across the enabled corpora and prints one
ranked result list. With no query every record matches with full relevance
and the filters alone narrow the set. Any token matching anywhere in a
record's text is sufficient for inclusion (OR across tokens).

Use --preset to reload a saved search, or --save to store the current
query and filters under a name.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	if query == "" && len(args) > 0 {
		query = strings.Join(args, " ")
	}

	filters, err := filtersFromFlags(cmd)
	if err != nil {
		return err
	}

	// A saved preset replaces both query and filters; explicit flags are
	// intentionally ignored when loading one.
	repo := presetRepo()
	if name, _ := cmd.Flags().GetString("preset"); name != "" {
		p, err := repo.Load(name)
		if err != nil {
			return err
		}
		query, filters = p.Query, p.Filters
	}

	st, err := store.NewStore(types.StoreConfig{DataDir: dataDir()})
	if err != nil {
		return err
	}
	defer st.Close()

	eng := engine.New(st, types.EngineConfig{
		MaxResults: viper.GetInt("engine.max_results"),
	})

	session := engine.NewSession(eng, filters)
	session.SetQuery(query)

	out, err := session.Commit(context.Background())
	if err != nil {
		return err
	}

	if name, _ := cmd.Flags().GetString("save"); name != "" {
		p := preset.Preset{
			Name:    name,
			Query:   query,
			Filters: filters,
			Summary: preset.Summary{
				ActualCount:       out.ActualCount,
				PercentageOfTotal: out.PercentageOfTotal,
			},
		}
		if err := repo.Save(p); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved preset %q\n", name)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return engine.FormatJSON(out, os.Stdout)
	}
	engine.FormatTable(out, os.Stdout)
	return nil
}

// filtersFromFlags builds the filter state. Invalid values are coerced by
// FilterState.Canonical inside the engine rather than rejected here.
func filtersFromFlags(cmd *cobra.Command) (types.FilterState, error) {
	corpora, _ := cmd.Flags().GetStringSlice("corpora")
	selected := make([]types.CorpusType, 0, len(corpora))
	for _, c := range corpora {
		switch t := types.CorpusType(strings.ToLower(strings.TrimSpace(c))); t {
		case types.CorpusFact, types.CorpusVerse, types.CorpusNarration:
			selected = append(selected, t)
		default:
			return types.FilterState{}, fmt.Errorf("unknown corpus %q: use fact, verse, or narration", c)
		}
	}

	f := types.FilterState{Corpora: selected}
	f.Categories, _ = cmd.Flags().GetStringSlice("category")
	f.FulfillmentStatuses, _ = cmd.Flags().GetStringSlice("status")
	f.ClaimCategories, _ = cmd.Flags().GetStringSlice("claim-category")
	f.YearMin, _ = cmd.Flags().GetInt("year-min")
	f.YearMax, _ = cmd.Flags().GetInt("year-max")
	f.Chapters, _ = cmd.Flags().GetStringSlice("chapter")
	f.VerseMin, _ = cmd.Flags().GetInt("verse-min")
	f.VerseMax, _ = cmd.Flags().GetInt("verse-max")
	f.Revelations, _ = cmd.Flags().GetStringSlice("revelation")
	f.SajdahOnly, _ = cmd.Flags().GetBool("sajdah-only")
	f.NarrationMin, _ = cmd.Flags().GetInt("narration-min")
	f.NarrationMax, _ = cmd.Flags().GetInt("narration-max")
	f.NarrationChapters, _ = cmd.Flags().GetStringSlice("narration-chapter")
	f.MaxResults, _ = cmd.Flags().GetInt("max-results")

	sortBy, _ := cmd.Flags().GetString("sort")
	f.SortBy = types.SortKey(sortBy)
	order, _ := cmd.Flags().GetString("order")
	f.Order = types.SortOrder(order)

	return f, nil
}

func presetRepo() preset.Repository {
	return preset.NewFileRepository(filepath.Join(dataDir(), "presets"))
}

func init() {
	searchCmd.Flags().String("query", "", "free-text query (OR across whitespace-separated tokens)")
	searchCmd.Flags().StringSlice("corpora", []string{"fact", "verse", "narration"}, "corpora to search: fact, verse, narration")
	searchCmd.Flags().StringSlice("category", nil, "filter facts by category")
	searchCmd.Flags().StringSlice("status", nil, "filter facts by fulfillment status")
	searchCmd.Flags().StringSlice("claim-category", nil, "filter facts by kind of claim")
	searchCmd.Flags().Int("year-min", 0, "fact year range start (matches revealed or fulfilled year)")
	searchCmd.Flags().Int("year-max", 0, "fact year range end")
	searchCmd.Flags().StringSlice("chapter", nil, "filter verses by chapter number")
	searchCmd.Flags().Int("verse-min", 0, "verse number range start")
	searchCmd.Flags().Int("verse-max", 0, "verse number range end")
	searchCmd.Flags().StringSlice("revelation", nil, "filter verses by place of revelation: meccan, medinan")
	searchCmd.Flags().Bool("sajdah-only", false, "keep only verses with the prostration flag")
	searchCmd.Flags().Int("narration-min", 0, "narration sequence number range start")
	searchCmd.Flags().Int("narration-max", 0, "narration sequence number range end")
	searchCmd.Flags().StringSlice("narration-chapter", nil, "filter narrations by chapter/topic")
	searchCmd.Flags().String("sort", "relevance", "sort key: relevance, title, type, source, number")
	searchCmd.Flags().String("order", "asc", "sort direction: asc or desc")
	searchCmd.Flags().Int("max-results", 0, "result cap (0 = engine default)")
	searchCmd.Flags().String("preset", "", "run a saved preset instead of flag filters")
	searchCmd.Flags().String("save", "", "save this query and filters as a preset")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
