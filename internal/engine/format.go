// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/sirajlabs/siraj/pkg/types"
)

// FormatTable writes results as a human-readable table to w.
func FormatTable(out Output, w io.Writer) {
	if out.NoCorporaSelected {
		fmt.Fprintln(w, "No corpora selected.")
		return
	}
	if len(out.Results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-5s  %-10s  %-40s  %-30s  %s\n",
		"Rank", "Corpus", "Title", "Source", "Score")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, r := range out.Results {
		fmt.Fprintf(w, "%-5d  %-10s  %-40s  %-30s  %d\n",
			r.Position, r.Corpus, truncate(r.Title, 40), truncate(r.SourceLabel, 30), r.Relevance)
	}

	fmt.Fprintf(w, "\n%d of %d matches shown (%s%% of %d records)",
		len(out.Results), out.ActualCount, out.PercentageOfTotal, out.TotalAvailable)
	if out.Truncated {
		fmt.Fprint(w, " [truncated]")
	}
	fmt.Fprintln(w)
	for _, corpus := range types.AllCorpora() {
		if n, ok := out.PerCorpus[corpus]; ok {
			fmt.Fprintf(w, "  %s: %d\n", corpus, n)
		}
	}
}

// truncate shortens s to at most max runes, marking the cut with an
// ellipsis. Cutting on rune boundaries keeps Arabic titles valid UTF-8.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}

// FormatJSON writes the full output as indented JSON to w.
func FormatJSON(out Output, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
