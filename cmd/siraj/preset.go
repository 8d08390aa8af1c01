// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage saved searches",
	Long: `Preset lists, shows, and deletes saved searches. Presets are created
with "search --save <name>" and replayed with "search --preset <name>".`,
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		presets, err := presetRepo().List()
		if err != nil {
			return err
		}
		if len(presets) == 0 {
			fmt.Println("No presets saved.")
			return nil
		}
		fmt.Printf("%-20s  %-30s  %-8s  %s\n", "Name", "Query", "Matches", "Saved")
		for _, p := range presets {
			query := p.Query
			if query == "" {
				query = "(filters only)"
			}
			if len(query) > 30 {
				query = query[:27] + "..."
			}
			fmt.Printf("%-20s  %-30s  %-8d  %s\n",
				p.Name, query, p.Summary.ActualCount, p.Summary.SavedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var presetShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a saved preset as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := presetRepo().Load(args[0])
		if err != nil {
			return err
		}
		return yaml.NewEncoder(os.Stdout).Encode(p)
	},
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := presetRepo().Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted preset %q\n", args[0])
		return nil
	},
}

func init() {
	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetShowCmd)
	presetCmd.AddCommand(presetDeleteCmd)

	rootCmd.AddCommand(presetCmd)
}
