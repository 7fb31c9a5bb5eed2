// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/idea-generator/internal/history"
	"github.com/pdiddy/idea-generator/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse and export recorded ideas",
	Long: `History reads the local SQLite database that generate --record and
serve --record write to. Use subcommands to list or export recorded ideas.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded ideas, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	opts, err := historyOptsFromFlags(cmd)
	if err != nil {
		return err
	}

	store, err := history.NewStore(loadConfig(viper.GetViper()).History)
	if err != nil {
		return err
	}
	defer store.Close()

	ideas, err := store.List(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistoryOutput(cmd.OutOrStdout(), ideas, jsonOutput)
}

func formatHistoryOutput(w io.Writer, ideas []types.Idea, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ideas)
	}

	if len(ideas) == 0 {
		fmt.Fprintln(w, "No ideas recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-20s  %-12s  %-12s  %s\n", "Created", "Mode", "Difficulty", "Idea")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for _, idea := range ideas {
		difficulty := string(idea.Difficulty)
		if difficulty == "" {
			difficulty = "-"
		}
		fmt.Fprintf(w, "%-20s  %-12s  %-12s  %s\n",
			idea.CreatedAt.Local().Format("2006-01-02 15:04:05"), idea.Mode, difficulty, idea.Text)
	}

	fmt.Fprintf(w, "\n%d ideas\n", len(ideas))
	return nil
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded ideas to YAML or JSON",
	Long: `Export writes recorded ideas to export.yaml or export.json in the history
directory. Supports the same filter flags as list.`,
	RunE: runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	opts, err := historyOptsFromFlags(cmd)
	if err != nil {
		return err
	}

	store, err := history.NewStore(loadConfig(viper.GetViper()).History)
	if err != nil {
		return err
	}
	defer store.Close()

	var path string
	switch format {
	case "yaml", "":
		path, err = store.ExportYAML(context.Background(), opts)
	case "json":
		path, err = store.ExportJSON(context.Background(), opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Exported to", path)
	return nil
}

// --- shared helpers ---

func historyOptsFromFlags(cmd *cobra.Command) (history.QueryOptions, error) {
	modeFlag, _ := cmd.Flags().GetString("mode")
	difficultyFlag, _ := cmd.Flags().GetString("difficulty")
	limit, _ := cmd.Flags().GetInt("limit")

	opts := history.QueryOptions{MaxResults: limit}
	var err error
	if modeFlag != "" {
		if opts.Mode, err = types.ParseMode(modeFlag); err != nil {
			return opts, err
		}
	}
	if difficultyFlag != "" {
		if opts.Difficulty, err = types.ParseDifficulty(difficultyFlag); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func init() {
	for _, c := range []*cobra.Command{historyListCmd, historyExportCmd} {
		c.Flags().String("mode", "", "filter by mode: three-word or pitch-battle")
		c.Flags().String("difficulty", "", "filter by difficulty")
	}

	historyListCmd.Flags().Int("limit", 0, "maximum ideas to list (0 = use default)")
	historyListCmd.Flags().Bool("json", false, "output ideas as JSON")

	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyExportCmd)

	rootCmd.AddCommand(historyCmd)
}
