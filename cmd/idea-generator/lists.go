// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/idea-generator/internal/lists"
	"github.com/pdiddy/idea-generator/pkg/types"
)

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Show the word lists and themes in use",
	Long: `Lists prints how many entries each difficulty tier and the theme list
hold. With --dump, the full catalog is printed as YAML so it can be edited
and passed back with --lists.`,
	RunE: runLists,
}

func runLists(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	dump, _ := cmd.Flags().GetBool("dump")

	catalog, err := loadCatalog(loadConfig(viper.GetViper()))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if dump {
		data, err := catalog.Marshal()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	return formatListsOutput(w, catalog.Summary(), jsonOutput)
}

func formatListsOutput(w io.Writer, s lists.Summary, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	fmt.Fprintf(w, "%-14s  %s\n", "List", "Entries")
	for _, d := range types.Difficulties {
		fmt.Fprintf(w, "%-14s  %d\n", d, s.Words[d])
	}
	fmt.Fprintf(w, "%-14s  %d\n", "themes", s.Themes)
	return nil
}

func init() {
	listsCmd.Flags().Bool("json", false, "output the summary as JSON")
	listsCmd.Flags().Bool("dump", false, "print the full catalog as YAML")

	rootCmd.AddCommand(listsCmd)
}
