// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/idea-generator/internal/generator"
	"github.com/pdiddy/idea-generator/internal/history"
	"github.com/pdiddy/idea-generator/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a startup idea prompt",
	Long: `Generate draws a new prompt for the selected mode.

In three-word mode, three distinct words are drawn from the word list for the
selected difficulty. In pitch-battle mode, one theme is drawn from the theme
list and the difficulty is ignored. With --count, several prompts are drawn
in a row; each one replaces the previous result.`,
	Example: `  idea-generator generate
  idea-generator generate --difficulty advanced --count 3
  idea-generator generate --mode pitch-battle --json`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	modeFlag, _ := cmd.Flags().GetString("mode")
	difficultyFlag, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	recordFlag, _ := cmd.Flags().GetBool("record")

	if count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", count)
	}

	session := generator.NewSession()
	var err error
	if session.Mode, err = types.ParseMode(modeFlag); err != nil {
		return err
	}
	if session.Difficulty, err = types.ParseDifficulty(difficultyFlag); err != nil {
		return err
	}

	cfg := loadConfig(viper.GetViper())
	gen, _, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	var store *history.Store
	if recordFlag || cfg.History.Enabled {
		store, err = history.NewStore(cfg.History)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	ideas, err := generateIdeas(context.Background(), session, gen, store, count)
	if err != nil {
		return err
	}
	return formatGenerateOutput(cmd.OutOrStdout(), ideas, jsonOutput)
}

// generateIdeas runs count generations on session and records each one when
// store is non-nil.
func generateIdeas(ctx context.Context, session *generator.Session, gen *generator.Generator, store *history.Store, count int) ([]types.Idea, error) {
	ideas := make([]types.Idea, 0, count)
	for i := 0; i < count; i++ {
		idea, err := session.Generate(gen)
		if err != nil {
			return nil, err
		}
		if store != nil {
			if idea, err = store.Record(ctx, idea); err != nil {
				return nil, err
			}
		}
		ideas = append(ideas, idea)
	}
	return ideas, nil
}

func formatGenerateOutput(w io.Writer, ideas []types.Idea, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ideas)
	}
	for _, idea := range ideas {
		fmt.Fprintln(w, idea.Text)
	}
	return nil
}

func init() {
	generateCmd.Flags().String("mode", string(types.ModeThreeWord), "generation mode: three-word or pitch-battle")
	generateCmd.Flags().String("difficulty", string(types.DifficultyBeginner), "word list tier for three-word mode: beginner, intermediate, advanced")
	generateCmd.Flags().Int("count", 1, "number of prompts to draw")
	generateCmd.Flags().Bool("json", false, "output ideas as JSON")
	generateCmd.Flags().Bool("record", false, "record generated ideas to the history database")

	rootCmd.AddCommand(generateCmd)
}
