// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/idea-generator/internal/generator"
	"github.com/pdiddy/idea-generator/internal/history"
	"github.com/pdiddy/idea-generator/internal/lists"
	"github.com/pdiddy/idea-generator/pkg/types"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	v := viper.New()
	v.Set("lists", "catalog.yaml")
	v.Set("locale", "en")
	v.Set("history.dir", "/tmp/ideas")
	v.Set("history.enabled", true)
	v.Set("history.max_results", 5)
	v.Set("server.addr", ":9000")
	v.Set("log.level", "debug")
	v.Set("log.format", "json")

	cfg := loadConfig(v)
	assert.Equal(t, types.Config{
		Lists:   "catalog.yaml",
		Locale:  types.LocaleEnglish,
		History: types.HistoryConfig{Dir: "/tmp/ideas", Enabled: true, MaxResults: 5},
		Server:  types.ServerConfig{Addr: ":9000"},
		Log:     types.LogConfig{Level: "debug", Format: "json"},
	}, cfg)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("IDEA_GENERATOR_HISTORY_DIR", "/var/lib/ideas")

	v := viper.New()
	v.SetEnvPrefix("IDEA_GENERATOR")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	assert.Equal(t, "/var/lib/ideas", loadConfig(v).History.Dir)
}

func TestNewGenerator(t *testing.T) {
	t.Run("built-in catalog", func(t *testing.T) {
		_, catalog, err := newGenerator(types.Config{})
		require.NoError(t, err)
		assert.Equal(t, lists.Default().Summary(), catalog.Summary())
	})

	t.Run("catalog file", func(t *testing.T) {
		path := writeCatalog(t, "themes: [Pet Rocks]\n")
		gen, catalog, err := newGenerator(types.Config{Lists: path, Locale: types.LocaleEnglish})
		require.NoError(t, err)
		assert.Equal(t, 1, catalog.Summary().Themes)

		idea, err := gen.Generate(types.ModePitchBattle, "")
		require.NoError(t, err)
		assert.Equal(t, "Theme: Pet Rocks", idea.Text)
	})

	t.Run("bad locale", func(t *testing.T) {
		_, _, err := newGenerator(types.Config{Locale: "xx"})
		require.Error(t, err)
	})

	t.Run("missing catalog", func(t *testing.T) {
		_, _, err := newGenerator(types.Config{Lists: filepath.Join(t.TempDir(), "nope.yaml")})
		require.Error(t, err)
	})
}

func TestGenerateIdeasRecords(t *testing.T) {
	store, err := history.NewStore(types.HistoryConfig{Dir: t.TempDir()})
	require.NoError(t, err)
	defer store.Close()

	gen, _, err := newGenerator(types.Config{})
	require.NoError(t, err)
	session := generator.NewSession()
	session.Mode = types.ModePitchBattle

	ideas, err := generateIdeas(context.Background(), session, gen, store, 3)
	require.NoError(t, err)
	require.Len(t, ideas, 3)
	for _, idea := range ideas {
		assert.NotEmpty(t, idea.ID)
	}
	require.NotNil(t, session.Result)
	assert.Equal(t, ideas[2].Text, *session.Result, "the session keeps the last result")

	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestFormatGenerateOutput(t *testing.T) {
	ideas := []types.Idea{
		{Mode: types.ModePitchBattle, Theme: "Pet Rocks", Text: "お題：Pet Rocks"},
	}

	var text bytes.Buffer
	require.NoError(t, formatGenerateOutput(&text, ideas, false))
	assert.Equal(t, "お題：Pet Rocks\n", text.String())

	var js bytes.Buffer
	require.NoError(t, formatGenerateOutput(&js, ideas, true))
	var decoded []types.Idea
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Equal(t, "Pet Rocks", decoded[0].Theme)
}

func TestFormatHistoryOutput(t *testing.T) {
	var empty bytes.Buffer
	require.NoError(t, formatHistoryOutput(&empty, nil, false))
	assert.Equal(t, "No ideas recorded.\n", empty.String())

	var buf bytes.Buffer
	ideas := []types.Idea{
		{Mode: types.ModeThreeWord, Difficulty: types.DifficultyBeginner, Text: "単語1：Apple", CreatedAt: time.Now()},
		{Mode: types.ModePitchBattle, Text: "お題：Pet Rocks", CreatedAt: time.Now()},
	}
	require.NoError(t, formatHistoryOutput(&buf, ideas, false))
	out := buf.String()
	assert.Contains(t, out, "beginner")
	assert.Contains(t, out, "お題：Pet Rocks")
	assert.Contains(t, out, "2 ideas")
}

func TestFormatListsOutput(t *testing.T) {
	var buf bytes.Buffer
	s := lists.Summary{
		Words:  map[types.Difficulty]int{types.DifficultyBeginner: 2},
		Themes: 1,
	}
	require.NoError(t, formatListsOutput(&buf, s, false))
	assert.Contains(t, buf.String(), "beginner        2")
	assert.Contains(t, buf.String(), "advanced        0")
	assert.Contains(t, buf.String(), "themes          1")
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("info"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("verbose"))
}

func TestGenerateCommand(t *testing.T) {
	catalog := writeCatalog(t, "words:\n  beginner: [Apple, Cloud]\nthemes: [Pet Rocks]\n")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"generate", "--lists", catalog, "--difficulty", "beginner", "--count", "2"})
	t.Cleanup(func() { resetCommandState(t) })

	require.NoError(t, rootCmd.Execute())

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Contains(t, []string{
			"単語1：Apple, 単語2：Cloud, 単語3：N/A",
			"単語1：Cloud, 単語2：Apple, 単語3：N/A",
		}, string(line))
	}
}

// resetCommandState restores the flags a command run leaves set on the shared
// rootCmd. Viper reads "lists" through the bound flag, so it reverts as well.
func resetCommandState(t *testing.T) {
	t.Helper()
	rootCmd.SetOut(nil)
	rootCmd.SetArgs(nil)
	for _, fs := range []*pflag.FlagSet{rootCmd.PersistentFlags(), generateCmd.Flags()} {
		fs.VisitAll(func(f *pflag.Flag) {
			require.NoError(t, f.Value.Set(f.DefValue))
			f.Changed = false
		})
	}
}

func TestResetCommandState(t *testing.T) {
	require.NoError(t, rootCmd.PersistentFlags().Set("lists", "/tmp/other.yaml"))
	require.NoError(t, generateCmd.Flags().Set("count", "5"))

	resetCommandState(t)

	assert.Empty(t, viper.GetString("lists"))
	assert.False(t, rootCmd.PersistentFlags().Lookup("lists").Changed)
	count, err := generateCmd.Flags().GetInt("count")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
