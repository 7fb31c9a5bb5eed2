// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lists

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/idea-generator/pkg/types"
)

func TestDefault(t *testing.T) {
	c := Default()
	for _, d := range types.Difficulties {
		assert.GreaterOrEqual(t, len(c.Words(d)), 3, "tier %s needs at least three words", d)
	}
	assert.NotEmpty(t, c.Themes())
	assert.Contains(t, c.Themes(), "Pet Rocks")
}

func TestDefaultListsHaveNoDuplicates(t *testing.T) {
	c := Default()
	check := func(name string, list []string) {
		seen := make(map[string]bool)
		for _, w := range list {
			assert.False(t, seen[w], "%s: duplicate %q", name, w)
			seen[w] = true
		}
	}
	for _, d := range types.Difficulties {
		check(string(d), c.Words(d))
	}
	check("themes", c.Themes())
}

func TestCatalogReturnsCopies(t *testing.T) {
	c := New(map[types.Difficulty][]string{
		types.DifficultyBeginner: {"Apple", "Cloud"},
	}, []string{"Pet Rocks"})

	words := c.Words(types.DifficultyBeginner)
	words[0] = "changed"
	themes := c.Themes()
	themes[0] = "changed"

	assert.Equal(t, []string{"Apple", "Cloud"}, c.Words(types.DifficultyBeginner))
	assert.Equal(t, []string{"Pet Rocks"}, c.Themes())
}

func TestNewCopiesInput(t *testing.T) {
	src := []string{"Apple", "Cloud"}
	c := New(map[types.Difficulty][]string{types.DifficultyBeginner: src}, nil)
	src[0] = "changed"
	assert.Equal(t, []string{"Apple", "Cloud"}, c.Words(types.DifficultyBeginner))
}

func TestUnknownTierIsEmpty(t *testing.T) {
	c := New(nil, nil)
	assert.Empty(t, c.Words(types.DifficultyAdvanced))
	assert.Empty(t, c.Themes())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		yaml       string
		wantWords  map[types.Difficulty][]string
		wantThemes []string
		errMsg     string
	}{
		{
			name: "full catalog",
			yaml: `
words:
  beginner: [Apple, Cloud]
  Advanced: [Quantum]
themes:
  - Pet Rocks
`,
			wantWords: map[types.Difficulty][]string{
				types.DifficultyBeginner: {"Apple", "Cloud"},
				types.DifficultyAdvanced: {"Quantum"},
			},
			wantThemes: []string{"Pet Rocks"},
		},
		{
			name:       "themes only",
			yaml:       "themes: [A, B]\n",
			wantWords:  map[types.Difficulty][]string{},
			wantThemes: []string{"A", "B"},
		},
		{
			name:   "unknown tier",
			yaml:   "words:\n  expert: [X]\n",
			errMsg: "unknown difficulty",
		},
		{
			name:   "same tier in two spellings",
			yaml:   "words:\n  beginner: [Apple]\n  Beginner: [Cloud]\n",
			errMsg: "listed more than once",
		},
		{
			name:   "malformed yaml",
			yaml:   "words: [unclosed\n",
			errMsg: "parsing catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.yaml))
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			for _, d := range types.Difficulties {
				assert.Equal(t, len(tt.wantWords[d]), len(c.Words(d)), "tier %s", d)
				if want, ok := tt.wantWords[d]; ok {
					assert.Equal(t, want, c.Words(d))
				}
			}
			assert.Equal(t, tt.wantThemes, c.Themes())
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("words:\n  intermediate: [Drone, Podcast, Rental]\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Drone", "Podcast", "Rental"}, c.Words(types.DifficultyIntermediate))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading catalog")
}

func TestSummary(t *testing.T) {
	c := New(map[types.Difficulty][]string{
		types.DifficultyBeginner: {"Apple", "Cloud"},
	}, []string{"Pet Rocks", "Tiny cafe"})

	s := c.Summary()
	assert.Equal(t, 2, s.Words[types.DifficultyBeginner])
	assert.Equal(t, 0, s.Words[types.DifficultyIntermediate])
	assert.Equal(t, 0, s.Words[types.DifficultyAdvanced])
	assert.Equal(t, 2, s.Themes)
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	require.NoError(t, err)

	c, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default().Summary(), c.Summary())
}

func TestBlankEntriesDropped(t *testing.T) {
	c, err := Parse([]byte(`
words:
  beginner: [Apple, "", "  ", Cloud]
themes: ["", Pet Rocks]
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "Cloud"}, c.Words(types.DifficultyBeginner))
	assert.Equal(t, []string{"Pet Rocks"}, c.Themes())
	assert.Equal(t, 2, c.Summary().Words[types.DifficultyBeginner])
}
