// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generator turns a mode and difficulty into a display string by
// sampling the catalog, and holds the per-session selection state.
package generator

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/pdiddy/idea-generator/internal/lists"
	"github.com/pdiddy/idea-generator/internal/sample"
	"github.com/pdiddy/idea-generator/pkg/types"
)

// wordSlots is the number of words in a three-word idea.
const wordSlots = 3

// Generator samples ideas from a catalog. It is not safe for concurrent use
// when constructed with a non-nil *rand.Rand.
type Generator struct {
	catalog *lists.Catalog
	rng     *rand.Rand
	msgs    Messages
	now     func() time.Time
}

// New returns a Generator over catalog. A nil rng uses the global math/rand/v2 source.
func New(catalog *lists.Catalog, msgs Messages, rng *rand.Rand) *Generator {
	return &Generator{
		catalog: catalog,
		rng:     rng,
		msgs:    msgs,
		now:     time.Now,
	}
}

// Generate draws a new idea. Empty lists produce the localized fallback
// message as the idea text; only an unknown mode is an error.
func (g *Generator) Generate(mode types.Mode, difficulty types.Difficulty) (types.Idea, error) {
	idea := types.Idea{Mode: mode, CreatedAt: g.now()}

	switch mode {
	case types.ModeThreeWord:
		idea.Difficulty = difficulty
		idea.Words = sample.Unique(g.rng, g.catalog.Words(difficulty), wordSlots)
		idea.Text = g.formatWords(idea.Words)
	case types.ModePitchBattle:
		theme, ok := sample.One(g.rng, g.catalog.Themes())
		if ok {
			idea.Theme = theme
			idea.Text = g.msgs.ThemeLabel + theme
		} else {
			idea.Text = g.msgs.NoTheme
		}
	default:
		return types.Idea{}, fmt.Errorf("generating idea: %w: %q", types.ErrUnknownMode, mode)
	}

	return idea, nil
}

func (g *Generator) formatWords(words []string) string {
	if len(words) == 0 {
		return g.msgs.NoWords
	}

	slots := make([]string, wordSlots)
	for i := range slots {
		word := g.msgs.Placeholder
		if i < len(words) {
			word = words[i]
		}
		slots[i] = fmt.Sprintf(g.msgs.WordLabel, i+1) + word
	}
	return strings.Join(slots, g.msgs.Separator)
}
