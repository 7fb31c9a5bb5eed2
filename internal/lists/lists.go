// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lists holds the read-only word lists and theme list that ideas are
// drawn from. A catalog is either the built-in one or loaded from YAML once
// at startup; it is never mutated afterwards.
package lists

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/idea-generator/pkg/types"
)

// Catalog is the set of word lists, keyed by difficulty, plus the theme list.
type Catalog struct {
	words  map[types.Difficulty][]string
	themes []string
}

// File is the on-disk YAML representation of a catalog.
//
//	words:
//	  beginner: [Apple, Cloud]
//	themes:
//	  - Pet Rocks
type File struct {
	Words  map[string][]string `yaml:"words"`
	Themes []string            `yaml:"themes"`
}

// New builds a catalog from copies of words and themes. Blank entries are
// dropped so they never render as an empty slot.
func New(words map[types.Difficulty][]string, themes []string) *Catalog {
	c := &Catalog{
		words:  make(map[types.Difficulty][]string, len(words)),
		themes: nonBlank(themes),
	}
	for d, list := range words {
		c.words[d] = nonBlank(list)
	}
	return c
}

func nonBlank(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// Load reads a catalog from a YAML file. Difficulty keys must name a known
// tier; tiers may be absent or empty.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a catalog from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	words := make(map[types.Difficulty][]string, len(f.Words))
	for key, list := range f.Words {
		d, err := types.ParseDifficulty(key)
		if err != nil {
			return nil, fmt.Errorf("parsing catalog: %w", err)
		}
		if _, dup := words[d]; dup {
			return nil, fmt.Errorf("parsing catalog: tier %q listed more than once", d)
		}
		words[d] = list
	}
	return New(words, f.Themes), nil
}

// Words returns a copy of the word list for d. Unknown tiers yield an empty list.
func (c *Catalog) Words(d types.Difficulty) []string {
	return slices.Clone(c.words[d])
}

// Themes returns a copy of the theme list.
func (c *Catalog) Themes() []string {
	return slices.Clone(c.themes)
}

// Summary reports the size of each list.
type Summary struct {
	Words  map[types.Difficulty]int `json:"words" yaml:"words"`
	Themes int                      `json:"themes" yaml:"themes"`
}

// Summary counts entries per difficulty tier and in the theme list. Every
// known tier appears, with zero for missing ones.
func (c *Catalog) Summary() Summary {
	s := Summary{
		Words:  make(map[types.Difficulty]int, len(types.Difficulties)),
		Themes: len(c.themes),
	}
	for _, d := range types.Difficulties {
		s.Words[d] = len(c.words[d])
	}
	return s
}

// Marshal encodes the catalog in the File layout, tiers in difficulty order.
func (c *Catalog) Marshal() ([]byte, error) {
	f := File{Words: make(map[string][]string, len(c.words)), Themes: c.themes}
	for _, d := range types.Difficulties {
		if list, ok := c.words[d]; ok {
			f.Words[string(d)] = list
		}
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("marshaling catalog: %w", err)
	}
	return data, nil
}
