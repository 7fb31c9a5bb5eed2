// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the idea generator:
// generation modes, difficulty tiers, recorded ideas, and configuration.
package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrUnknownMode is returned when a mode name does not match any Mode.
	ErrUnknownMode = errors.New("unknown mode")

	// ErrUnknownDifficulty is returned when a difficulty name does not match any Difficulty.
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// Mode selects which generation algorithm runs.
type Mode string

const (
	// ModeThreeWord draws three distinct words from a difficulty tier.
	ModeThreeWord Mode = "three-word"

	// ModePitchBattle draws one theme from the flat theme list.
	ModePitchBattle Mode = "pitch-battle"
)

// Modes lists every Mode in display order.
var Modes = []Mode{ModeThreeWord, ModePitchBattle}

// ParseMode maps a user-supplied name to a Mode. Matching ignores case and
// accepts underscores in place of hyphens.
func ParseMode(s string) (Mode, error) {
	norm := Mode(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-"))
	for _, m := range Modes {
		if m == norm {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownMode, s, joinNames(Modes))
}

// Difficulty selects which word list tier three-word generation samples from.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Difficulties lists every Difficulty from easiest to hardest.
var Difficulties = []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

// ParseDifficulty maps a user-supplied name to a Difficulty, ignoring case.
func ParseDifficulty(s string) (Difficulty, error) {
	norm := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	for _, d := range Difficulties {
		if d == norm {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownDifficulty, s, joinNames(Difficulties))
}

// Idea is one recorded generation.
type Idea struct {
	// ID is a UUID assigned when the idea is recorded.
	ID string `json:"id" yaml:"id"`

	// Mode is the generation mode that produced the idea.
	Mode Mode `json:"mode" yaml:"mode"`

	// Difficulty is the word tier used. Empty for pitch-battle ideas.
	Difficulty Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`

	// Words holds the sampled words for three-word ideas.
	Words []string `json:"words,omitempty" yaml:"words,omitempty"`

	// Theme holds the sampled theme for pitch-battle ideas.
	Theme string `json:"theme,omitempty" yaml:"theme,omitempty"`

	// Text is the rendered display string shown to the user.
	Text string `json:"text" yaml:"text"`

	// CreatedAt is when the idea was generated.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

func joinNames[T ~string](names []T) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}
	return strings.Join(parts, ", ")
}
