// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generator

import "github.com/pdiddy/idea-generator/pkg/types"

// Session is the selection state of one user session. Result stays nil until
// the first generation and is replaced wholesale on every generation.
type Session struct {
	Mode       types.Mode       `json:"mode"`
	Difficulty types.Difficulty `json:"difficulty"`
	Result     *string          `json:"result"`
}

// NewSession returns a session in three-word mode at beginner difficulty.
func NewSession() *Session {
	return &Session{
		Mode:       types.ModeThreeWord,
		Difficulty: types.DifficultyBeginner,
	}
}

// Generate runs g for the session's current mode and difficulty and stores
// the rendered text as the new result. On error the previous result is kept.
func (s *Session) Generate(g *Generator) (types.Idea, error) {
	idea, err := g.Generate(s.Mode, s.Difficulty)
	if err != nil {
		return types.Idea{}, err
	}
	text := idea.Text
	s.Result = &text
	return idea, nil
}

// Snapshot returns a copy of the session that shares no memory with s.
func (s *Session) Snapshot() Session {
	c := *s
	if s.Result != nil {
		r := *s.Result
		c.Result = &r
	}
	return c
}
