// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Locale selects the language of labels and fallback messages.
type Locale string

const (
	LocaleJapanese Locale = "ja"
	LocaleEnglish  Locale = "en"
)

// HistoryConfig holds settings for the idea history store.
type HistoryConfig struct {
	// Dir is the directory that holds ideas.db and export files.
	Dir string `json:"dir" yaml:"dir"`

	// Enabled records every generation when true.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// MaxResults is the default number of ideas listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address in host:port form (default "127.0.0.1:8080").
	Addr string `json:"addr" yaml:"addr"`
}

// LogConfig selects the structured logger used by the server.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level"`

	// Format is "text" or "json".
	Format string `json:"format" yaml:"format"`
}

// Config groups all settings for the idea generator.
type Config struct {
	// Lists is an optional path to a YAML catalog. Empty uses the built-in lists.
	Lists string `json:"lists,omitempty" yaml:"lists,omitempty"`

	// Locale selects labels and messages (default "ja").
	Locale Locale `json:"locale" yaml:"locale"`

	History HistoryConfig `json:"history" yaml:"history"`
	Server  ServerConfig  `json:"server" yaml:"server"`
	Log     LogConfig     `json:"log" yaml:"log"`
}
