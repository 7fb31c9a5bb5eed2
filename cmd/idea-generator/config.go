// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/idea-generator/internal/generator"
	"github.com/pdiddy/idea-generator/internal/lists"
	"github.com/pdiddy/idea-generator/pkg/types"
)

// envKeyReplacer maps nested keys such as history.dir to IDEA_GENERATOR_HISTORY_DIR.
var envKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

// loadConfig assembles the typed configuration from viper (flags, env, file).
func loadConfig(v *viper.Viper) types.Config {
	return types.Config{
		Lists:  v.GetString("lists"),
		Locale: types.Locale(v.GetString("locale")),
		History: types.HistoryConfig{
			Dir:        v.GetString("history.dir"),
			Enabled:    v.GetBool("history.enabled"),
			MaxResults: v.GetInt("history.max_results"),
		},
		Server: types.ServerConfig{
			Addr: v.GetString("server.addr"),
		},
		Log: types.LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}
}

// loadCatalog returns the catalog named by cfg.Lists, or the built-in one.
func loadCatalog(cfg types.Config) (*lists.Catalog, error) {
	if cfg.Lists == "" {
		return lists.Default(), nil
	}
	return lists.Load(cfg.Lists)
}

// newGenerator builds a generator over the configured catalog and locale.
func newGenerator(cfg types.Config) (*generator.Generator, *lists.Catalog, error) {
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return nil, nil, err
	}
	msgs, err := generator.MessagesFor(cfg.Locale)
	if err != nil {
		return nil, nil, fmt.Errorf("loading messages: %w", err)
	}
	return generator.New(catalog, msgs, nil), catalog, nil
}
