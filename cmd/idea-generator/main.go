// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the idea-generator CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the idea-generator CLI.
var rootCmd = &cobra.Command{
	Use:   "idea-generator",
	Short: "Random startup idea prompts for brainstorming and pitch practice",
	Long: `idea-generator draws random prompts for startup brainstorming.

Two modes are available: three-word picks three distinct words from a word
list chosen by difficulty, and pitch-battle picks a single pitch theme.
Ideas can be generated from the command line, recorded to a local history,
or served over a small JSON API.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./idea-generator.yaml or ~/.config/idea-generator/config.yaml)")
	flags.String("lists", "", "YAML catalog of word lists and themes (default: built-in lists)")
	flags.String("locale", "ja", "language of labels and messages: ja or en")
	flags.String("history-dir", "history", "directory for the idea history database and exports")

	viper.BindPFlag("lists", flags.Lookup("lists"))
	viper.BindPFlag("locale", flags.Lookup("locale"))
	viper.BindPFlag("history.dir", flags.Lookup("history-dir"))

	viper.SetDefault("history.max_results", 20)
	viper.SetDefault("server.addr", "127.0.0.1:8080")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("idea-generator")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "idea-generator"))
		}
	}

	viper.SetEnvPrefix("IDEA_GENERATOR")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
