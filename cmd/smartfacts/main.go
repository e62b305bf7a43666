// Package main provides the entry point for the Smart Facts dashboard builder.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hometap/smartfacts-dashboard/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "smartfacts",
	Short: "Smart Facts dashboard builder",
	Long:  "smartfacts extracts Smart Fact content definitions from the codebase, derives summary statistics, and renders the static marketing dashboard page.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfig merges an optional config file over built-in defaults.
func resolveConfig(path string) (config.Config, error) {
	defaults := config.Defaults()
	if path == "" {
		return defaults, nil
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg.MergeWithDefaults(defaults), nil
}
