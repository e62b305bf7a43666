// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the builder configuration that can be loaded from a YAML
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	Codebase string `yaml:"codebase,omitempty"` // Codebase root containing the smart_facts sources
	Output   string `yaml:"output,omitempty"`   // Output HTML file path
	Template string `yaml:"template,omitempty"` // Optional dashboard template override

	// Presentation
	Title string `yaml:"title,omitempty"` // Dashboard page title

	// Remote trigger
	DispatchRepo  string `yaml:"dispatch_repo,omitempty"`  // owner/repo to send repository_dispatch to
	DispatchEvent string `yaml:"dispatch_event,omitempty"` // event_type sent with the dispatch

	// Watch mode
	WatchSchedule string `yaml:"watch_schedule,omitempty"` // Cron expression for scheduled rebuilds

	// Behavior
	Verbose bool `yaml:"verbose,omitempty"` // Print detailed extraction information
}

// Defaults returns the built-in configuration defaults.
func Defaults() Config {
	return Config{
		Output:        "index.html",
		DispatchEvent: "rebuild-dashboard",
	}
}

// LoadConfig loads configuration from a YAML file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}
	if c.Codebase != "" {
		if _, err := os.Stat(c.Codebase); os.IsNotExist(err) {
			return fmt.Errorf("config error: codebase root not found: %s", c.Codebase)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Codebase == "" {
		result.Codebase = defaults.Codebase
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Title == "" {
		result.Title = defaults.Title
	}
	if result.DispatchRepo == "" {
		result.DispatchRepo = defaults.DispatchRepo
	}
	if result.DispatchEvent == "" {
		result.DispatchEvent = defaults.DispatchEvent
	}
	if result.WatchSchedule == "" {
		result.WatchSchedule = defaults.WatchSchedule
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
