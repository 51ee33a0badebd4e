// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	Responses   string `json:"responses,omitempty"`   // Path to response document JSON file
	Out         string `json:"out,omitempty"`         // Path to output JSON file
	Locale      string `json:"locale,omitempty"`      // Locale for question and follow-up text
	Verbose     bool   `json:"verbose,omitempty"`     // Print human-readable result summaries
	Concurrency int    `json:"concurrency,omitempty"` // Worker count for batch assignment
}

// LoadConfig loads configuration from a JSON file.
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
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}

	if c.Responses != "" {
		if _, err := os.Stat(c.Responses); os.IsNotExist(err) {
			return fmt.Errorf("config error: responses file not found: %s", c.Responses)
		}
	}

	return nil
}
