// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/job-matcher/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Jobs    string `json:"jobs,omitempty"`    // Path to job postings JSON file
	Resume  string `json:"resume,omitempty"`  // Path to resume text file
	Profile string `json:"profile,omitempty"` // Path to pre-built profile JSON file

	// Ranking behavior
	Limit        int    `json:"limit,omitempty"`         // Maximum recommendations returned
	MinRelevance *int   `json:"min_relevance,omitempty"` // Minimum match percentage kept
	Strategy     string `json:"strategy,omitempty"`      // Scoring strategy: rule or tfidf

	// Candidate hints
	Name     string `json:"name,omitempty"`     // Candidate name
	Email    string `json:"email,omitempty"`    // Candidate email
	Location string `json:"location,omitempty"` // Candidate location fallback

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
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
// Note: required-field checks happen at CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Resume != "" && c.Profile != "" {
		return fmt.Errorf("config error: 'resume' and 'profile' are mutually exclusive")
	}

	if c.Limit < 0 {
		return fmt.Errorf("config error: 'limit' must be non-negative")
	}
	if c.MinRelevance != nil && (*c.MinRelevance < 0 || *c.MinRelevance > 100) {
		return fmt.Errorf("config error: 'min_relevance' must be between 0 and 100")
	}

	switch c.Strategy {
	case "", types.StrategyRule, types.StrategyTFIDF:
	default:
		return fmt.Errorf("config error: unknown strategy %q", c.Strategy)
	}

	for name, path := range map[string]string{
		"jobs": c.Jobs, "resume": c.Resume, "profile": c.Profile,
	} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Jobs == "" {
		result.Jobs = defaults.Jobs
	}
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.Strategy == "" {
		result.Strategy = defaults.Strategy
	}
	if result.Name == "" {
		result.Name = defaults.Name
	}
	if result.Email == "" {
		result.Email = defaults.Email
	}
	if result.Location == "" {
		result.Location = defaults.Location
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.Limit == 0 {
		result.Limit = defaults.Limit
	}
	if result.MinRelevance == nil {
		result.MinRelevance = defaults.MinRelevance
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
