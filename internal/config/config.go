// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/cv-tailor/internal/llm"
)

// Environment variable names for provider credentials.
const (
	EnvOpenRouterKey = "OPENROUTER_API_KEY"
	EnvGroqKey       = "GROQ_API_KEY"
	EnvGeminiKey     = "GEMINI_API_KEY"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Job      string `json:"job,omitempty"`      // Path to job description text file
	Template string `json:"template,omitempty"` // Path to the LaTeX template document
	Notes    string `json:"notes,omitempty"`    // Path to the personal-notes supplement

	// Behavior
	Provider    string `json:"provider,omitempty"`     // Preferred generation provider
	EditingMode string `json:"editing_mode,omitempty"` // conservative, moderate, aggressive, none
	MaxAttempts int    `json:"max_attempts,omitempty"` // Invocation layer attempt budget
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
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
	if c.MaxAttempts < 0 {
		return fmt.Errorf("config error: 'max_attempts' must be non-negative")
	}

	switch c.EditingMode {
	case "", "conservative", "moderate", "aggressive", "none":
	default:
		return fmt.Errorf("config error: unknown editing mode %q", c.EditingMode)
	}

	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Notes == "" {
		result.Notes = defaults.Notes
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.EditingMode == "" {
		result.EditingMode = defaults.EditingMode
	}
	if result.MaxAttempts == 0 {
		result.MaxAttempts = defaults.MaxAttempts
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}

// CredentialsFromEnv builds a credential store from the environment.
// Absent variables simply leave the provider without a key; the
// invocation layer skips such providers at call time.
func CredentialsFromEnv() *llm.CredentialStore {
	store := llm.NewCredentialStore()
	if key := os.Getenv(EnvOpenRouterKey); key != "" {
		store.SetAPIKey(llm.ProviderOpenRouter, key)
	}
	if key := os.Getenv(EnvGroqKey); key != "" {
		store.SetAPIKey(llm.ProviderGroq, key)
	}
	if key := os.Getenv(EnvGeminiKey); key != "" {
		store.SetAPIKey(llm.ProviderGemini, key)
	}
	return store
}

// HasGeminiCredential reports whether the optional gemini provider is
// configured in the environment.
func HasGeminiCredential() bool {
	return os.Getenv(EnvGeminiKey) != ""
}
