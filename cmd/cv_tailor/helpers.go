package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/cv-tailor/internal/config"
	"github.com/jonathan/cv-tailor/internal/llm"
)

// newClient builds the invocation layer from the environment. The
// gemini provider joins the rotation only when its credential is set.
func newClient(verbose bool) *llm.Client {
	providers := llm.DefaultProviders(config.HasGeminiCredential())
	client := llm.NewClient(providers, config.CredentialsFromEnv())
	client.Verbose = verbose
	return client
}

// readTextFile reads a required input file and reports a path-bearing
// error on failure.
func readTextFile(path, what string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s file %s: %w", what, path, err)
	}
	return string(data), nil
}

// writeJSON renders v as indented JSON to either stdout or a file.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

// writeTextFile writes a produced artifact to disk.
func writeTextFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// loadMergedConfig loads an optional config file and applies flag
// overrides on top.
func loadMergedConfig(path string, override func(cfg *config.Config)) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}
	if override != nil {
		override(&cfg)
	}
	return cfg, nil
}
