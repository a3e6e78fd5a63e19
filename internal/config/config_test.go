package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-tailor/internal/llm"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Success(t *testing.T) {
	path := writeTempConfig(t, `{
  "job": "job.txt",
  "provider": "groq",
  "editing_mode": "conservative",
  "max_attempts": 5,
  "verbose": true
}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "job.txt", cfg.Job)
	assert.Equal(t, "groq", cfg.Provider)
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, "{not json")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_EditingModes(t *testing.T) {
	for _, mode := range []string{"", "conservative", "moderate", "aggressive", "none"} {
		cfg := Config{EditingMode: mode}
		assert.NoError(t, cfg.Validate(), "mode %q", mode)
	}

	cfg := Config{EditingMode: "reckless"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_NegativeAttempts(t *testing.T) {
	cfg := Config{MaxAttempts: -1}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingTemplateFile(t *testing.T) {
	cfg := Config{Template: filepath.Join(t.TempDir(), "absent.tex")}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Provider: "groq"}
	merged := cfg.MergeWithDefaults(Config{
		Provider:    "openrouter",
		EditingMode: "conservative",
		MaxAttempts: 3,
	})

	assert.Equal(t, "groq", merged.Provider, "explicit value wins")
	assert.Equal(t, "conservative", merged.EditingMode)
	assert.Equal(t, 3, merged.MaxAttempts)
}

func TestCredentialsFromEnv(t *testing.T) {
	t.Setenv(EnvOpenRouterKey, "or-key")
	t.Setenv(EnvGroqKey, "")
	t.Setenv(EnvGeminiKey, "gem-key")

	store := CredentialsFromEnv()
	snap := store.Snapshot()

	assert.Equal(t, "or-key", snap.APIKey(llm.ProviderOpenRouter))
	assert.Empty(t, snap.APIKey(llm.ProviderGroq))
	assert.Equal(t, "gem-key", snap.APIKey(llm.ProviderGemini))
	assert.True(t, HasGeminiCredential())
}
