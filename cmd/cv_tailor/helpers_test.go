package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-tailor/internal/config"
)

func TestRootCommand_RegistersAllSubcommands(t *testing.T) {
	want := []string{"tailor", "letter", "interview", "questions", "answer", "validate"}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range want {
		assert.True(t, registered[name], "command %q should be registered", name)
	}
}

func TestReadTextFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("Senior Go Engineer"), 0o644))

	text, err := readTextFile(path, "job description")
	require.NoError(t, err)
	assert.Equal(t, "Senior Go Engineer", text)

	_, err = readTextFile(filepath.Join(tmpDir, "missing.txt"), "job description")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job description")
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestWriteJSON_ToFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.json")

	err := writeJSON(path, map[string]string{"run_id": "abc"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"run_id": "abc"`)
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "present.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	assert.True(t, fileExists(path))
	assert.False(t, fileExists(filepath.Join(tmpDir, "absent.txt")))
	assert.False(t, fileExists(tmpDir), "directories are not files")
}

func TestLoadMergedConfig_FlagOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	jobPath := filepath.Join(tmpDir, "job.txt")
	templatePath := filepath.Join(tmpDir, "cv.tex")
	require.NoError(t, os.WriteFile(jobPath, []byte("job"), 0o644))
	require.NoError(t, os.WriteFile(templatePath, []byte("tex"), 0o644))

	configPath := filepath.Join(tmpDir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{
		"job": "`+jobPath+`",
		"template": "`+templatePath+`",
		"provider": "openrouter",
		"editing_mode": "conservative"
	}`), 0o644))

	cfg, err := loadMergedConfig(configPath, func(cfg *config.Config) {
		cfg.Provider = "groq"
	})
	require.NoError(t, err)

	assert.Equal(t, "groq", cfg.Provider, "override should win over the file value")
	assert.Equal(t, "conservative", cfg.EditingMode)
	assert.Equal(t, jobPath, cfg.Job)
}

func TestLoadMergedConfig_NoFile(t *testing.T) {
	cfg, err := loadMergedConfig("", func(cfg *config.Config) {
		cfg.EditingMode = "moderate"
	})
	require.NoError(t, err)
	assert.Equal(t, "moderate", cfg.EditingMode)
}

func TestLoadMergedConfig_InvalidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"editing_mode": "reckless"}`), 0o644))

	_, err := loadMergedConfig(configPath, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown editing mode")
}
