package notes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ReadsAndTrims(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n  values mentorship and long walks  \n"), 0o644))

	loader := NewLoader(path)
	assert.Equal(t, "values mentorship and long walks", loader.Load())
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Empty(t, loader.Load())
}

func TestLoad_EmptyPathIsEmpty(t *testing.T) {
	assert.Empty(t, NewLoader("").Load())
}

func TestLoad_CachesFirstRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("first"), 0o644))

	loader := NewLoader(path)
	assert.Equal(t, "first", loader.Load())

	require.NoError(t, os.WriteFile(path, []byte("second"), 0o644))
	assert.Equal(t, "first", loader.Load(), "file is read once and cached")
}
