// Package notes loads the optional personal-notes supplement: free
// text appended to certain prompts to personalize questions, answers,
// and evaluations.
package notes

import (
	"os"
	"strings"
	"sync"
)

// Loader reads one notes file at most once and caches the result for
// the process lifetime. A missing or unreadable file is not an error;
// it just means no supplement.
type Loader struct {
	path string

	once   sync.Once
	cached string
}

// NewLoader builds a loader for the given path. An empty path always
// loads as the empty supplement.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load returns the cached notes text, reading the file on first use.
func (l *Loader) Load() string {
	l.once.Do(func() {
		if l.path == "" {
			return
		}
		data, err := os.ReadFile(l.path)
		if err != nil {
			return
		}
		l.cached = strings.TrimSpace(string(data))
	})
	return l.cached
}
