package interview

import "sync"

// Store holds sessions keyed by ID and tracks the most recently started
// one. Starting a new session silently supersedes the previous current
// session (last-writer-wins), but older sessions stay retrievable by ID.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	current  string
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Put registers a session and makes it the current one.
func (s *Store) Put(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	s.current = sess.ID
}

// Get looks up a session by ID. An empty ID resolves to the current
// session.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id == "" {
		id = s.current
	}
	sess, ok := s.sessions[id]
	return sess, ok
}

// Current returns the most recently started session.
func (s *Store) Current() (*Session, bool) {
	return s.Get("")
}
