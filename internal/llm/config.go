// Package llm provides the resilient invocation layer for external
// text-generation providers, with per-call provider failover and
// bounded retry.
package llm

import "sync"

// ProviderKind selects the wire protocol used to reach a provider.
type ProviderKind string

// Supported provider protocols.
const (
	// KindOpenAI is the OpenAI-compatible chat-completions protocol
	// (OpenRouter, Groq).
	KindOpenAI ProviderKind = "openai"
	// KindGemini is the Google Gemini SDK protocol.
	KindGemini ProviderKind = "gemini"
)

// Provider names known to the default configuration.
const (
	ProviderOpenRouter = "openrouter"
	ProviderGroq       = "groq"
	ProviderGemini     = "gemini"
)

// ProviderConfig describes one generation provider endpoint.
type ProviderConfig struct {
	Name         string
	Kind         ProviderKind
	BaseURL      string
	Model        string
	ExtraHeaders map[string]string
}

// DefaultProviders returns the ordered provider rotation. OpenRouter and
// Groq are always present; Gemini joins the rotation only when includeGemini
// is set, so the default failover pair stays stable.
func DefaultProviders(includeGemini bool) []ProviderConfig {
	providers := []ProviderConfig{
		{
			Name:    ProviderOpenRouter,
			Kind:    KindOpenAI,
			BaseURL: "https://openrouter.ai/api/v1",
			Model:   "mistralai/mixtral-8x7b-instruct",
			ExtraHeaders: map[string]string{
				"HTTP-Referer": "http://localhost:3001",
				"X-Title":      "LaTeX CV Optimizer",
			},
		},
		{
			Name:    ProviderGroq,
			Kind:    KindOpenAI,
			BaseURL: "https://api.groq.com/openai/v1",
			Model:   "llama3-70b-8192",
		},
	}
	if includeGemini {
		providers = append(providers, ProviderConfig{
			Name:  ProviderGemini,
			Kind:  KindGemini,
			Model: "gemini-2.5-flash",
		})
	}
	return providers
}

// CredentialStore is the sole owner of mutable provider credentials.
// The invocation layer never reads it directly; it takes an immutable
// Snapshot at call time.
type CredentialStore struct {
	mu   sync.RWMutex
	keys map[string]string
}

// NewCredentialStore creates an empty credential store.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{keys: make(map[string]string)}
}

// SetAPIKey updates the credential for a provider.
func (s *CredentialStore) SetAPIKey(provider, apiKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[provider] = apiKey
}

// Snapshot returns an immutable view of the current credentials.
func (s *CredentialStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make(map[string]string, len(s.keys))
	for k, v := range s.keys {
		keys[k] = v
	}
	return Snapshot{keys: keys}
}

// Snapshot is a frozen credential view taken for the duration of one
// logical invocation.
type Snapshot struct {
	keys map[string]string
}

// APIKey returns the credential for a provider, or empty string.
func (s Snapshot) APIKey(provider string) string {
	return s.keys[provider]
}
