package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	// DefaultMaxAttempts is the attempt budget for one logical invocation.
	DefaultMaxAttempts = 3
	// requestTimeout bounds a single provider request.
	requestTimeout = 30 * time.Second
	// backoffBase is the unit of the linear backoff between attempts
	// (delay = backoffBase x attempt number).
	backoffBase = time.Second

	// generationTemperature keeps output deterministic across providers.
	generationTemperature = 0.1
	// maxOutputTokens bounds the generated payload length.
	maxOutputTokens = 4000
)

// systemInstruction is the fixed instruction message sent with every request.
const systemInstruction = "You are an expert AI workflow specializing in LaTeX CV optimization and job-specific tailoring. " +
	"You must be deterministic, factual, and explainable. Your purpose is to take a job description and an existing LaTeX CV, " +
	"then generate a new LaTeX CV perfectly aligned to the job without fabricating or altering factual data."

// transport performs a single bounded request against one provider.
type transport interface {
	complete(ctx context.Context, cfg ProviderConfig, apiKey, system, prompt string) (string, error)
}

// Options configures one Complete call.
type Options struct {
	// Provider is the preferred provider to try first. Defaults to the
	// first provider in the rotation.
	Provider string
	// MaxAttempts is the attempt budget. Defaults to DefaultMaxAttempts.
	MaxAttempts int
}

// Client issues logical generation requests with automatic provider
// switching and bounded retry. It is stateless across invocations; the
// rotation cursor lives only within one Complete call.
type Client struct {
	providers  []ProviderConfig
	store      *CredentialStore
	transports map[ProviderKind]transport
	backoff    time.Duration
	sleep      func(time.Duration)
	Verbose    bool
}

// NewClient creates a client over the given provider rotation, reading
// credentials from store at call time.
func NewClient(providers []ProviderConfig, store *CredentialStore) *Client {
	return &Client{
		providers: providers,
		store:     store,
		transports: map[ProviderKind]transport{
			KindOpenAI: &openAITransport{httpClient: &http.Client{}},
			KindGemini: &geminiTransport{},
		},
		backoff: backoffBase,
		sleep:   time.Sleep,
	}
}

// Complete sends one prompt through the provider rotation. On failure it
// records the error, switches to the next provider round-robin, and waits
// an attempt-proportional delay before retrying. It fails with
// *UnavailableError only after all attempts are exhausted.
func (c *Client) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	if len(c.providers) == 0 {
		return "", &UnavailableError{Cause: errors.New("no providers configured")}
	}

	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	start := c.providerIndex(opts.Provider)
	snapshot := c.store.Snapshot()

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		cfg := c.providers[(start+attempt-1)%len(c.providers)]
		c.logf("LLM | attempt %d/%d via %s (%s)\n", attempt, maxAttempts, cfg.Name, cfg.Model)

		apiKey := snapshot.APIKey(cfg.Name)
		if apiKey == "" {
			// Configuration problem: rotate without waiting.
			lastErr = &MissingCredentialError{Provider: cfg.Name}
			c.logf("LLM | attempt %d failed: %v\n", attempt, lastErr)
			continue
		}

		text, err := c.attempt(ctx, cfg, apiKey, prompt)
		if err == nil {
			return text, nil
		}

		lastErr = err
		c.logf("LLM | attempt %d failed: %v\n", attempt, err)
		if attempt < maxAttempts {
			c.sleep(c.backoff * time.Duration(attempt))
		}
	}

	return "", &UnavailableError{Attempts: maxAttempts, Cause: lastErr}
}

// attempt performs one bounded request against a single provider.
func (c *Client) attempt(ctx context.Context, cfg ProviderConfig, apiKey, prompt string) (string, error) {
	tr, ok := c.transports[cfg.Kind]
	if !ok {
		return "", &RequestError{Provider: cfg.Name, Message: fmt.Sprintf("unsupported provider kind %q", cfg.Kind)}
	}

	attemptCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	return tr.complete(attemptCtx, cfg, apiKey, systemInstruction, prompt)
}

// providerIndex returns the rotation index of the named provider, or 0.
func (c *Client) providerIndex(name string) int {
	for i, p := range c.providers {
		if p.Name == name {
			return i
		}
	}
	return 0
}

func (c *Client) logf(format string, args ...any) {
	if c.Verbose {
		fmt.Printf(format, args...)
	}
}
