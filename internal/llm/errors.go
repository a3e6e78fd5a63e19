package llm

import "fmt"

// MissingCredentialError indicates a provider has no usable credential
// configured. It is a configuration problem: the attempt fails without
// waiting, and the error is never retried against the same provider.
type MissingCredentialError struct {
	Provider string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("missing API key for provider %s: configure it or set the environment variable", e.Provider)
}

// RequestError represents a failed request against one provider.
type RequestError struct {
	Provider   string
	StatusCode int
	Message    string
	Cause      error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("provider %s returned status %d: %s", e.Provider, e.StatusCode, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("provider %s request failed: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("provider %s request failed: %s", e.Provider, e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}

// UnavailableError indicates every attempt against every provider in the
// rotation failed. It wraps the last recorded error.
type UnavailableError struct {
	Attempts int
	Cause    error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation unavailable after %d attempts: %v", e.Attempts, e.Cause)
	}
	return fmt.Sprintf("generation unavailable after %d attempts", e.Attempts)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}
