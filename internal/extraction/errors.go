// Package extraction wraps the invocation layer with task-specific
// prompts and extracts well-formed structured records from free-form
// generated text, validating their shape before returning them.
package extraction

import "fmt"

// MalformedOutputError indicates that no valid structured payload could
// be located in the generated text. Raw carries the offending text for
// diagnostics.
type MalformedOutputError struct {
	Message string
	Raw     string
	Cause   error
}

func (e *MalformedOutputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed generation output: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed generation output: %s", e.Message)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Cause
}
