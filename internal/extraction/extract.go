package extraction

import (
	"context"
	"encoding/json"

	"github.com/jonathan/cv-tailor/internal/llm"
)

// Generator is the subset of the invocation layer the extraction stage
// depends on.
type Generator interface {
	Complete(ctx context.Context, prompt string, opts llm.Options) (string, error)
}

// mustJSON renders a record as indented JSON for prompt embedding.
// Marshal failures cannot happen for the plain structs passed here.
func mustJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

// withNotes appends the personal-notes supplement to a prompt under the
// given heading. An empty supplement leaves the prompt unchanged.
func withNotes(prompt, heading, notes string) string {
	if notes == "" {
		return prompt
	}
	return prompt + "\n\n" + heading + ":\n" + notes
}
