package extraction

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// containerKind is the expected JSON container for a key.
type containerKind string

const (
	kindList   containerKind = "array"
	kindRecord containerKind = "object"
)

// shapeSpec declares the expected shape of a task's structured record:
// which keys must be present and what container kind each known key must
// hold. It compiles to a minimal JSON Schema checked with gojsonschema.
type shapeSpec struct {
	Required []string
	Kinds    map[string]containerKind
}

// validate checks a decoded payload against the declared shape.
func (s shapeSpec) validate(payload map[string]any) error {
	properties := make(map[string]any, len(s.Kinds))
	for key, kind := range s.Kinds {
		properties[key] = map[string]any{"type": string(kind)}
	}

	schema := map[string]any{
		"type":       "object",
		"required":   s.Required,
		"properties": properties,
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewGoLoader(payload),
	)
	if err != nil {
		return fmt.Errorf("shape validation failed to run: %w", err)
	}
	if result.Valid() {
		return nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		messages = append(messages, desc.String())
	}
	return fmt.Errorf("shape violations: %s", strings.Join(messages, "; "))
}
