package extraction

import (
	"encoding/json"
	"strings"
)

// ExtractJSONSpan locates the structured payload inside free-form
// generated text: the span between the first opening brace and the last
// closing brace. Models routinely wrap payloads in prose or markdown
// fences even when told not to; the span extraction makes the parse
// robust to both.
func ExtractJSONSpan(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end < start {
		return "", &MalformedOutputError{
			Message: "no JSON object found in response",
			Raw:     raw,
		}
	}

	return trimmed[start : end+1], nil
}

// decodeSpan extracts the JSON span from raw text, validates it against
// the task's shape spec, and unmarshals it into out.
func decodeSpan(raw string, shape shapeSpec, out any) error {
	span, err := ExtractJSONSpan(raw)
	if err != nil {
		return err
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(span), &payload); err != nil {
		return &MalformedOutputError{
			Message: "failed to parse JSON payload",
			Raw:     raw,
			Cause:   err,
		}
	}

	if err := shape.validate(payload); err != nil {
		return &MalformedOutputError{
			Message: "response shape mismatch",
			Raw:     raw,
			Cause:   err,
		}
	}

	if err := json.Unmarshal([]byte(span), out); err != nil {
		return &MalformedOutputError{
			Message: "failed to decode structured record",
			Raw:     raw,
			Cause:   err,
		}
	}
	return nil
}
