package validation

import "strings"

// envelopeMarkers are the structural delimiters every well-formed
// LaTeX document must retain after editing.
var envelopeMarkers = []string{
	`\documentclass`,
	`\begin{document}`,
}

// CheckEnvelope verifies that the document still carries its required
// envelope markers. It returns an *InvalidDocumentError naming every
// missing marker, or nil when the envelope is intact.
func CheckEnvelope(doc string) error {
	var missing []string
	for _, marker := range envelopeMarkers {
		if !strings.Contains(doc, marker) {
			missing = append(missing, marker)
		}
	}
	if len(missing) > 0 {
		return &InvalidDocumentError{MissingMarkers: missing}
	}
	return nil
}
