// Package validation checks tailored documents for structural validity.
package validation

import (
	"fmt"
	"strings"
)

// InvalidDocumentError reports that a tailored document lost one or
// more of its required envelope markers. It is fatal for a pipeline
// run: a document without its envelope cannot be compiled.
type InvalidDocumentError struct {
	MissingMarkers []string
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("invalid output document: missing markers: %s", strings.Join(e.MissingMarkers, ", "))
}
