package extraction

import (
	"context"

	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/prompts"
	"github.com/jonathan/cv-tailor/internal/types"
)

var documentShape = shapeSpec{
	Required: []string{"header", "sections"},
	Kinds: map[string]containerKind{
		"header":   kindRecord,
		"sections": kindRecord,
	},
}

// ParseDocument extracts a structured DocumentRecord from the raw LaTeX
// template text.
func ParseDocument(ctx context.Context, gen Generator, opts llm.Options, docText string) (*types.DocumentRecord, error) {
	prompt := prompts.Render("tailoring.json", "parse-document", map[string]string{
		"DocumentText": docText,
	})

	raw, err := gen.Complete(ctx, prompt, opts)
	if err != nil {
		return nil, err
	}

	var record types.DocumentRecord
	if err := decodeSpan(raw, documentShape, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// FallbackDocumentRecord builds the deterministic stand-in used when
// document parsing fails: an empty but fully initialized record so
// downstream stages can iterate its sections safely.
func FallbackDocumentRecord() *types.DocumentRecord {
	return &types.DocumentRecord{
		Sections: types.DocumentSections{
			Education:  []types.EducationEntry{},
			Experience: []types.ExperienceEntry{},
			Skills: map[string][]string{
				"programming": {},
				"databases":   {},
				"frameworks":  {},
				"tools":       {},
			},
			Projects:     []types.ProjectEntry{},
			Achievements: []string{},
		},
	}
}
