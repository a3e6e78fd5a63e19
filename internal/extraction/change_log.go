package extraction

import (
	"context"
	"fmt"

	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/prompts"
	"github.com/jonathan/cv-tailor/internal/types"
)

// changeLogExcerptLen bounds how much of each document version is
// embedded in the change-log prompt.
const changeLogExcerptLen = 1000

var changeLogShape = shapeSpec{
	Required: []string{"changes", "summary"},
	Kinds: map[string]containerKind{
		"changes": kindList,
		"summary": kindRecord,
	},
}

// SummarizeChanges extracts a ChangeLog describing how the tailored
// document differs from the original.
func SummarizeChanges(ctx context.Context, gen Generator, opts llm.Options, job *types.JobRecord, gap *types.GapAnalysis, originalDoc, tailoredDoc string) (*types.ChangeLog, error) {
	prompt := prompts.Render("tailoring.json", "change-log", map[string]string{
		"JobJSON":         mustJSON(job),
		"GapJSON":         mustJSON(gap),
		"OriginalExcerpt": excerpt(originalDoc),
		"TailoredExcerpt": excerpt(tailoredDoc),
	})

	raw, err := gen.Complete(ctx, prompt, opts)
	if err != nil {
		return nil, err
	}

	var log types.ChangeLog
	if err := decodeSpan(raw, changeLogShape, &log); err != nil {
		return nil, err
	}
	return &log, nil
}

// FallbackChangeLog synthesizes a change log from the applied edit set
// and the gap analysis when the service cannot produce one.
func FallbackChangeLog(edits *types.EditSet, gap *types.GapAnalysis) *types.ChangeLog {
	changes := make([]types.Change, 0, len(edits.SectionEdits))
	for _, edit := range edits.SectionEdits {
		changes = append(changes, types.Change{
			OriginalText:  edit.OriginalText,
			NewText:       edit.NewText,
			JobReference:  edit.Subsection,
			Confidence:    edit.Confidence,
			Justification: fmt.Sprintf("Targeted edit to %s section", edit.Section),
		})
	}

	return &types.ChangeLog{
		Changes: changes,
		Summary: types.ChangeSummary{
			KeywordsAdded:        orEmpty(gap.MatchedKeywords),
			KeywordsMissing:      orEmpty(gap.MissingKeywords),
			QuestionsForUser:     []string{},
			RelevanceImprovement: "CV was optimized using targeted edits to preserve LaTeX structure",
		},
	}
}

func excerpt(doc string) string {
	if len(doc) > changeLogExcerptLen {
		return doc[:changeLogExcerptLen]
	}
	return doc
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
