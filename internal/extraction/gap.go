package extraction

import (
	"context"

	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/prompts"
	"github.com/jonathan/cv-tailor/internal/types"
)

var gapShape = shapeSpec{
	Required: []string{"matched_keywords", "missing_keywords", "suggested_rewrites"},
	Kinds: map[string]containerKind{
		"matched_keywords":        kindList,
		"missing_keywords":        kindList,
		"suggested_rewrites":      kindList,
		"clarification_questions": kindList,
	},
}

// AnalyzeGaps compares a parsed job against a parsed document and
// extracts the gap analysis record.
func AnalyzeGaps(ctx context.Context, gen Generator, opts llm.Options, job *types.JobRecord, doc *types.DocumentRecord) (*types.GapAnalysis, error) {
	prompt := prompts.Render("tailoring.json", "gap-analysis", map[string]string{
		"JobJSON":      mustJSON(job),
		"DocumentJSON": mustJSON(doc),
	})

	raw, err := gen.Complete(ctx, prompt, opts)
	if err != nil {
		return nil, err
	}

	var analysis types.GapAnalysis
	if err := decodeSpan(raw, gapShape, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// FallbackGapAnalysis builds the deterministic stand-in used when gap
// analysis fails: empty keyword sets and no rewrite suggestions, which
// downstream stages treat as "nothing to change".
func FallbackGapAnalysis() *types.GapAnalysis {
	return &types.GapAnalysis{
		MatchedKeywords:        []string{},
		MissingKeywords:        []string{},
		SuggestedRewrites:      []types.SuggestedRewrite{},
		ClarificationQuestions: []string{},
		RelevanceScore:         "unknown",
	}
}
