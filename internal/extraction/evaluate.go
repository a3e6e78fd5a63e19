package extraction

import (
	"context"

	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/prompts"
	"github.com/jonathan/cv-tailor/internal/types"
)

var evaluationShape = shapeSpec{
	Required: []string{"score", "feedback"},
	Kinds: map[string]containerKind{
		"feedback":            kindRecord,
		"detailed_analysis":   kindRecord,
		"skill_demonstration": kindRecord,
	},
}

// EvaluateAnswer scores a submitted answer against its question and the
// job requirements. The personal-notes supplement, when present, is
// appended to personalize the evaluation.
func EvaluateAnswer(ctx context.Context, gen Generator, opts llm.Options, question *types.Question, answer string, job *types.JobRecord, doc *types.DocumentRecord, notes string) (*types.Evaluation, error) {
	prompt := prompts.Render("interview.json", "evaluate-answer", map[string]string{
		"QuestionJSON": mustJSON(question),
		"Answer":       answer,
		"JobJSON":      mustJSON(job),
		"DocumentJSON": mustJSON(doc),
	})
	prompt = withNotes(prompt, "ADDITIONAL PERSONAL INFORMATION ABOUT THE CANDIDATE (use to personalize evaluation, must remain factual)", notes)

	raw, err := gen.Complete(ctx, prompt, opts)
	if err != nil {
		return nil, err
	}

	var eval types.Evaluation
	if err := decodeSpan(raw, evaluationShape, &eval); err != nil {
		return nil, err
	}
	return &eval, nil
}
