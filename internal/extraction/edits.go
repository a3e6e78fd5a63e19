package extraction

import (
	"context"

	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/prompts"
	"github.com/jonathan/cv-tailor/internal/types"
)

var editsShape = shapeSpec{
	Required: []string{"section_edits", "skill_additions", "project_reordering"},
	Kinds: map[string]containerKind{
		"section_edits":      kindList,
		"skill_additions":    kindList,
		"project_reordering": kindList,
	},
}

// ProposeEdits asks the service for conservative targeted edits and
// returns only the applicable ones: section edits that carry HIGH
// confidence and a substantive justification survive; everything below
// that bar is discarded before the set is handed to the caller.
func ProposeEdits(ctx context.Context, gen Generator, opts llm.Options, job *types.JobRecord, gap *types.GapAnalysis) (*types.EditSet, error) {
	prompt := prompts.Render("tailoring.json", "propose-edits", map[string]string{
		"JobJSON": mustJSON(job),
		"GapJSON": mustJSON(gap),
	})

	raw, err := gen.Complete(ctx, prompt, opts)
	if err != nil {
		return nil, err
	}

	var proposed types.EditSet
	if err := decodeSpan(raw, editsShape, &proposed); err != nil {
		return nil, err
	}

	filtered := proposed.Applicable()
	return &filtered, nil
}

// FallbackEditSet is the deterministic stand-in when edit proposal
// fails: no edits at all, leaving the document untouched.
func FallbackEditSet() *types.EditSet {
	return &types.EditSet{
		SectionEdits:      []types.SectionEdit{},
		SkillAdditions:    []types.SkillAddition{},
		ProjectReordering: []types.ProjectPriority{},
	}
}
