package extraction

import (
	"context"
	"strings"

	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/prompts"
	"github.com/jonathan/cv-tailor/internal/types"
)

// fallbackKeywordLimit bounds how many raw tokens the fallback JobRecord
// keeps as keywords.
const fallbackKeywordLimit = 20

var jobShape = shapeSpec{
	Required: []string{"role_title", "required_skills", "keywords"},
	Kinds: map[string]containerKind{
		"core_responsibilities": kindList,
		"required_skills":       kindList,
		"preferred_skills":      kindList,
		"keywords":              kindList,
	},
}

// ParseJob extracts a structured JobRecord from raw job description text.
func ParseJob(ctx context.Context, gen Generator, opts llm.Options, jobText string) (*types.JobRecord, error) {
	prompt := prompts.Render("tailoring.json", "parse-job", map[string]string{
		"JobText": jobText,
	})

	raw, err := gen.Complete(ctx, prompt, opts)
	if err != nil {
		return nil, err
	}

	var record types.JobRecord
	if err := decodeSpan(raw, jobShape, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// FallbackJobRecord builds the deterministic stand-in used when job
// parsing fails: a generic mid-level software role whose keywords are
// the first tokens of the raw description, lowercased.
func FallbackJobRecord(jobText string) *types.JobRecord {
	tokens := strings.Fields(strings.ToLower(jobText))
	if len(tokens) > fallbackKeywordLimit {
		tokens = tokens[:fallbackKeywordLimit]
	}
	if tokens == nil {
		tokens = []string{}
	}

	return &types.JobRecord{
		RoleTitle:            "Software Engineer",
		CoreResponsibilities: []string{"Develop software applications", "Collaborate with team"},
		RequiredSkills:       []string{"Programming", "Problem solving"},
		PreferredSkills:      []string{},
		Keywords:             tokens,
		Seniority:            "mid",
		Location:             "Remote",
		CompanyType:          "tech",
	}
}
