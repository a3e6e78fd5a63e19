package extraction

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/prompts"
	"github.com/jonathan/cv-tailor/internal/types"
)

// minutesPerQuestion is the estimate embedded in the generation prompt.
const minutesPerQuestion = 5

// tierProfile describes one difficulty tier for the generation prompt.
type tierProfile struct {
	Description string
	Types       []string
}

var tierProfiles = map[types.Difficulty]tierProfile{
	types.DifficultyEasy: {
		Description: "Basic concepts, fundamental knowledge, and simple problem-solving",
		Types:       []string{"conceptual", "basic_coding", "mcq"},
	},
	types.DifficultyMedium: {
		Description: "Intermediate concepts, practical applications, and moderate problem-solving",
		Types:       []string{"practical", "coding", "system_design_basic", "mcq"},
	},
	types.DifficultyHard: {
		Description: "Advanced concepts, complex problem-solving, and in-depth technical knowledge",
		Types:       []string{"advanced_coding", "system_design", "algorithm_optimization", "troubleshooting"},
	},
	types.DifficultyExtreme: {
		Description: "Expert-level challenges, complex system design, and cutting-edge technology",
		Types:       []string{"expert_coding", "architecture_design", "performance_optimization", "edge_cases"},
	},
}

var questionsShape = shapeSpec{
	Required: []string{"questions"},
	Kinds: map[string]containerKind{
		"questions": kindList,
	},
}

// questionBatch is the wire shape of a generated question batch.
type questionBatch struct {
	Questions []types.Question `json:"questions"`
}

// GenerateQuestions extracts one difficulty tier's question batch. The
// personal-notes supplement, when present, is appended to contextualize
// the questions.
func GenerateQuestions(ctx context.Context, gen Generator, opts llm.Options, job *types.JobRecord, doc *types.DocumentRecord, tier types.Difficulty, notes string) ([]types.Question, error) {
	profile, ok := tierProfiles[tier]
	if !ok {
		return nil, fmt.Errorf("unknown difficulty tier %q", tier)
	}

	prompt := prompts.Render("interview.json", "generate-questions", map[string]string{
		"Count":                 fmt.Sprintf("%d", types.QuestionsPerDifficulty),
		"Difficulty":            string(tier),
		"DifficultyUpper":       strings.ToUpper(string(tier)),
		"DifficultyDescription": profile.Description,
		"QuestionTypes":         strings.Join(profile.Types, ", "),
		"EstimatedMinutes":      fmt.Sprintf("%d", types.QuestionsPerDifficulty*minutesPerQuestion),
		"JobJSON":               mustJSON(job),
		"DocumentJSON":          mustJSON(doc),
	})
	prompt = withNotes(prompt, "ADDITIONAL PERSONAL INFORMATION (use to contextualize questions, do not fabricate)", notes)

	raw, err := gen.Complete(ctx, prompt, opts)
	if err != nil {
		return nil, err
	}

	var batch questionBatch
	if err := decodeSpan(raw, questionsShape, &batch); err != nil {
		return nil, err
	}
	if len(batch.Questions) == 0 {
		return nil, &MalformedOutputError{Message: "empty question batch", Raw: raw}
	}
	return batch.Questions, nil
}
