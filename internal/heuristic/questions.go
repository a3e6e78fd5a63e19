// Package heuristic builds questions and evaluations without any
// external service. Everything here is deterministic and side-effect
// free, so a session can always make progress when no provider is
// reachable or when the caller opts out of service calls entirely.
package heuristic

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-tailor/internal/types"
)

// questionTimeLimit is the per-question budget, in seconds, for
// synthetically built questions.
const questionTimeLimit = 180

// questionTypes is the cycle of types assigned to synthetic questions.
var questionTypes = []string{"conceptual", "mcq", "system_design", "practical"}

// GenerateQuestions builds one fixed-size batch per difficulty tier,
// cycling through question types and drawing subjects from the job's
// skills and keywords plus the candidate's own skill list.
func GenerateQuestions(job *types.JobRecord, doc *types.DocumentRecord) map[types.Difficulty][]types.Question {
	subjects := questionSubjects(job, doc)

	sets := make(map[types.Difficulty][]types.Question, len(types.Difficulties()))
	for tierIndex, tier := range types.Difficulties() {
		batch := make([]types.Question, 0, types.QuestionsPerDifficulty)
		for i := 0; i < types.QuestionsPerDifficulty; i++ {
			subject := subjects[(tierIndex*types.QuestionsPerDifficulty+i)%len(subjects)]
			batch = append(batch, buildQuestion(tier, i, subject))
		}
		sets[tier] = batch
	}
	return sets
}

func buildQuestion(tier types.Difficulty, index int, subject string) types.Question {
	qType := questionTypes[index%len(questionTypes)]

	q := types.Question{
		ID:             fmt.Sprintf("heur_%s_%d", tier, index+1),
		Type:           qType,
		Difficulty:     tier,
		Category:       "general",
		Question:       questionText(qType, tier, subject),
		ExpectedSkills: []string{subject},
		TimeLimit:      questionTimeLimit,
		Hints:          []string{"Use concrete examples", "Relate your answer to outcomes"},
	}
	if qType == "mcq" {
		q.Options = []string{
			fmt.Sprintf("%s improves performance when applied carefully", subject),
			fmt.Sprintf("%s is only relevant to legacy systems", subject),
			fmt.Sprintf("%s is unrelated to software engineering", subject),
			"None of the above",
		}
		q.CorrectAnswer = q.Options[0]
	}
	return q
}

func questionText(qType string, tier types.Difficulty, subject string) string {
	switch qType {
	case "mcq":
		return fmt.Sprintf("Which statement about %s is correct?", subject)
	case "system_design":
		return fmt.Sprintf("Sketch how you would design a system that relies on %s at %s difficulty. What are the trade-offs?", subject, tier)
	case "practical":
		return fmt.Sprintf("Describe a practical problem you solved using %s. What would you do differently now?", subject)
	default:
		return fmt.Sprintf("Explain %s in the context of real projects you have worked on.", subject)
	}
}

// questionSubjects collects distinct, non-empty skill and keyword
// strings from the job and document. It never returns an empty slice.
func questionSubjects(job *types.JobRecord, doc *types.DocumentRecord) []string {
	var collected []string
	seen := make(map[string]bool)
	add := func(items []string) {
		for _, item := range items {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			key := strings.ToLower(item)
			if seen[key] {
				continue
			}
			seen[key] = true
			collected = append(collected, item)
		}
	}

	if job != nil {
		add(job.RequiredSkills)
		add(job.PreferredSkills)
		add(job.Keywords)
	}
	if doc != nil {
		add(doc.SkillNames())
	}
	if len(collected) == 0 {
		collected = []string{"problem solving"}
	}
	return collected
}
