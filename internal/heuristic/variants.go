package heuristic

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-tailor/internal/types"
)

const (
	minVariantCount = 1
	maxVariantCount = 20
)

// DifficultyMixed spreads variant questions across all four tiers.
const DifficultyMixed = "mixed"

// VariantQuestions builds count standalone practice questions about a
// single topic. Count is clamped to [1, 20]. A difficulty of "mixed"
// (or any unknown value) cycles through all four tiers.
func VariantQuestions(topic string, count int, difficulty string) []types.Question {
	if count < minVariantCount {
		count = minVariantCount
	}
	if count > maxVariantCount {
		count = maxVariantCount
	}

	tiers := variantTiers(difficulty)
	subject := strings.TrimSpace(topic)
	if subject == "" {
		subject = "problem solving"
	}

	questions := make([]types.Question, 0, count)
	for i := 0; i < count; i++ {
		tier := tiers[i%len(tiers)]
		qType := questionTypes[i%len(questionTypes)]

		q := types.Question{
			ID:             fmt.Sprintf("var_%s_%d", tier, i+1),
			Type:           qType,
			Difficulty:     tier,
			Category:       "variant",
			Question:       variantText(qType, subject),
			ExpectedSkills: []string{subject},
			TimeLimit:      questionTimeLimit,
			Hints:          []string{"Use concrete examples", "Relate to outcomes"},
		}
		if qType == "mcq" {
			q.Options = []string{
				fmt.Sprintf("%s improves performance", subject),
				fmt.Sprintf("%s reduces security", subject),
				fmt.Sprintf("%s is unrelated to software", subject),
				"None of the above",
			}
		}
		questions = append(questions, q)
	}
	return questions
}

func variantTiers(difficulty string) []types.Difficulty {
	if difficulty == "" || difficulty == DifficultyMixed {
		return types.Difficulties()
	}
	for _, tier := range types.Difficulties() {
		if string(tier) == difficulty {
			return []types.Difficulty{tier}
		}
	}
	return types.Difficulties()
}

func variantText(qType, subject string) string {
	if qType == "mcq" {
		return fmt.Sprintf("Which statement about %s is correct?", subject)
	}
	return fmt.Sprintf("Describe/Explain %s in the context of real projects.", subject)
}
