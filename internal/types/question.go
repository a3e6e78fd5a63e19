//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// Difficulty is one of the four fixed assessment levels.
type Difficulty string

// Difficulty tiers in session order.
const (
	DifficultyEasy    Difficulty = "easy"
	DifficultyMedium  Difficulty = "medium"
	DifficultyHard    Difficulty = "hard"
	DifficultyExtreme Difficulty = "extreme"
)

// Difficulties returns the tiers in the fixed order used to assemble a
// session's question list.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExtreme}
}

// QuestionsPerDifficulty is the fixed batch size generated for each tier.
const QuestionsPerDifficulty = 5

// Question is a single interview question.
type Question struct {
	ID             string     `json:"id" validate:"required"`
	Type           string     `json:"type" validate:"required,oneof=coding mcq conceptual system_design behavioral practical"`
	Difficulty     Difficulty `json:"difficulty" validate:"required,oneof=easy medium hard extreme"`
	Category       string     `json:"category"`
	Question       string     `json:"question" validate:"required"`
	Options        []string   `json:"options,omitempty"` // MCQ only
	CorrectAnswer  string     `json:"correct_answer,omitempty"`
	ExpectedSkills []string   `json:"expected_skills"`
	TimeLimit      int        `json:"time_limit" validate:"min=0"` // seconds
	Hints          []string   `json:"hints,omitempty"`
}

// QuestionView is the restricted question shape handed to the candidate.
// It omits the canonical answer.
type QuestionView struct {
	ID             string     `json:"id"`
	Type           string     `json:"type"`
	Difficulty     Difficulty `json:"difficulty"`
	Category       string     `json:"category"`
	Question       string     `json:"question"`
	Options        []string   `json:"options,omitempty"`
	TimeLimit      int        `json:"time_limit"`
	Hints          []string   `json:"hints"`
	QuestionNumber int        `json:"question_number"`
	TotalQuestions int        `json:"total_questions"`
}

// View returns the restricted candidate-facing form of the question.
func (q Question) View(number, total int) QuestionView {
	hints := q.Hints
	if hints == nil {
		hints = []string{}
	}
	return QuestionView{
		ID:             q.ID,
		Type:           q.Type,
		Difficulty:     q.Difficulty,
		Category:       q.Category,
		Question:       q.Question,
		Options:        q.Options,
		TimeLimit:      q.TimeLimit,
		Hints:          hints,
		QuestionNumber: number,
		TotalQuestions: total,
	}
}

// Validate validates the Question using the validator.
func (q *Question) Validate() error {
	validate := validator.New()
	return validate.Struct(q)
}
