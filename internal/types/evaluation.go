//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// Evaluation is the scoring record for one submitted answer.
type Evaluation struct {
	Score              int                `json:"score" validate:"min=0,max=100"`
	Feedback           Feedback           `json:"feedback"`
	DetailedAnalysis   DetailedAnalysis   `json:"detailed_analysis"`
	SkillDemonstration SkillDemonstration `json:"skill_demonstration"`
	OverallAssessment  string             `json:"overall_assessment" validate:"omitempty,oneof=excellent good satisfactory needs_improvement poor"`
}

// Feedback holds the qualitative tiers for one answer.
type Feedback struct {
	Strengths         []string `json:"strengths"`
	Improvements      []string `json:"improvements"`
	TechnicalAccuracy string   `json:"technical_accuracy"` // excellent, good, fair, poor
	Completeness      string   `json:"completeness"`       // complete, mostly_complete, partial, incomplete
	Communication     string   `json:"communication"`      // clear, mostly_clear, unclear, very_unclear
}

// DetailedAnalysis breaks down concept coverage and follow-ups.
type DetailedAnalysis struct {
	CorrectConcepts       []string `json:"correct_concepts"`
	MissingConcepts       []string `json:"missing_concepts"`
	SuggestedImprovements []string `json:"suggested_improvements"`
	FollowUpQuestions     []string `json:"follow_up_questions"`
}

// SkillDemonstration summarizes which expected skills showed up.
type SkillDemonstration struct {
	DemonstratedSkills []string `json:"demonstrated_skills"`
	MissingSkills      []string `json:"missing_skills"`
	SkillLevel         string   `json:"skill_level"` // beginner, intermediate, advanced, expert
}

// Validate validates the Evaluation using the validator.
func (e *Evaluation) Validate() error {
	validate := validator.New()
	return validate.Struct(e)
}
