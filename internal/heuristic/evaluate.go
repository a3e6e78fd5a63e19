package heuristic

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-tailor/internal/types"
)

const (
	baseScore      = 40
	maxLengthBonus = 30
	maxSkillBonus  = 30
	wordsPerPoint  = 4 // one length point per this many words
	pointsPerSkill = 15
)

// EvaluateAnswer scores an answer from local signals only: answer
// length and the presence of the question's expected-skill tokens. The
// scoring is intentionally coarse; it exists so a session never stalls
// on an unavailable service.
func EvaluateAnswer(question *types.Question, answer string, doc *types.DocumentRecord) *types.Evaluation {
	words := strings.Fields(answer)
	lowered := strings.ToLower(answer)

	lengthBonus := len(words) / wordsPerPoint
	if lengthBonus > maxLengthBonus {
		lengthBonus = maxLengthBonus
	}

	var demonstrated, missing []string
	if question != nil {
		for _, skill := range question.ExpectedSkills {
			token := strings.ToLower(strings.TrimSpace(skill))
			if token != "" && strings.Contains(lowered, token) {
				demonstrated = append(demonstrated, skill)
			} else if skill != "" {
				missing = append(missing, skill)
			}
		}
	}
	skillBonus := len(demonstrated) * pointsPerSkill
	if skillBonus > maxSkillBonus {
		skillBonus = maxSkillBonus
	}

	score := baseScore + lengthBonus + skillBonus
	if len(words) == 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return &types.Evaluation{
		Score:              score,
		Feedback:           buildFeedback(score, len(words)),
		DetailedAnalysis:   buildAnalysis(demonstrated, missing),
		SkillDemonstration: buildSkillDemonstration(score, demonstrated, missing, doc),
		OverallAssessment:  assessment(score),
	}
}

func buildFeedback(score, wordCount int) types.Feedback {
	feedback := types.Feedback{
		Strengths:    []string{},
		Improvements: []string{},
	}

	if wordCount >= 40 {
		feedback.Strengths = append(feedback.Strengths, "Provided a substantive answer")
		feedback.Completeness = "mostly_complete"
	} else if wordCount > 0 {
		feedback.Strengths = append(feedback.Strengths, "Attempted to answer the question")
		feedback.Improvements = append(feedback.Improvements, "Expand the answer with more detail")
		feedback.Completeness = "partial"
	} else {
		feedback.Improvements = append(feedback.Improvements, "Provide an answer")
		feedback.Completeness = "incomplete"
	}

	switch {
	case score >= 80:
		feedback.TechnicalAccuracy = "good"
		feedback.Communication = "clear"
	case score >= 60:
		feedback.TechnicalAccuracy = "fair"
		feedback.Communication = "mostly_clear"
	default:
		feedback.TechnicalAccuracy = "fair"
		feedback.Communication = "unclear"
		feedback.Improvements = append(feedback.Improvements, "Address the expected skills directly")
	}
	return feedback
}

func buildAnalysis(demonstrated, missing []string) types.DetailedAnalysis {
	analysis := types.DetailedAnalysis{
		CorrectConcepts:       append([]string{}, demonstrated...),
		MissingConcepts:       append([]string{}, missing...),
		SuggestedImprovements: []string{"Support claims with concrete examples"},
		FollowUpQuestions:     []string{},
	}
	for _, skill := range missing {
		analysis.FollowUpQuestions = append(analysis.FollowUpQuestions,
			fmt.Sprintf("How have you applied %s in practice?", skill))
	}
	return analysis
}

func buildSkillDemonstration(score int, demonstrated, missing []string, doc *types.DocumentRecord) types.SkillDemonstration {
	demo := types.SkillDemonstration{
		DemonstratedSkills: append([]string{}, demonstrated...),
		MissingSkills:      append([]string{}, missing...),
	}
	switch {
	case score >= 85:
		demo.SkillLevel = "advanced"
	case score >= 65:
		demo.SkillLevel = "intermediate"
	default:
		demo.SkillLevel = "beginner"
	}

	// A candidate who already lists the missing skill on their document
	// likely knows it even if the answer did not mention it.
	if doc != nil && len(demo.MissingSkills) > 0 {
		known := make(map[string]bool)
		for _, skill := range doc.SkillNames() {
			known[strings.ToLower(skill)] = true
		}
		kept := demo.MissingSkills[:0]
		for _, skill := range demo.MissingSkills {
			if !known[strings.ToLower(skill)] {
				kept = append(kept, skill)
			}
		}
		demo.MissingSkills = kept
	}
	return demo
}

func assessment(score int) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 75:
		return "good"
	case score >= 60:
		return "satisfactory"
	case score >= 40:
		return "needs_improvement"
	default:
		return "poor"
	}
}
