//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// MotivationLetter is a generated cover letter with its supporting analysis.
type MotivationLetter struct {
	Letter   LetterBody     `json:"letter"`
	Analysis LetterAnalysis `json:"analysis"`
}

// LetterBody holds the letter paragraphs in rendering order.
type LetterBody struct {
	Greeting         string   `json:"greeting"`
	OpeningParagraph string   `json:"opening_paragraph"`
	BodyParagraphs   []string `json:"body_paragraphs"`
	ClosingParagraph string   `json:"closing_paragraph"`
	Signature        string   `json:"signature"`
}

// LetterAnalysis explains how the letter maps to the job.
type LetterAnalysis struct {
	MatchedRequirements []string   `json:"matched_requirements"`
	HighlightedSkills   []string   `json:"highlighted_skills"`
	RelevantExperiences []string   `json:"relevant_experiences"`
	ConfidenceScore     Confidence `json:"confidence_score"`
}

// PlainText renders the letter as plain text, paragraphs separated by
// blank lines.
func (l *MotivationLetter) PlainText() string {
	parts := []string{l.Letter.Greeting, l.Letter.OpeningParagraph}
	parts = append(parts, l.Letter.BodyParagraphs...)
	parts = append(parts, l.Letter.ClosingParagraph, l.Letter.Signature)

	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "\n\n")
}
