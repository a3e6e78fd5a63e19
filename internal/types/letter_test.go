//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMotivationLetter_PlainText(t *testing.T) {
	letter := MotivationLetter{
		Letter: LetterBody{
			Greeting:         "Dear Hiring Manager,",
			OpeningParagraph: "I am writing to express my interest.",
			BodyParagraphs:   []string{"First body.", "Second body."},
			ClosingParagraph: "I look forward to hearing from you.",
			Signature:        "Sincerely,\nA. Candidate",
		},
	}

	text := letter.PlainText()
	lines := strings.Split(text, "\n\n")
	assert.Len(t, lines, 5)
	assert.Equal(t, "Dear Hiring Manager,", lines[0])
	assert.Equal(t, "Sincerely,\nA. Candidate", lines[4])
}

func TestMotivationLetter_PlainText_SkipsEmptyParagraphs(t *testing.T) {
	letter := MotivationLetter{
		Letter: LetterBody{
			Greeting:         "Dear Hiring Manager,",
			OpeningParagraph: "",
			BodyParagraphs:   []string{"Only body.", "   "},
			ClosingParagraph: "Closing.",
		},
	}

	text := letter.PlainText()
	assert.Equal(t, "Dear Hiring Manager,\n\nOnly body.\n\nClosing.", text)
}
