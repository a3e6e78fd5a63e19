package extraction

import (
	"context"

	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/prompts"
	"github.com/jonathan/cv-tailor/internal/types"
)

var letterShape = shapeSpec{
	Required: []string{"letter", "analysis"},
	Kinds: map[string]containerKind{
		"letter":   kindRecord,
		"analysis": kindRecord,
	},
}

// GenerateLetter produces a motivational letter grounded in the parsed
// job, document, and gap analysis.
func GenerateLetter(ctx context.Context, gen Generator, opts llm.Options, job *types.JobRecord, doc *types.DocumentRecord, gap *types.GapAnalysis) (*types.MotivationLetter, error) {
	prompt := prompts.Render("letter.json", "motivation-letter", map[string]string{
		"JobJSON":      mustJSON(job),
		"DocumentJSON": mustJSON(doc),
		"GapJSON":      mustJSON(gap),
	})

	raw, err := gen.Complete(ctx, prompt, opts)
	if err != nil {
		return nil, err
	}

	var letter types.MotivationLetter
	if err := decodeSpan(raw, letterShape, &letter); err != nil {
		return nil, err
	}
	return &letter, nil
}

// FallbackLetter builds the deterministic stand-in letter used when
// generation fails. It names the candidate when the document record
// supplies one.
func FallbackLetter(doc *types.DocumentRecord) *types.MotivationLetter {
	signature := "Sincerely,\nThe Candidate"
	if doc != nil && doc.Header.Name != "" {
		signature = "Sincerely,\n" + doc.Header.Name
	}

	return &types.MotivationLetter{
		Letter: types.LetterBody{
			Greeting: "Dear Hiring Manager,",
			OpeningParagraph: "I am writing to express my strong interest in the position. " +
				"Based on my background and relevant experience, I believe I would be a valuable addition to your team.",
			BodyParagraphs: []string{
				"My educational background, combined with my practical experience, aligns well with the requirements for this role.",
				"I have demonstrated strong technical skills through a range of projects and consistent performance.",
			},
			ClosingParagraph: "I am excited about the opportunity to contribute to your team and would welcome the chance " +
				"to discuss how my background and skills can benefit your organization.",
			Signature: signature,
		},
		Analysis: types.LetterAnalysis{
			MatchedRequirements: []string{"Technical skills", "Educational background"},
			HighlightedSkills:   []string{"Programming"},
			RelevantExperiences: []string{"Professional experience"},
			ConfidenceScore:     types.ConfidenceMedium,
		},
	}
}
