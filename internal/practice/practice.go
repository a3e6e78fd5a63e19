// Package practice provides standalone preparation helpers outside a
// full assessment session: topic-based variant questions and crafted
// first-person answers.
package practice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/cv-tailor/internal/extraction"
	"github.com/jonathan/cv-tailor/internal/heuristic"
	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/prompts"
	"github.com/jonathan/cv-tailor/internal/types"
)

// Mode selects between service-backed and heuristic generation.
type Mode string

// Practice modes.
const (
	ModeService   Mode = "service"
	ModeHeuristic Mode = "heuristic"
)

const (
	minQuestionCount = 1
	maxQuestionCount = 20
)

// VariantQuestions generates count practice questions about a topic.
// Count is clamped to [1, 20]. In heuristic mode, or whenever the
// service-backed path fails, the heuristic variant builder supplies
// the batch.
func VariantQuestions(ctx context.Context, gen extraction.Generator, opts llm.Options, topic string, count int, difficulty string, mode Mode, notes string) []types.Question {
	if count < minQuestionCount {
		count = minQuestionCount
	}
	if count > maxQuestionCount {
		count = maxQuestionCount
	}
	if mode == ModeHeuristic {
		return heuristic.VariantQuestions(topic, count, difficulty)
	}

	prompt := prompts.Render("interview.json", "variant-questions", map[string]string{
		"Count":           fmt.Sprintf("%d", count),
		"Difficulty":      difficulty,
		"DifficultyUpper": strings.ToUpper(difficulty),
		"Topic":           topic,
		"Notes":           notes,
	})

	raw, err := gen.Complete(ctx, prompt, opts)
	if err != nil {
		return heuristic.VariantQuestions(topic, count, difficulty)
	}

	span, err := extraction.ExtractJSONSpan(raw)
	if err != nil {
		return heuristic.VariantQuestions(topic, count, difficulty)
	}
	var batch struct {
		Questions []types.Question `json:"questions"`
	}
	if err := json.Unmarshal([]byte(span), &batch); err != nil || len(batch.Questions) == 0 {
		return heuristic.VariantQuestions(topic, count, difficulty)
	}
	if len(batch.Questions) > count {
		batch.Questions = batch.Questions[:count]
	}
	return batch.Questions
}

// AnswerParams configures a crafted answer.
type AnswerParams struct {
	Question string
	Tone     string // sincere by default
	Concise  bool
	Options  llm.Options
}

// CraftAnswer writes a first-person answer to an interview question,
// grounded in the parsed template document and the personal-notes
// supplement. On any service failure it degrades to a short synthetic
// answer built from the document record.
func CraftAnswer(ctx context.Context, gen extraction.Generator, params AnswerParams, docText, notes string) (string, error) {
	if strings.TrimSpace(params.Question) == "" {
		return "", &EmptyQuestionError{}
	}
	tone := params.Tone
	if tone == "" {
		tone = "sincere"
	}
	lengthGuideline := "detailed (8-12 sentences)"
	if params.Concise {
		lengthGuideline = "concise (5-8 sentences max)"
	}

	doc, err := extraction.ParseDocument(ctx, gen, params.Options, docText)
	if err != nil {
		doc = extraction.FallbackDocumentRecord()
	}

	docJSON, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		docJSON = []byte("{}")
	}
	prompt := prompts.Render("letter.json", "variant-answer", map[string]string{
		"Question":        params.Question,
		"DocumentJSON":    string(docJSON),
		"Notes":           notes,
		"LengthGuideline": lengthGuideline,
		"Tone":            strings.ToUpper(tone),
	})

	raw, err := gen.Complete(ctx, prompt, params.Options)
	if err != nil || strings.TrimSpace(raw) == "" {
		return fallbackAnswer(doc), nil
	}
	return strings.Trim(strings.TrimSpace(raw), `"`), nil
}

// EmptyQuestionError reports a craft-answer call without a question.
type EmptyQuestionError struct{}

func (e *EmptyQuestionError) Error() string {
	return "question is required"
}

// fallbackAnswer builds a deterministic first-person answer from
// whatever the document record offers.
func fallbackAnswer(doc *types.DocumentRecord) string {
	role := "engineering"
	if doc != nil && len(doc.Sections.Experience) > 0 && doc.Sections.Experience[0].Role != "" {
		role = doc.Sections.Experience[0].Role
	}
	interest := "building useful tools"
	if doc != nil && len(doc.Sections.Projects) > 0 && doc.Sections.Projects[0].Name != "" {
		interest = doc.Sections.Projects[0].Name
	}

	return fmt.Sprintf("I value thoughtful work and growth. Your company aligns with my experience in %s "+
		"and my interest in %s. I'm drawn to teams who care about people and impact. "+
		"From my background, I've learned to balance discipline with empathy, staying curious while delivering results. "+
		"I'd like to bring that mindset here, contribute quickly, and keep learning with your team.", role, interest)
}
