package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/cv-tailor/internal/extraction"
	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/types"
)

// LetterOptions holds configuration for generating a motivation letter.
type LetterOptions struct {
	JobText      string
	DocumentText string
	Options      llm.Options
	OnProgress   ProgressCallback
}

// LetterResult holds the outcome of a letter run.
type LetterResult struct {
	RunID     string                  `json:"run_id"`
	Job       *types.JobRecord        `json:"job_parsed"`
	Doc       *types.DocumentRecord   `json:"document_parsed"`
	Gap       *types.GapAnalysis      `json:"gap_analysis"`
	Letter    *types.MotivationLetter `json:"motivation_letter"`
	PlainText string                  `json:"plain_text"`
}

// RunLetter executes the letter pipeline: job parse, document parse,
// gap analysis, letter generation. Every stage degrades to its static
// fallback, so the run always produces a letter.
func RunLetter(ctx context.Context, gen extraction.Generator, opts LetterOptions) (*LetterResult, error) {
	runID := uuid.NewString()
	emit := func(stage, message string, fallback bool) {
		if opts.OnProgress != nil {
			opts.OnProgress(ProgressEvent{Stage: stage, Message: message, RunID: runID, Fallback: fallback})
		}
	}

	fmt.Printf("Step 1/4: Parsing job description...\n")
	job, err := extraction.ParseJob(ctx, gen, opts.Options, opts.JobText)
	if err != nil {
		job = extraction.FallbackJobRecord(opts.JobText)
		emit(StageJobParse, "job parsing failed, fallback record substituted", true)
	}

	fmt.Printf("Step 2/4: Parsing template document...\n")
	doc, err := extraction.ParseDocument(ctx, gen, opts.Options, opts.DocumentText)
	if err != nil {
		doc = extraction.FallbackDocumentRecord()
		emit(StageDocumentParse, "document parsing failed, fallback record substituted", true)
	}

	fmt.Printf("Step 3/4: Analyzing gaps...\n")
	gap, err := extraction.AnalyzeGaps(ctx, gen, opts.Options, job, doc)
	if err != nil {
		gap = extraction.FallbackGapAnalysis()
		emit(StageGapAnalysis, "gap analysis failed, fallback record substituted", true)
	}

	fmt.Printf("Step 4/4: Generating motivation letter...\n")
	letter, err := extraction.GenerateLetter(ctx, gen, opts.Options, job, doc, gap)
	if err != nil {
		letter = extraction.FallbackLetter(doc)
		emit("letter_generation", "letter generation failed, fallback letter substituted", true)
	}

	return &LetterResult{
		RunID:     runID,
		Job:       job,
		Doc:       doc,
		Gap:       gap,
		Letter:    letter,
		PlainText: letter.PlainText(),
	}, nil
}
