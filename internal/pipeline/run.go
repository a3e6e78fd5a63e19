// Package pipeline provides the high-level orchestration for tailoring
// a document to a job description.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/jonathan/cv-tailor/internal/editing"
	"github.com/jonathan/cv-tailor/internal/extraction"
	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/observability"
	"github.com/jonathan/cv-tailor/internal/types"
	"github.com/jonathan/cv-tailor/internal/validation"
)

// Pipeline stage names, in execution order.
const (
	StageJobParse        = "job_parse"
	StageDocumentParse   = "document_parse"
	StageGapAnalysis     = "gap_analysis"
	StageEditProposal    = "edit_proposal"
	StageEditApplication = "edit_application"
	StageChangeSummary   = "change_summary"
)

// EditingModeNone skips the edit-proposal stage entirely: the caller
// wants the original document back, untouched.
const EditingModeNone = "none"

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Stage    string `json:"stage"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Fallback bool   `json:"fallback,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the tailoring pipeline
type RunOptions struct {
	JobText      string
	DocumentText string
	EditingMode  string // conservative, moderate, aggressive, or none
	Options      llm.Options
	Verbose      bool
	OnProgress   ProgressCallback
}

// Summary aggregates the derived fields of a finished run.
type Summary struct {
	KeywordsAdded        []string `json:"keywords_added"`
	KeywordsMissing      []string `json:"keywords_missing"`
	QuestionsForUser     []string `json:"questions_for_user"`
	RelevanceImprovement string   `json:"relevance_improvement"`
	EditsApplied         int      `json:"edits_applied"`
}

// Result holds every stage's output for one tailoring run.
type Result struct {
	RunID            string                `json:"run_id"`
	Job              *types.JobRecord      `json:"job_parsed"`
	Doc              *types.DocumentRecord `json:"document_parsed"`
	Gap              *types.GapAnalysis    `json:"gap_analysis"`
	Edits            *types.EditSet        `json:"targeted_edits"`
	TailoredDocument string                `json:"tailored_document"`
	ChangeLog        *types.ChangeLog      `json:"change_log"`
	Summary          Summary               `json:"summary"`
}

type runner struct {
	gen     extraction.Generator
	opts    RunOptions
	runID   string
	printer *observability.Printer
}

func (r *runner) emit(stage, message string, fallback bool, content any) {
	if r.opts.OnProgress != nil {
		r.opts.OnProgress(ProgressEvent{
			Stage:    stage,
			Message:  message,
			RunID:    r.runID,
			Fallback: fallback,
			Content:  content,
		})
	}
}

// Run executes the six-stage tailoring pipeline. Every stage degrades
// to its static fallback on failure; the only fatal outcome is the
// post-edit envelope check, which returns a
// *validation.InvalidDocumentError when the tailored document lost its
// structural markers.
func Run(ctx context.Context, gen extraction.Generator, opts RunOptions) (*Result, error) {
	r := &runner{
		gen:     gen,
		opts:    opts,
		runID:   uuid.NewString(),
		printer: observability.NewPrinter(os.Stdout),
	}

	// Stage 1: parse the job description.
	fmt.Printf("Step 1/6: Parsing job description...\n")
	job, err := extraction.ParseJob(ctx, gen, opts.Options, opts.JobText)
	if err != nil {
		fmt.Printf("Warning: job parsing failed, using fallback: %v\n", err)
		job = extraction.FallbackJobRecord(opts.JobText)
		r.emit(StageJobParse, "job parsing failed, fallback record substituted", true, nil)
	} else {
		r.emit(StageJobParse, fmt.Sprintf("parsed job: %s", job.RoleTitle), false, job)
	}
	if opts.Verbose {
		r.printer.PrintJobRecord(job)
	}

	// Stage 2: parse the template document.
	fmt.Printf("Step 2/6: Parsing template document...\n")
	doc, err := extraction.ParseDocument(ctx, gen, opts.Options, opts.DocumentText)
	if err != nil {
		fmt.Printf("Warning: document parsing failed, using fallback: %v\n", err)
		doc = extraction.FallbackDocumentRecord()
		r.emit(StageDocumentParse, "document parsing failed, fallback record substituted", true, nil)
	} else {
		r.emit(StageDocumentParse, "parsed template document", false, nil)
	}

	// Stage 3: gap analysis.
	fmt.Printf("Step 3/6: Analyzing gaps...\n")
	gap, err := extraction.AnalyzeGaps(ctx, gen, opts.Options, job, doc)
	if err != nil {
		fmt.Printf("Warning: gap analysis failed, using fallback: %v\n", err)
		gap = extraction.FallbackGapAnalysis()
		r.emit(StageGapAnalysis, "gap analysis failed, fallback record substituted", true, nil)
	} else {
		r.emit(StageGapAnalysis, fmt.Sprintf("gap analysis: %d matched, %d missing keywords",
			len(gap.MatchedKeywords), len(gap.MissingKeywords)), false, gap)
	}
	if opts.Verbose {
		r.printer.PrintGapAnalysis(gap)
	}

	// Stage 4: edit proposal. Skipped entirely in "none" mode.
	var edits *types.EditSet
	if opts.EditingMode == EditingModeNone {
		fmt.Printf("Step 4/6: Skipping edit proposal (editing mode: none)...\n")
		edits = extraction.FallbackEditSet()
		r.emit(StageEditProposal, "edit proposal skipped by caller", false, nil)
	} else {
		fmt.Printf("Step 4/6: Proposing targeted edits...\n")
		edits, err = extraction.ProposeEdits(ctx, gen, opts.Options, job, gap)
		if err != nil {
			fmt.Printf("Warning: edit proposal failed, using fallback: %v\n", err)
			edits = extraction.FallbackEditSet()
			r.emit(StageEditProposal, "edit proposal failed, empty edit set substituted", true, nil)
		} else {
			r.emit(StageEditProposal, fmt.Sprintf("proposed %d applicable edits", len(edits.SectionEdits)), false, edits)
		}
	}
	if opts.Verbose {
		r.printer.PrintEditSet(edits)
	}

	// Stage 5: apply edits, then the fatal envelope check.
	fmt.Printf("Step 5/6: Applying targeted edits...\n")
	tailored := editing.Apply(opts.DocumentText, edits)
	if err := validation.CheckEnvelope(tailored); err != nil {
		r.emit(StageEditApplication, "tailored document failed envelope check", false, nil)
		return nil, err
	}
	r.emit(StageEditApplication, "edits applied", false, nil)

	// Stage 6: change summary.
	fmt.Printf("Step 6/6: Generating change log...\n")
	changeLog, err := extraction.SummarizeChanges(ctx, gen, opts.Options, job, gap, opts.DocumentText, tailored)
	if err != nil {
		fmt.Printf("Warning: change log generation failed, using fallback: %v\n", err)
		changeLog = extraction.FallbackChangeLog(edits, gap)
		r.emit(StageChangeSummary, "change log failed, synthesized from edit set", true, nil)
	} else {
		r.emit(StageChangeSummary, fmt.Sprintf("recorded %d changes", len(changeLog.Changes)), false, changeLog)
	}
	if opts.Verbose {
		r.printer.PrintChangeLog(changeLog)
	}

	return &Result{
		RunID:            r.runID,
		Job:              job,
		Doc:              doc,
		Gap:              gap,
		Edits:            edits,
		TailoredDocument: tailored,
		ChangeLog:        changeLog,
		Summary: Summary{
			KeywordsAdded:        changeLog.Summary.KeywordsAdded,
			KeywordsMissing:      changeLog.Summary.KeywordsMissing,
			QuestionsForUser:     changeLog.Summary.QuestionsForUser,
			RelevanceImprovement: changeLog.Summary.RelevanceImprovement,
			EditsApplied:         len(edits.SectionEdits),
		},
	}, nil
}
