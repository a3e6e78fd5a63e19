// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func listPreview(sb *strings.Builder, items []string, limit int) {
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

// PrintJobRecord outputs a human-readable summary of the parsed job.
func (p *Printer) PrintJobRecord(job *types.JobRecord) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:      %s\n", job.RoleTitle))
	sb.WriteString(fmt.Sprintf("Seniority: %s\n", job.Seniority))
	if job.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:  %s\n", job.Location))
	}
	sb.WriteString("\n")

	if len(job.RequiredSkills) > 0 {
		sb.WriteString("Required Skills:\n")
		listPreview(&sb, job.RequiredSkills, maxItemsToShow)
		sb.WriteString("\n")
	}
	if len(job.Keywords) > 0 {
		sb.WriteString("Keywords:\n")
		listPreview(&sb, job.Keywords, maxItemsToShow)
	}

	p.printBox("PARSED JOB", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapAnalysis outputs matched and missing keywords plus suggested
// rewrite count.
func (p *Printer) PrintGapAnalysis(gap *types.GapAnalysis) {
	if gap == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Relevance: %s\n\n", gap.RelevanceScore))

	if len(gap.MatchedKeywords) > 0 {
		sb.WriteString("Matched Keywords:\n")
		listPreview(&sb, gap.MatchedKeywords, maxItemsToShow)
		sb.WriteString("\n")
	}
	if len(gap.MissingKeywords) > 0 {
		sb.WriteString("Missing Keywords:\n")
		listPreview(&sb, gap.MissingKeywords, maxItemsToShow)
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("Suggested rewrites: %d", len(gap.SuggestedRewrites)))

	p.printBox("GAP ANALYSIS", sb.String())
}

// PrintEditSet outputs the applicable section edits with truncated
// before/after text.
func (p *Printer) PrintEditSet(edits *types.EditSet) {
	if edits == nil || len(edits.SectionEdits) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Section edits: %d\n\n", len(edits.SectionEdits)))

	count := min(len(edits.SectionEdits), maxItemsToShow)
	for i := 0; i < count; i++ {
		edit := edits.SectionEdits[i]
		sb.WriteString(fmt.Sprintf("#%d  [%s] %s\n", i+1, edit.Confidence, edit.Section))
		sb.WriteString(fmt.Sprintf("    - %s\n", truncateText(edit.OriginalText, 40)))
		sb.WriteString(fmt.Sprintf("    + %s\n", truncateText(edit.NewText, 40)))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(edits.SectionEdits) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(edits.SectionEdits)-maxItemsToShow))
	}

	p.printBox("PROPOSED EDITS", sb.String())
}

// PrintChangeLog outputs the change summary.
func (p *Printer) PrintChangeLog(log *types.ChangeLog) {
	if log == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Changes recorded: %d\n\n", len(log.Changes)))

	if len(log.Summary.KeywordsAdded) > 0 {
		sb.WriteString("Keywords Added:\n")
		listPreview(&sb, log.Summary.KeywordsAdded, maxItemsToShow)
		sb.WriteString("\n")
	}
	if len(log.Summary.KeywordsMissing) > 0 {
		sb.WriteString("Keywords Missing:\n")
		listPreview(&sb, log.Summary.KeywordsMissing, 3)
		sb.WriteString("\n")
	}
	sb.WriteString(truncateText(log.Summary.RelevanceImprovement, boxWidth-4))

	p.printBox("CHANGE LOG", strings.TrimSuffix(sb.String(), "\n"))
}

func truncateText(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
