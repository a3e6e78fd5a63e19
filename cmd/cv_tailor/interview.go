package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/interview"
	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/notes"
	"github.com/jonathan/cv-tailor/internal/types"
)

var interviewCommand = &cobra.Command{
	Use:   "interview",
	Short: "Run a mock interview session in the terminal",
	Long: `Starts an assessment session for a job posting: four difficulty tiers of
questions are generated up front, then asked one at a time on stdin. Each
answer is evaluated immediately and the final report is printed when every
question has been answered.

Type 'skip' to pass on a question or 'quit' to abandon the session.`,
	RunE: runInterviewCmd,
}

var (
	interviewJob      string
	interviewTemplate string
	interviewNotes    string
	interviewProvider string
	interviewMode     string
	interviewJSON     string
	interviewVerbose  bool
)

func init() {
	interviewCommand.Flags().StringVarP(&interviewJob, "job", "j", "", "Path to job description text file (required)")
	interviewCommand.Flags().StringVarP(&interviewTemplate, "template", "t", "", "Path to LaTeX template document (required)")
	interviewCommand.Flags().StringVar(&interviewNotes, "notes", "", "Path to optional personal-notes file")
	interviewCommand.Flags().StringVarP(&interviewProvider, "provider", "p", "", "Preferred generation provider")
	interviewCommand.Flags().StringVar(&interviewMode, "mode", string(interview.ModeService), "Question source: service or heuristic")
	interviewCommand.Flags().StringVar(&interviewJSON, "result-json", "", "Path to write the final report as JSON")
	interviewCommand.Flags().BoolVarP(&interviewVerbose, "verbose", "v", false, "Print detailed debug information")

	_ = interviewCommand.MarkFlagRequired("job")
	_ = interviewCommand.MarkFlagRequired("template")

	rootCmd.AddCommand(interviewCommand)
}

func runInterviewCmd(_ *cobra.Command, _ []string) error {
	mode := interview.Mode(interviewMode)
	if mode != interview.ModeService && mode != interview.ModeHeuristic {
		return fmt.Errorf("invalid mode %q: must be service or heuristic", interviewMode)
	}

	jobText, err := readTextFile(interviewJob, "job description")
	if err != nil {
		return err
	}
	docText, err := readTextFile(interviewTemplate, "template document")
	if err != nil {
		return err
	}

	ctx := context.Background()
	client := newClient(interviewVerbose)
	opts := llm.Options{Provider: interviewProvider}
	manager := interview.NewManager(client, interview.NewStore(), docText, notes.NewLoader(interviewNotes).Load())

	fmt.Printf("Preparing interview session (%s mode)...\n", mode)
	sess, err := manager.Start(ctx, interview.StartParams{
		JobText: jobText,
		Mode:    mode,
		Options: opts,
	})
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	fmt.Printf("\nSession %s ready: %d questions for %s\n", sess.ID, len(sess.Questions), sess.Job.RoleTitle)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		view, done := sess.NextQuestion()
		if done {
			break
		}
		printQuestion(view)

		answer, quit := readAnswer(scanner)
		if quit {
			fmt.Println("Session abandoned.")
			return nil
		}

		result, err := manager.SubmitAnswer(ctx, sess.ID, view.ID, answer, opts)
		if err != nil {
			var emptyErr *interview.EmptyAnswerError
			if errors.As(err, &emptyErr) {
				fmt.Println("An answer is required. Type 'skip' to pass on this question.")
				continue
			}
			return fmt.Errorf("failed to submit answer: %w", err)
		}

		printEvaluation(result.Evaluation)
		fmt.Printf("Progress: %d/%d answered, running average %d\n", result.Completed, result.Total, result.AverageScore)
	}

	report, err := manager.Results(sess.ID)
	if err != nil {
		return fmt.Errorf("failed to compute results: %w", err)
	}
	printReport(report)

	if interviewJSON != "" {
		return writeJSON(interviewJSON, report)
	}
	return nil
}

func printQuestion(view types.QuestionView) {
	fmt.Printf("\n[%d/%d] (%s, %s) %s\n", view.QuestionNumber, view.TotalQuestions, view.Difficulty, view.Type, view.Question)
	for i, option := range view.Options {
		fmt.Printf("  %c) %s\n", 'A'+i, option)
	}
	if view.TimeLimit > 0 {
		fmt.Printf("  (suggested time: %ds)\n", view.TimeLimit)
	}
	fmt.Print("> ")
}

// readAnswer collects one answer from stdin. 'skip' submits a minimal
// placeholder so the session still advances; 'quit' or EOF abandons.
func readAnswer(scanner *bufio.Scanner) (answer string, quit bool) {
	if !scanner.Scan() {
		return "", true
	}
	line := strings.TrimSpace(scanner.Text())
	switch strings.ToLower(line) {
	case "quit", "exit":
		return "", true
	case "skip":
		return "I don't know.", false
	}
	return line, false
}

func printEvaluation(eval *types.Evaluation) {
	fmt.Printf("\nScore: %d/100 (%s)\n", eval.Score, eval.OverallAssessment)
	for _, s := range eval.Feedback.Strengths {
		fmt.Printf("  + %s\n", s)
	}
	for _, s := range eval.Feedback.Improvements {
		fmt.Printf("  - %s\n", s)
	}
}

func printReport(report *interview.Results) {
	fmt.Printf("\n=== Interview Results ===\n")
	fmt.Printf("Role: %s\n", report.JobTitle)
	fmt.Printf("Overall score: %d/100 (%d/%d questions)\n", report.OverallScore, report.CompletedQuestions, report.TotalQuestions)
	for _, tier := range types.Difficulties() {
		if stat, ok := report.DifficultyStats[tier]; ok {
			fmt.Printf("  %-8s %d questions, average %d\n", tier, stat.Count, stat.AverageScore)
		}
	}
	fmt.Println("Recommendations:")
	for _, rec := range report.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}
}
