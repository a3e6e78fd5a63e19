package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/notes"
	"github.com/jonathan/cv-tailor/internal/practice"
)

var questionsCommand = &cobra.Command{
	Use:   "questions",
	Short: "Generate standalone practice questions for a topic",
	Long:  "Generates a batch of practice questions about a topic without starting a full session. The batch degrades to deterministic heuristic questions when the generation service is unavailable.",
	RunE:  runQuestionsCmd,
}

var (
	questionsTopic      string
	questionsCount      int
	questionsDifficulty string
	questionsNotes      string
	questionsProvider   string
	questionsMode       string
	questionsJSON       string
	questionsVerbose    bool
)

func init() {
	questionsCommand.Flags().StringVar(&questionsTopic, "topic", "", "Topic to generate questions about (required)")
	questionsCommand.Flags().IntVarP(&questionsCount, "count", "n", 5, "Number of questions (1-20)")
	questionsCommand.Flags().StringVarP(&questionsDifficulty, "difficulty", "d", "medium", "Difficulty: easy, medium, hard, extreme, or mixed")
	questionsCommand.Flags().StringVar(&questionsNotes, "notes", "", "Path to optional personal-notes file")
	questionsCommand.Flags().StringVarP(&questionsProvider, "provider", "p", "", "Preferred generation provider")
	questionsCommand.Flags().StringVar(&questionsMode, "mode", string(practice.ModeService), "Question source: service or heuristic")
	questionsCommand.Flags().StringVar(&questionsJSON, "result-json", "", "Path to write the batch as JSON (default: stdout)")
	questionsCommand.Flags().BoolVarP(&questionsVerbose, "verbose", "v", false, "Print detailed debug information")

	_ = questionsCommand.MarkFlagRequired("topic")

	rootCmd.AddCommand(questionsCommand)
}

func runQuestionsCmd(_ *cobra.Command, _ []string) error {
	mode := practice.Mode(questionsMode)
	if mode != practice.ModeService && mode != practice.ModeHeuristic {
		return fmt.Errorf("invalid mode %q: must be service or heuristic", questionsMode)
	}

	client := newClient(questionsVerbose)
	batch := practice.VariantQuestions(
		context.Background(),
		client,
		llm.Options{Provider: questionsProvider},
		questionsTopic,
		questionsCount,
		questionsDifficulty,
		mode,
		notes.NewLoader(questionsNotes).Load(),
	)

	return writeJSON(questionsJSON, map[string]any{
		"topic":      questionsTopic,
		"difficulty": questionsDifficulty,
		"questions":  batch,
	})
}
