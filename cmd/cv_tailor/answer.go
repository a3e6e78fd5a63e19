package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/notes"
	"github.com/jonathan/cv-tailor/internal/practice"
)

var answerCommand = &cobra.Command{
	Use:   "answer",
	Short: "Craft a first-person answer to an interview question",
	Long:  "Writes a first-person answer to a single interview question, grounded in the template document and the optional personal-notes supplement.",
	RunE:  runAnswerCmd,
}

var (
	answerQuestion string
	answerTemplate string
	answerNotes    string
	answerTone     string
	answerConcise  bool
	answerProvider string
	answerOutput   string
	answerVerbose  bool
)

func init() {
	answerCommand.Flags().StringVarP(&answerQuestion, "question", "q", "", "Interview question to answer (required)")
	answerCommand.Flags().StringVarP(&answerTemplate, "template", "t", "", "Path to LaTeX template document (required)")
	answerCommand.Flags().StringVar(&answerNotes, "notes", "", "Path to optional personal-notes file")
	answerCommand.Flags().StringVar(&answerTone, "tone", "", "Answer tone (default: sincere)")
	answerCommand.Flags().BoolVar(&answerConcise, "concise", false, "Keep the answer to 5-8 sentences")
	answerCommand.Flags().StringVarP(&answerProvider, "provider", "p", "", "Preferred generation provider")
	answerCommand.Flags().StringVarP(&answerOutput, "output", "o", "", "Path to write the answer (default: stdout)")
	answerCommand.Flags().BoolVarP(&answerVerbose, "verbose", "v", false, "Print detailed debug information")

	_ = answerCommand.MarkFlagRequired("question")
	_ = answerCommand.MarkFlagRequired("template")

	rootCmd.AddCommand(answerCommand)
}

func runAnswerCmd(_ *cobra.Command, _ []string) error {
	docText, err := readTextFile(answerTemplate, "template document")
	if err != nil {
		return err
	}

	client := newClient(answerVerbose)
	answer, err := practice.CraftAnswer(context.Background(), client, practice.AnswerParams{
		Question: answerQuestion,
		Tone:     answerTone,
		Concise:  answerConcise,
		Options:  llm.Options{Provider: answerProvider},
	}, docText, notes.NewLoader(answerNotes).Load())
	if err != nil {
		return fmt.Errorf("failed to craft answer: %w", err)
	}

	if answerOutput != "" {
		return writeTextFile(answerOutput, answer+"\n")
	}
	fmt.Println(answer)
	return nil
}
