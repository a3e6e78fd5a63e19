package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/pipeline"
)

var letterCommand = &cobra.Command{
	Use:   "letter",
	Short: "Generate a motivation letter for a job posting",
	Long:  "Parses the job description and the template document, analyzes the gaps between them, and drafts a motivation letter grounded in both.",
	RunE:  runLetterCmd,
}

var (
	letterJob      string
	letterTemplate string
	letterProvider string
	letterOutput   string
	letterJSON     string
	letterVerbose  bool
)

func init() {
	letterCommand.Flags().StringVarP(&letterJob, "job", "j", "", "Path to job description text file (required)")
	letterCommand.Flags().StringVarP(&letterTemplate, "template", "t", "", "Path to LaTeX template document (required)")
	letterCommand.Flags().StringVarP(&letterProvider, "provider", "p", "", "Preferred generation provider")
	letterCommand.Flags().StringVarP(&letterOutput, "output", "o", "", "Path to write the plain-text letter")
	letterCommand.Flags().StringVar(&letterJSON, "result-json", "", "Path to write the full letter record as JSON")
	letterCommand.Flags().BoolVarP(&letterVerbose, "verbose", "v", false, "Print detailed debug information")

	_ = letterCommand.MarkFlagRequired("job")
	_ = letterCommand.MarkFlagRequired("template")

	rootCmd.AddCommand(letterCommand)
}

func runLetterCmd(_ *cobra.Command, _ []string) error {
	jobText, err := readTextFile(letterJob, "job description")
	if err != nil {
		return err
	}
	docText, err := readTextFile(letterTemplate, "template document")
	if err != nil {
		return err
	}

	client := newClient(letterVerbose)
	result, err := pipeline.RunLetter(context.Background(), client, pipeline.LetterOptions{
		JobText:      jobText,
		DocumentText: docText,
		Options:      llm.Options{Provider: letterProvider},
	})
	if err != nil {
		return fmt.Errorf("letter generation failed: %w", err)
	}

	if letterOutput != "" {
		if err := writeTextFile(letterOutput, result.PlainText); err != nil {
			return err
		}
	} else {
		fmt.Println(result.PlainText)
	}
	if letterJSON != "" {
		if err := writeJSON(letterJSON, result); err != nil {
			return err
		}
	}
	return nil
}
