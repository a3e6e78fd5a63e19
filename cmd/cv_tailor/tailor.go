package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/config"
	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/pipeline"
)

var tailorCommand = &cobra.Command{
	Use:   "tailor",
	Short: "Run the full CV tailoring pipeline end-to-end",
	Long: `Runs the tailoring pipeline: job parsing -> document parsing -> gap analysis -> edit proposal -> edit application -> change log.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runTailorCmd,
}

var (
	tailorConfigPath  string
	tailorJob         string
	tailorTemplate    string
	tailorProvider    string
	tailorEditingMode string
	tailorMaxAttempts int
	tailorOutput      string
	tailorResultJSON  string
	tailorVerbose     bool
)

func init() {
	tailorCommand.Flags().StringVar(&tailorConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	tailorCommand.Flags().StringVarP(&tailorJob, "job", "j", "", "Path to job description text file")
	tailorCommand.Flags().StringVarP(&tailorTemplate, "template", "t", "", "Path to LaTeX template document")
	tailorCommand.Flags().StringVarP(&tailorProvider, "provider", "p", "", "Preferred generation provider (openrouter, groq, gemini)")
	tailorCommand.Flags().StringVar(&tailorEditingMode, "editing-mode", "", "Editing aggressiveness: conservative, moderate, aggressive, or none")
	tailorCommand.Flags().IntVar(&tailorMaxAttempts, "max-attempts", 0, "Invocation attempt budget (default 3)")
	tailorCommand.Flags().StringVarP(&tailorOutput, "output", "o", "", "Path to write the tailored document (default: stdout summary only)")
	tailorCommand.Flags().StringVar(&tailorResultJSON, "result-json", "", "Path to write the full result record as JSON")
	tailorCommand.Flags().BoolVarP(&tailorVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(tailorCommand)
}

func runTailorCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(tailorConfigPath, func(cfg *config.Config) {
		if cmd.Flags().Changed("job") {
			cfg.Job = tailorJob
		}
		if cmd.Flags().Changed("template") {
			cfg.Template = tailorTemplate
		}
		if cmd.Flags().Changed("provider") {
			cfg.Provider = tailorProvider
		}
		if cmd.Flags().Changed("editing-mode") {
			cfg.EditingMode = tailorEditingMode
		}
		if cmd.Flags().Changed("max-attempts") {
			cfg.MaxAttempts = tailorMaxAttempts
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = tailorVerbose
		}
	})
	if err != nil {
		return err
	}
	if cfg.Job == "" {
		return fmt.Errorf("--job is required (or set 'job' in the config file)")
	}
	if cfg.Template == "" {
		return fmt.Errorf("--template is required (or set 'template' in the config file)")
	}

	jobText, err := readTextFile(cfg.Job, "job description")
	if err != nil {
		return err
	}
	docText, err := readTextFile(cfg.Template, "template document")
	if err != nil {
		return err
	}

	client := newClient(cfg.Verbose)
	result, err := pipeline.Run(context.Background(), client, pipeline.RunOptions{
		JobText:      jobText,
		DocumentText: docText,
		EditingMode:  cfg.EditingMode,
		Options:      llm.Options{Provider: cfg.Provider, MaxAttempts: cfg.MaxAttempts},
		Verbose:      cfg.Verbose,
	})
	if err != nil {
		return fmt.Errorf("tailoring pipeline failed: %w", err)
	}

	fmt.Printf("\nRun %s complete: %d edits applied, %d keywords added, %d still missing\n",
		result.RunID, result.Summary.EditsApplied,
		len(result.Summary.KeywordsAdded), len(result.Summary.KeywordsMissing))

	if tailorOutput != "" {
		if err := writeTextFile(tailorOutput, result.TailoredDocument); err != nil {
			return err
		}
	}
	if tailorResultJSON != "" {
		if err := writeJSON(tailorResultJSON, result); err != nil {
			return err
		}
	}
	return nil
}
