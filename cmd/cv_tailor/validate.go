package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/schemas"
)

var validateCommand = &cobra.Command{
	Use:   "validate <schema> <json-file>",
	Short: "Validate a JSON artifact against one of the pipeline schemas",
	Long: `Validates a JSON file against a schema from the schemas/ directory.

The schema argument is either a schema name (e.g. job_record, edit_set,
question_batch) resolved against schemas/, or a path to a schema file.`,
	Args: cobra.ExactArgs(2),
	RunE: runValidateCmd,
}

func init() {
	rootCmd.AddCommand(validateCommand)
}

func runValidateCmd(_ *cobra.Command, args []string) error {
	schemaPath := args[0]
	if !fileExists(schemaPath) {
		schemaPath = schemas.ResolveSchemaPath("schemas/" + args[0] + ".schema.json")
	}

	if err := schemas.ValidateJSON(schemaPath, args[1]); err != nil {
		return err
	}
	fmt.Printf("%s is valid against %s\n", args[1], schemaPath)
	return nil
}
