package main

import (
	"fmt"
	"os"

	"github.com/jonathan/cv-header-classifier/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a dataset, model, or history file against its JSON schema",
	RunE:  runValidate,
}

var (
	validateFile string
	validateType string
)

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Path to the JSON file to validate (required)")
	validateCmd.Flags().StringVarP(&validateType, "type", "t", "", "File type: dataset, model, or history (required)")
	_ = validateCmd.MarkFlagRequired("file")
	_ = validateCmd.MarkFlagRequired("type")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(validateFile)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	switch validateType {
	case "dataset":
		err = schemas.ValidateLabeledDataset(data)
	case "model":
		err = schemas.ValidateModelFile(data)
	case "history":
		err = schemas.ValidateMetricsHistory(data)
	default:
		return fmt.Errorf("unknown type %q: must be dataset, model, or history", validateType)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%s is a valid %s file\n", validateFile, validateType)
	return nil
}
