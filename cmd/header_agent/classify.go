package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/cv-header-classifier/internal/classifier"
	"github.com/jonathan/cv-header-classifier/internal/observability"
	"github.com/jonathan/cv-header-classifier/internal/pipeline"
	"github.com/jonathan/cv-header-classifier/internal/types"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Detect publication section headers in a CV text file",
	Long:  "Classify each line of a plain-text CV with a trained model and print the detected publication section headers. Finding none is a normal outcome.",
	RunE:  runClassify,
}

var (
	classifyModelFile string
	classifyInFile    string
	classifyJSON      bool
	classifyVerbose   bool
)

func init() {
	classifyCmd.Flags().StringVarP(&classifyModelFile, "model", "m", "model.json", "Path to trained model file")
	classifyCmd.Flags().StringVarP(&classifyInFile, "in", "i", "", "Path to CV text file (required)")
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Print results as JSON")
	classifyCmd.Flags().BoolVarP(&classifyVerbose, "verbose", "v", false, "Print formatted output boxes")
	_ = classifyCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(_ *cobra.Command, _ []string) error {
	clf, err := classifier.Open(classifyModelFile)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(classifyInFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	headers, err := pipeline.ClassifyText(clf, string(content))
	if err != nil {
		return err
	}

	if classifyJSON {
		if headers == nil {
			headers = []types.Header{}
		}
		out, err := json.MarshalIndent(map[string]any{"headers": headers, "count": len(headers)}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	if classifyVerbose {
		observability.NewPrinter(os.Stdout).PrintHeaders(headers)
		return nil
	}

	if len(headers) == 0 {
		fmt.Fprintln(os.Stdout, "No publication headers found")
		return nil
	}
	for _, header := range headers {
		fmt.Fprintf(os.Stdout, "line %d: %s\n", header.Index+1, header.Text)
	}
	return nil
}
