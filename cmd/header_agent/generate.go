package main

import (
	"fmt"
	"os"

	"github.com/jonathan/cv-header-classifier/internal/dataset"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a pre-labeled training dataset from a CV corpus",
	Long:  "Walk a directory of plain-text CV exports and generate a labeled dataset JSON file. Labels come from heuristics and should be reviewed before training.",
	RunE:  runGenerate,
}

var (
	generateCorpusDir string
	generateOutFile   string
)

func init() {
	generateCmd.Flags().StringVar(&generateCorpusDir, "corpus", "", "Directory of plain-text CVs (required)")
	generateCmd.Flags().StringVarP(&generateOutFile, "out", "o", "dataset.json", "Path to output dataset file")
	_ = generateCmd.MarkFlagRequired("corpus")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	ds, err := dataset.Generate(generateCorpusDir)
	if err != nil {
		return err
	}
	if err := ds.WriteFile(generateOutFile); err != nil {
		return err
	}

	headers := 0
	for _, example := range ds.Examples {
		if example.IsHeader {
			headers++
		}
	}
	fmt.Fprintf(os.Stdout, "Generated %d examples (%d pre-labeled headers) from %s\n",
		len(ds.Examples), headers, generateCorpusDir)
	fmt.Fprintf(os.Stdout, "Dataset written to %s\n", generateOutFile)
	fmt.Fprintln(os.Stdout, "Review the labels before training; they are heuristic.")
	return nil
}
