package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/cv-header-classifier/internal/classifier"
	"github.com/jonathan/cv-header-classifier/internal/dataset"
	"github.com/jonathan/cv-header-classifier/internal/db"
	"github.com/spf13/cobra"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train a header classifier from a labeled dataset",
	Long:  "Train a header classifier from a labeled dataset JSON file and save the resulting model file. Optionally registers the model in the database registry.",
	RunE:  runTrain,
}

var (
	trainDataFile    string
	trainOutFile     string
	trainStrategy    string
	trainThreshold   float64
	trainDatabaseURL string
)

func init() {
	trainCmd.Flags().StringVarP(&trainDataFile, "data", "d", "", "Path to labeled dataset JSON file (required)")
	trainCmd.Flags().StringVarP(&trainOutFile, "out", "o", "model.json", "Path to output model file")
	trainCmd.Flags().StringVar(&trainStrategy, "strategy", string(classifier.StrategyRuleWeighted), "Classifier strategy: rule_weighted or statistical")
	trainCmd.Flags().Float64Var(&trainThreshold, "threshold", 0, "Rule-weighted decision threshold (0 = default)")
	trainCmd.Flags().StringVar(&trainDatabaseURL, "db-url", "", "Database URL for registering the model (optional)")
	_ = trainCmd.MarkFlagRequired("data")

	rootCmd.AddCommand(trainCmd)
}

func runTrain(_ *cobra.Command, _ []string) error {
	ds, err := dataset.LoadLabeled(trainDataFile)
	if err != nil {
		return err
	}

	var opts []classifier.Option
	if trainThreshold > 0 {
		opts = append(opts, classifier.WithThreshold(trainThreshold))
	}
	clf, err := classifier.New(classifier.Strategy(trainStrategy), opts...)
	if err != nil {
		return err
	}

	if err := clf.Train(ds.Examples); err != nil {
		return fmt.Errorf("training failed: %w", err)
	}
	if err := clf.Save(trainOutFile); err != nil {
		return fmt.Errorf("failed to save model: %w", err)
	}

	headers := 0
	for _, example := range ds.Examples {
		if example.IsHeader {
			headers++
		}
	}
	fmt.Fprintf(os.Stdout, "Trained %s model on %d examples (%d headers, %d body lines)\n",
		trainStrategy, len(ds.Examples), headers, len(ds.Examples)-headers)
	fmt.Fprintf(os.Stdout, "Model written to %s\n", trainOutFile)

	if trainDatabaseURL == "" {
		trainDatabaseURL = os.Getenv("DATABASE_URL")
	}
	if trainDatabaseURL != "" {
		ctx := context.Background()
		database, err := db.Connect(ctx, trainDatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		if err := database.EnsureSchema(ctx); err != nil {
			return err
		}

		state, err := os.ReadFile(trainOutFile)
		if err != nil {
			return fmt.Errorf("failed to read saved model: %w", err)
		}
		version, err := database.SaveModel(ctx, trainStrategy, json.RawMessage(state))
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Registered model version %s\n", version)
	}

	return nil
}
