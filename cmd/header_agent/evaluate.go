package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/jonathan/cv-header-classifier/internal/classifier"
	"github.com/jonathan/cv-header-classifier/internal/config"
	"github.com/jonathan/cv-header-classifier/internal/dataset"
	"github.com/jonathan/cv-header-classifier/internal/db"
	"github.com/jonathan/cv-header-classifier/internal/monitor"
	"github.com/jonathan/cv-header-classifier/internal/observability"
	"github.com/jonathan/cv-header-classifier/internal/pipeline"
	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a trained model against a labeled dataset",
	Long:  "Evaluate a trained model against a labeled dataset, check alert thresholds, compare against metrics history, and record the new snapshot.",
	RunE:  runEvaluate,
}

var (
	evaluateModelFile   string
	evaluateDataFile    string
	evaluateHistoryFile string
	evaluateDatabaseURL string
	evaluateVersion     string
	evaluateConfigFile  string
	evaluateVerbose     bool
)

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateModelFile, "model", "m", "model.json", "Path to trained model file")
	evaluateCmd.Flags().StringVarP(&evaluateDataFile, "data", "d", "", "Path to labeled dataset JSON file (required)")
	evaluateCmd.Flags().StringVar(&evaluateHistoryFile, "history", "", "Path to metrics history JSON file")
	evaluateCmd.Flags().StringVar(&evaluateDatabaseURL, "db-url", "", "Database URL for metrics history (overrides --history)")
	evaluateCmd.Flags().StringVar(&evaluateVersion, "version", "", "Model version label recorded with the snapshot")
	evaluateCmd.Flags().StringVarP(&evaluateConfigFile, "config", "c", "", "Path to JSON config file for alert thresholds")
	evaluateCmd.Flags().BoolVarP(&evaluateVerbose, "verbose", "v", false, "Print formatted output boxes and progress")
	_ = evaluateCmd.MarkFlagRequired("data")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(_ *cobra.Command, _ []string) error {
	thresholds := monitor.DefaultThresholds()
	if evaluateConfigFile != "" {
		cfg, err := config.LoadConfig(evaluateConfigFile)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		thresholds = cfg.Thresholds()
	}

	clf, err := classifier.Open(evaluateModelFile)
	if err != nil {
		return err
	}

	ds, err := dataset.LoadLabeled(evaluateDataFile)
	if err != nil {
		return err
	}

	ctx := context.Background()

	if evaluateDatabaseURL == "" {
		evaluateDatabaseURL = os.Getenv("DATABASE_URL")
	}
	var history monitor.HistoryRepository
	switch {
	case evaluateDatabaseURL != "":
		database, err := db.Connect(ctx, evaluateDatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		if err := database.EnsureSchema(ctx); err != nil {
			return err
		}
		history = database.History()
	case evaluateHistoryFile != "":
		history = monitor.NewFileHistory(evaluateHistoryFile)
	default:
		history = monitor.NewMemoryHistory()
	}

	opts := pipeline.AuditOptions{
		ModelVersion: evaluateVersion,
		Thresholds:   thresholds,
	}
	if evaluateVerbose {
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			log.Printf("[%s] %s", event.Step, event.Message)
		}
	}

	result, err := pipeline.Audit(ctx, clf, ds.Examples, history, opts)
	if err != nil {
		return err
	}

	if evaluateVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintMetrics(&result.Snapshot)
		printer.PrintAlerts(&result.Report)
		printer.PrintComparison(&result.Comparison)
		printer.PrintRecommendations(result.Recommendations)
		return nil
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
