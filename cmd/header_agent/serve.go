package main

import (
	"fmt"
	"os"

	"github.com/jonathan/cv-header-classifier/internal/config"
	"github.com/jonathan/cv-header-classifier/internal/monitor"
	"github.com/jonathan/cv-header-classifier/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes classification, evaluation, history, and model registry endpoints.`,
	RunE:  runServe,
}

var (
	servePort        int
	serveModelFile   string
	serveHistoryFile string
	serveConfigFile  string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveModelFile, "model", "m", "model.json", "Path to trained model file")
	serveCmd.Flags().StringVar(&serveHistoryFile, "history", "", "Path to metrics history JSON file")
	serveCmd.Flags().StringVarP(&serveConfigFile, "config", "c", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	thresholds := monitor.DefaultThresholds()
	if serveConfigFile != "" {
		cfg, err := config.LoadConfig(serveConfigFile)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		merged := cfg.MergeWithDefaults(config.Config{Port: servePort, Model: serveModelFile, History: serveHistoryFile})
		servePort = merged.Port
		serveModelFile = merged.Model
		serveHistoryFile = merged.History
		thresholds = cfg.Thresholds()
	}

	srv, err := server.New(server.Config{
		Port:        servePort,
		ModelPath:   serveModelFile,
		HistoryPath: serveHistoryFile,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Thresholds:  thresholds,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
