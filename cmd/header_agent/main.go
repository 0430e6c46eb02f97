// Package main provides the entry point for the CV header classifier CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "header_agent",
	Short: "CV publication header classifier",
	Long:  "header_agent detects publication section headers in plain-text CVs using a trainable per-line classifier, and monitors model quality over time via CLI and REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
