// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/cv-header-classifier/internal/classifier"
	"github.com/jonathan/cv-header-classifier/internal/monitor"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Model       string `json:"model,omitempty"`        // Path to the model file
	History     string `json:"history,omitempty"`      // Path to the metrics history file
	CorpusDir   string `json:"corpus_dir,omitempty"`   // Directory of plain-text CVs for dataset generation
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Classifier
	Strategy  string  `json:"strategy,omitempty"`  // "rule_weighted" or "statistical"
	Threshold float64 `json:"threshold,omitempty"` // Rule-weighted decision threshold

	// Monitoring (0-100 minimums; zero means default)
	MinAccuracy  float64 `json:"min_accuracy,omitempty"`
	MinPrecision float64 `json:"min_precision,omitempty"`
	MinRecall    float64 `json:"min_recall,omitempty"`
	MinF1Score   float64 `json:"min_f1_score,omitempty"`

	// Server
	Port int `json:"port,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed progress output
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Strategy != "" &&
		c.Strategy != string(classifier.StrategyRuleWeighted) &&
		c.Strategy != string(classifier.StrategyStatistical) {
		return fmt.Errorf("config error: unknown strategy %q", c.Strategy)
	}

	if c.Threshold < 0 {
		return fmt.Errorf("config error: 'threshold' must be non-negative")
	}

	for name, value := range map[string]float64{
		"min_accuracy":  c.MinAccuracy,
		"min_precision": c.MinPrecision,
		"min_recall":    c.MinRecall,
		"min_f1_score":  c.MinF1Score,
	} {
		if value < 0 || value > 100 {
			return fmt.Errorf("config error: '%s' must be between 0 and 100", name)
		}
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}

	if c.CorpusDir != "" {
		if info, err := os.Stat(c.CorpusDir); os.IsNotExist(err) || (err == nil && !info.IsDir()) {
			return fmt.Errorf("config error: corpus directory not found: %s", c.CorpusDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.History == "" {
		result.History = defaults.History
	}
	if result.CorpusDir == "" {
		result.CorpusDir = defaults.CorpusDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Strategy == "" {
		result.Strategy = defaults.Strategy
	}

	// Numeric fields: use default if zero
	if result.Threshold == 0 {
		if defaults.Threshold > 0 {
			result.Threshold = defaults.Threshold
		} else {
			result.Threshold = classifier.DefaultDecisionThreshold
		}
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MinAccuracy == 0 {
		result.MinAccuracy = defaults.MinAccuracy
	}
	if result.MinPrecision == 0 {
		result.MinPrecision = defaults.MinPrecision
	}
	if result.MinRecall == 0 {
		result.MinRecall = defaults.MinRecall
	}
	if result.MinF1Score == 0 {
		result.MinF1Score = defaults.MinF1Score
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Thresholds converts the configured minimums into monitor thresholds,
// falling back to the monitor defaults for any unset value.
func (c *Config) Thresholds() monitor.Thresholds {
	thresholds := monitor.DefaultThresholds()
	if c.MinAccuracy > 0 {
		thresholds.Accuracy = c.MinAccuracy
	}
	if c.MinPrecision > 0 {
		thresholds.Precision = c.MinPrecision
	}
	if c.MinRecall > 0 {
		thresholds.Recall = c.MinRecall
	}
	if c.MinF1Score > 0 {
		thresholds.F1Score = c.MinF1Score
	}
	return thresholds
}
