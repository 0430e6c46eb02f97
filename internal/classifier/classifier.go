// Package classifier implements the trainable CV section-header classifiers.
//
// Two interchangeable strategies share one contract: a transparent
// rule-weighted scorer (the primary path) and a statistical Naive Bayes
// model over bag-of-feature tokens. Both are deterministic at inference
// time, and a trained model is never mutated by Predict, so a loaded
// instance may be shared across concurrent prediction calls.
package classifier

import (
	"fmt"

	"github.com/jonathan/cv-header-classifier/internal/features"
	"github.com/jonathan/cv-header-classifier/internal/types"
)

// Strategy selects a classifier implementation.
type Strategy string

// Strategy constants.
const (
	StrategyRuleWeighted Strategy = "rule_weighted"
	StrategyStatistical  Strategy = "statistical"
)

// HeaderClassifier is the shared contract of both strategies.
// Training runs to completion before any Predict call; there is no
// partial or streaming training.
type HeaderClassifier interface {
	// Train fits the model to the labeled examples.
	Train(examples []types.LabeledExample) error
	// Predict classifies a raw line by position. Blank-line adjacency
	// is unknown from a bare line and defaults to false; callers that
	// segmented the document should use PredictRecord instead.
	Predict(text string, index, total int) (bool, error)
	// PredictRecord classifies an already-extracted feature record.
	PredictRecord(record types.FeatureRecord) (bool, error)
	// Save persists the trained state. Fails with ErrNoTrainedModel on
	// an untrained instance.
	Save(path string) error
	// Load restores trained state from path, replacing any existing
	// state on this instance.
	Load(path string) error
}

// New creates an untrained classifier for the given strategy.
func New(strategy Strategy, opts ...Option) (HeaderClassifier, error) {
	settings := defaultSettings()
	for _, opt := range opts {
		opt(&settings)
	}

	switch strategy {
	case StrategyRuleWeighted:
		return &RuleWeighted{threshold: settings.threshold}, nil
	case StrategyStatistical:
		return &Statistical{}, nil
	default:
		return nil, fmt.Errorf("unknown classifier strategy: %q", strategy)
	}
}

// Open loads a model file into a fresh classifier of the matching
// strategy.
func Open(path string) (HeaderClassifier, error) {
	file, err := readModelFile(path)
	if err != nil {
		return nil, err
	}

	clf, err := New(file.Strategy)
	if err != nil {
		return nil, err
	}
	if err := clf.Load(path); err != nil {
		return nil, err
	}
	return clf, nil
}

// DefaultDecisionThreshold is the rule-weighted decision cut. It is an
// empirical default biased toward precision: a false header swallows
// unrelated text into the publication block downstream, while a missed
// header can often still be recovered through the pattern fallback in
// FilterHeaders. Calibrate against a held-out labeled set rather than
// treating it as fixed.
const DefaultDecisionThreshold = 1.2

type settings struct {
	threshold float64
}

func defaultSettings() settings {
	return settings{threshold: DefaultDecisionThreshold}
}

// Option configures a classifier created by New.
type Option func(*settings)

// WithThreshold overrides the rule-weighted decision threshold.
func WithThreshold(threshold float64) Option {
	return func(s *settings) { s.threshold = threshold }
}

// extractForPredict computes features for a bare line. Shared by both
// strategies' Predict methods.
func extractForPredict(text string, index, total int) (types.FeatureRecord, error) {
	return features.Extract(text, index, total, features.Context{})
}
