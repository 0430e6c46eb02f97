package pipeline

import (
	"context"
	"fmt"

	"github.com/jonathan/cv-header-classifier/internal/classifier"
	"github.com/jonathan/cv-header-classifier/internal/features"
	"github.com/jonathan/cv-header-classifier/internal/monitor"
	"github.com/jonathan/cv-header-classifier/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution.
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
}

// ProgressCallback is called as pipeline steps complete.
type ProgressCallback func(event ProgressEvent)

// ClassifyLines runs feature extraction, prediction, and the
// publication-header filter over segmented lines.
//
// An empty result means no publication section was identified. That is
// a normal outcome the caller must handle (report zero publications),
// not an error.
func ClassifyLines(clf classifier.HeaderClassifier, lines []types.Line) ([]types.Header, error) {
	var predicted []types.Header
	for _, line := range lines {
		record, err := features.ExtractLine(line)
		if err != nil {
			return nil, fmt.Errorf("feature extraction failed at line %d: %w", line.Index, err)
		}

		isHeader, err := clf.PredictRecord(record)
		if err != nil {
			return nil, fmt.Errorf("prediction failed at line %d: %w", line.Index, err)
		}
		if isHeader {
			predicted = append(predicted, types.Header{
				Text:     line.Text,
				Index:    line.Index,
				Features: record,
			})
		}
	}

	return classifier.FilterHeaders(predicted), nil
}

// ClassifyText segments raw CV text and classifies its lines.
func ClassifyText(clf classifier.HeaderClassifier, raw string) ([]types.Header, error) {
	return ClassifyLines(clf, SegmentText(raw))
}

// AuditOptions configures a model audit run.
type AuditOptions struct {
	ModelVersion string
	Thresholds   monitor.Thresholds
	OnProgress   ProgressCallback
}

// AuditResult bundles the outputs of one audit run.
type AuditResult struct {
	Snapshot        types.MetricsSnapshot  `json:"snapshot"`
	Report          types.AlertReport      `json:"report"`
	Comparison      types.Comparison       `json:"comparison"`
	Recommendations []types.Recommendation `json:"recommendations,omitempty"`
}

// Audit evaluates a trained model against a labeled dataset, checks
// alert thresholds, compares against stored history, derives
// recommendations, and finally appends the new snapshot to history.
// The comparison deliberately runs before the append so the fresh
// snapshot is never part of its own baseline.
func Audit(ctx context.Context, clf classifier.HeaderClassifier, examples []types.LabeledExample, history monitor.HistoryRepository, opts AuditOptions) (AuditResult, error) {
	emit := func(step, message string) {
		if opts.OnProgress != nil {
			opts.OnProgress(ProgressEvent{Step: step, Message: message})
		}
	}

	emit("evaluate", fmt.Sprintf("evaluating model over %d labeled examples", len(examples)))
	snapshot, err := monitor.Evaluate(ctx, clf, examples, opts.ModelVersion)
	if err != nil {
		return AuditResult{}, fmt.Errorf("evaluation failed: %w", err)
	}

	emit("alerts", "checking metric thresholds")
	report := monitor.CheckAlerts(snapshot, opts.Thresholds)

	emit("compare", "comparing against metrics history")
	comparison, err := monitor.CompareWithHistory(snapshot, history)
	if err != nil {
		return AuditResult{}, err
	}

	recommendations := monitor.Recommend(snapshot, report, comparison)

	emit("history", "recording snapshot")
	if err := history.Append(snapshot); err != nil {
		return AuditResult{}, fmt.Errorf("failed to record snapshot: %w", err)
	}

	return AuditResult{
		Snapshot:        snapshot,
		Report:          report,
		Comparison:      comparison,
		Recommendations: recommendations,
	}, nil
}
