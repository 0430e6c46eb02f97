package monitor

import (
	"fmt"

	"github.com/jonathan/cv-header-classifier/internal/types"
)

const (
	// minHistoryForComparison is the minimum number of prior snapshots
	// needed before trend analysis says anything.
	minHistoryForComparison = 3
	// comparisonWindow is how many recent snapshots the historical
	// average is taken over.
	comparisonWindow = 10
	// significantDelta is the movement, in percentage points, below
	// which a metric counts as STABLE.
	significantDelta = 5.0
)

// CompareWithHistory compares a fresh snapshot against the stored
// history. With fewer than minHistoryForComparison prior entries it
// reports HasHistory=false rather than failing; insufficient history is
// a structured result, not an error. Otherwise each metric's delta
// against the average of the most recent comparisonWindow entries is
// classified as IMPROVING, STABLE, or DECLINING, and the overall trend
// is DECLINING if any metric declined, else IMPROVING if any improved,
// else STABLE.
func CompareWithHistory(snapshot types.MetricsSnapshot, history HistoryRepository) (types.Comparison, error) {
	recent, err := history.Recent(comparisonWindow)
	if err != nil {
		return types.Comparison{}, fmt.Errorf("failed to read metrics history: %w", err)
	}
	if len(recent) < minHistoryForComparison {
		return types.Comparison{HasHistory: false}, nil
	}

	metrics := []struct {
		name    string
		current float64
		pick    func(types.MetricsSnapshot) float64
	}{
		{"accuracy", snapshot.Accuracy, func(s types.MetricsSnapshot) float64 { return s.Accuracy }},
		{"precision", snapshot.Precision, func(s types.MetricsSnapshot) float64 { return s.Precision }},
		{"recall", snapshot.Recall, func(s types.MetricsSnapshot) float64 { return s.Recall }},
		{"f1_score", snapshot.F1Score, func(s types.MetricsSnapshot) float64 { return s.F1Score }},
	}

	comparison := types.Comparison{
		HasHistory: true,
		SampleSize: len(recent),
	}

	declined := false
	improved := false
	for _, metric := range metrics {
		sum := 0.0
		for _, prior := range recent {
			sum += metric.pick(prior)
		}
		average := sum / float64(len(recent))
		delta := metric.current - average

		trend := types.TrendStable
		switch {
		case delta <= -significantDelta:
			trend = types.TrendDeclining
			declined = true
		case delta >= significantDelta:
			trend = types.TrendImproving
			improved = true
		}

		comparison.Metrics = append(comparison.Metrics, types.MetricTrend{
			Metric:     metric.name,
			Current:    metric.current,
			HistoryAvg: average,
			Delta:      delta,
			Trend:      trend,
		})
	}

	switch {
	case declined:
		comparison.OverallTrend = types.TrendDeclining
	case improved:
		comparison.OverallTrend = types.TrendImproving
	default:
		comparison.OverallTrend = types.TrendStable
	}
	return comparison, nil
}
