package types

import "time"

// ConfusionMatrix holds prediction tallies against ground truth.
type ConfusionMatrix struct {
	TruePositives  int `json:"true_positives"`
	FalsePositives int `json:"false_positives"`
	TrueNegatives  int `json:"true_negatives"`
	FalseNegatives int `json:"false_negatives"`
}

// Total returns the number of examples the matrix was tallied over.
func (m ConfusionMatrix) Total() int {
	return m.TruePositives + m.FalsePositives + m.TrueNegatives + m.FalseNegatives
}

// MetricsSnapshot captures one evaluation run. All metric values are on
// a 0-100 scale; undefined fractions (0/0) are reported as 0.
type MetricsSnapshot struct {
	Timestamp    time.Time       `json:"timestamp"`
	ModelVersion string          `json:"model_version,omitempty"`
	Accuracy     float64         `json:"accuracy"`
	Precision    float64         `json:"precision"`
	Recall       float64         `json:"recall"`
	F1Score      float64         `json:"f1_score"`
	Confusion    ConfusionMatrix `json:"confusion_matrix"`
}

// AlertSeverity indicates how serious a threshold violation is.
type AlertSeverity string

// Alert severity constants.
const (
	SeverityHigh   AlertSeverity = "HIGH"
	SeverityMedium AlertSeverity = "MEDIUM"
)

// Alert records one metric falling below its minimum threshold.
type Alert struct {
	Metric    string        `json:"metric"`
	Value     float64       `json:"value"`
	Threshold float64       `json:"threshold"`
	Severity  AlertSeverity `json:"severity"`
	Message   string        `json:"message"`
}

// AlertReport is the always-successful result of a threshold check.
// A below-threshold metric is a finding, not a failure.
type AlertReport struct {
	CheckedAt time.Time `json:"checked_at"`
	Alerts    []Alert   `json:"alerts"`
	Healthy   bool      `json:"healthy"`
}

// Trend classifies the movement of a metric against its recent history.
type Trend string

// Trend constants.
const (
	TrendImproving Trend = "IMPROVING"
	TrendStable    Trend = "STABLE"
	TrendDeclining Trend = "DECLINING"
)

// MetricTrend reports one metric's delta against its historical average.
type MetricTrend struct {
	Metric     string  `json:"metric"`
	Current    float64 `json:"current"`
	HistoryAvg float64 `json:"history_avg"`
	Delta      float64 `json:"delta"`
	Trend      Trend   `json:"trend"`
}

// Comparison is the result of comparing a snapshot with stored history.
// HasHistory is false when fewer than the minimum number of prior
// snapshots exist; in that case the remaining fields are zero-valued.
type Comparison struct {
	HasHistory   bool          `json:"has_history"`
	SampleSize   int           `json:"sample_size,omitempty"`
	Metrics      []MetricTrend `json:"metrics,omitempty"`
	OverallTrend Trend         `json:"overall_trend,omitempty"`
}

// Recommendation is an advisory suggestion produced by the monitor.
type Recommendation struct {
	Category string `json:"category"`
	Priority string `json:"priority"`
	Message  string `json:"message"`
}
