package monitor

import (
	"fmt"
	"time"

	"github.com/jonathan/cv-header-classifier/internal/types"
)

// Thresholds holds the minimum acceptable value for each metric, on the
// 0-100 scale.
type Thresholds struct {
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1Score   float64 `json:"f1_score"`
}

// DefaultThresholds returns the standard minimums.
func DefaultThresholds() Thresholds {
	return Thresholds{Accuracy: 75, Precision: 70, Recall: 70, F1Score: 70}
}

// CheckAlerts compares each metric against its minimum threshold and
// emits one alert per violation. Accuracy violations are HIGH severity;
// the rest are MEDIUM. The check always succeeds: a below-threshold
// metric is a finding, not a failure.
func CheckAlerts(snapshot types.MetricsSnapshot, thresholds Thresholds) types.AlertReport {
	checks := []struct {
		metric    string
		value     float64
		threshold float64
		severity  types.AlertSeverity
	}{
		{"accuracy", snapshot.Accuracy, thresholds.Accuracy, types.SeverityHigh},
		{"precision", snapshot.Precision, thresholds.Precision, types.SeverityMedium},
		{"recall", snapshot.Recall, thresholds.Recall, types.SeverityMedium},
		{"f1_score", snapshot.F1Score, thresholds.F1Score, types.SeverityMedium},
	}

	report := types.AlertReport{CheckedAt: time.Now().UTC()}
	for _, check := range checks {
		if check.value >= check.threshold {
			continue
		}
		report.Alerts = append(report.Alerts, types.Alert{
			Metric:    check.metric,
			Value:     check.value,
			Threshold: check.threshold,
			Severity:  check.severity,
			Message:   fmt.Sprintf("%s %.1f is below minimum %.1f", check.metric, check.value, check.threshold),
		})
	}
	report.Healthy = len(report.Alerts) == 0
	return report
}
