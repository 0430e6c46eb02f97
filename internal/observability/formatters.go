// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-header-classifier/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintHeaders outputs the detected section headers with their line positions.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintHeaders(headers []types.Header) {
	if len(headers) == 0 {
		border := strings.Repeat("─", boxWidth-2)
		fmt.Fprintf(p.out, "┌%s┐\n", border)
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO PUBLICATION HEADERS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", border)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Detected %d headers:\n\n", len(headers)))

	count := min(len(headers), maxItemsToShow)
	for i := 0; i < count; i++ {
		header := headers[i]
		text := header.Text
		if len(text) > 40 {
			text = text[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  line %d: %s\n", i+1, header.Index+1, text))
		if header.Features.MatchesPublicationPattern {
			sb.WriteString("    [pattern match]\n")
		}
	}

	if len(headers) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more headers", len(headers)-maxItemsToShow))
	}

	p.printBox("DETECTED HEADERS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMetrics outputs an evaluation snapshot with its confusion matrix.
func (p *Printer) PrintMetrics(snapshot *types.MetricsSnapshot) {
	if snapshot == nil {
		return
	}

	var sb strings.Builder
	if snapshot.ModelVersion != "" {
		sb.WriteString(fmt.Sprintf("Model:     %s\n", snapshot.ModelVersion))
	}
	sb.WriteString(fmt.Sprintf("Accuracy:  %.1f\n", snapshot.Accuracy))
	sb.WriteString(fmt.Sprintf("Precision: %.1f\n", snapshot.Precision))
	sb.WriteString(fmt.Sprintf("Recall:    %.1f\n", snapshot.Recall))
	sb.WriteString(fmt.Sprintf("F1 Score:  %.1f\n", snapshot.F1Score))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("TP: %-5d FP: %d\n", snapshot.Confusion.TruePositives, snapshot.Confusion.FalsePositives))
	sb.WriteString(fmt.Sprintf("FN: %-5d TN: %d", snapshot.Confusion.FalseNegatives, snapshot.Confusion.TrueNegatives))

	p.printBox("EVALUATION METRICS", sb.String())
}

// PrintAlerts outputs the threshold check result.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintAlerts(report *types.AlertReport) {
	if report == nil {
		return
	}
	if report.Healthy {
		border := strings.Repeat("─", boxWidth-2)
		fmt.Fprintf(p.out, "┌%s┐\n", border)
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL METRICS ABOVE THRESHOLDS")
		fmt.Fprintf(p.out, "└%s┘\n", border)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d alerts:\n\n", len(report.Alerts)))

	for i, alert := range report.Alerts {
		sb.WriteString(fmt.Sprintf("⚠ [%s] %s\n", alert.Severity, alert.Metric))
		sb.WriteString(fmt.Sprintf("  %.1f below minimum %.1f\n", alert.Value, alert.Threshold))
		if i < len(report.Alerts)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("METRIC ALERTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintComparison outputs per-metric trends against recent history.
func (p *Printer) PrintComparison(comparison *types.Comparison) {
	if comparison == nil {
		return
	}
	if !comparison.HasHistory {
		p.printBox("TREND ANALYSIS", "Not enough history for comparison")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Compared against %d snapshots\n", comparison.SampleSize))
	sb.WriteString(fmt.Sprintf("Overall: %s\n\n", comparison.OverallTrend))

	for _, trend := range comparison.Metrics {
		sb.WriteString(fmt.Sprintf("%-10s %.1f (avg %.1f, %+.1f) %s\n",
			trend.Metric, trend.Current, trend.HistoryAvg, trend.Delta, trend.Trend))
	}

	p.printBox("TREND ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs advisory suggestions from the monitor.
func (p *Printer) PrintRecommendations(recommendations []types.Recommendation) {
	if len(recommendations) == 0 {
		return
	}

	var sb strings.Builder
	for i, rec := range recommendations {
		message := rec.Message
		if len(message) > 45 {
			message = message[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("• [%s] %s\n", rec.Priority, rec.Category))
		sb.WriteString(fmt.Sprintf("  %s\n", message))
		if i < len(recommendations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}
