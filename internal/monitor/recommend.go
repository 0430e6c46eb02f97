package monitor

import (
	"fmt"

	"github.com/jonathan/cv-header-classifier/internal/types"
)

const (
	// precisionAdviceCutoff is the precision level below which tuning
	// advice is emitted even when no alert fired.
	precisionAdviceCutoff = 80.0
	// recallAdviceCutoff mirrors precisionAdviceCutoff for recall.
	recallAdviceCutoff = 70.0
	// imbalanceRatioCutoff is the majority/minority class ratio above
	// which the training set is considered severely imbalanced.
	imbalanceRatioCutoff = 10.0
)

// Recommend derives advisory suggestions from an evaluation snapshot,
// its alert report, and the historical comparison. Outputs are
// suggestions for a human operator, never automated actions.
func Recommend(snapshot types.MetricsSnapshot, report types.AlertReport, comparison types.Comparison) []types.Recommendation {
	var recommendations []types.Recommendation

	if snapshot.Precision < precisionAdviceCutoff {
		recommendations = append(recommendations, types.Recommendation{
			Category: "precision",
			Priority: "high",
			Message: fmt.Sprintf("precision is %.1f; consider raising the decision threshold or adding negative training examples "+
				"(false headers contaminate downstream publication extraction)", snapshot.Precision),
		})
	}

	if snapshot.Recall < recallAdviceCutoff {
		recommendations = append(recommendations, types.Recommendation{
			Category: "recall",
			Priority: "medium",
			Message: fmt.Sprintf("recall is %.1f; consider adding positive training examples or extending the publication pattern list",
				snapshot.Recall),
		})
	}

	positives := snapshot.Confusion.TruePositives + snapshot.Confusion.FalseNegatives
	negatives := snapshot.Confusion.TrueNegatives + snapshot.Confusion.FalsePositives
	if ratio, ok := classImbalance(positives, negatives); ok && ratio > imbalanceRatioCutoff {
		recommendations = append(recommendations, types.Recommendation{
			Category: "dataset",
			Priority: "medium",
			Message: fmt.Sprintf("evaluation classes are imbalanced %d:%d (ratio %.1f); consider rebalancing the labeled dataset",
				positives, negatives, ratio),
		})
	}

	if comparison.HasHistory && comparison.OverallTrend == types.TrendDeclining {
		recommendations = append(recommendations, types.Recommendation{
			Category: "trend",
			Priority: "high",
			Message:  "metrics are declining against recent history; consider retraining on fresh labeled data",
		})
	}

	if len(report.Alerts) == 0 && len(recommendations) == 0 {
		return nil
	}
	return recommendations
}

// classImbalance returns the majority/minority ratio. A class with zero
// members makes the ratio undefined; ok is false in that case.
func classImbalance(a, b int) (float64, bool) {
	if a == 0 || b == 0 {
		return 0, false
	}
	if a < b {
		a, b = b, a
	}
	return float64(a) / float64(b), true
}
