package monitor

import (
	"testing"

	"github.com/jonathan/cv-header-classifier/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categories(recommendations []types.Recommendation) []string {
	out := make([]string, 0, len(recommendations))
	for _, r := range recommendations {
		out = append(out, r.Category)
	}
	return out
}

func TestRecommend_LowPrecision(t *testing.T) {
	snapshot := types.MetricsSnapshot{Accuracy: 90, Precision: 72, Recall: 90, F1Score: 80}

	recommendations := Recommend(snapshot, types.AlertReport{Healthy: true}, types.Comparison{})

	require.NotEmpty(t, recommendations)
	assert.Contains(t, categories(recommendations), "precision")
}

func TestRecommend_LowRecall(t *testing.T) {
	snapshot := types.MetricsSnapshot{Accuracy: 90, Precision: 95, Recall: 50, F1Score: 65}

	recommendations := Recommend(snapshot, types.AlertReport{}, types.Comparison{})
	assert.Contains(t, categories(recommendations), "recall")
}

func TestRecommend_ClassImbalance(t *testing.T) {
	snapshot := types.MetricsSnapshot{
		Accuracy: 95, Precision: 95, Recall: 95, F1Score: 95,
		Confusion: types.ConfusionMatrix{TruePositives: 4, FalseNegatives: 1, TrueNegatives: 90, FalsePositives: 2},
	}

	recommendations := Recommend(snapshot, types.AlertReport{Healthy: true}, types.Comparison{})
	assert.Contains(t, categories(recommendations), "dataset")
}

func TestRecommend_DecliningTrend(t *testing.T) {
	snapshot := types.MetricsSnapshot{Accuracy: 90, Precision: 90, Recall: 90, F1Score: 90}
	comparison := types.Comparison{HasHistory: true, OverallTrend: types.TrendDeclining}

	recommendations := Recommend(snapshot, types.AlertReport{}, comparison)
	assert.Contains(t, categories(recommendations), "trend")
}

func TestRecommend_HealthyModelNoAdvice(t *testing.T) {
	snapshot := types.MetricsSnapshot{
		Accuracy: 95, Precision: 95, Recall: 95, F1Score: 95,
		Confusion: types.ConfusionMatrix{TruePositives: 40, FalseNegatives: 2, TrueNegatives: 55, FalsePositives: 3},
	}
	comparison := types.Comparison{HasHistory: true, OverallTrend: types.TrendStable}

	recommendations := Recommend(snapshot, types.AlertReport{Healthy: true}, comparison)
	assert.Empty(t, recommendations)
}

func TestClassImbalance(t *testing.T) {
	ratio, ok := classImbalance(90, 5)
	require.True(t, ok)
	assert.InDelta(t, 18.0, ratio, 1e-9)

	ratio, ok = classImbalance(5, 90)
	require.True(t, ok)
	assert.InDelta(t, 18.0, ratio, 1e-9)

	_, ok = classImbalance(0, 90)
	assert.False(t, ok)
}
