// Package monitor evaluates trained classifiers and tracks model
// performance over time: metrics computation, threshold alerts,
// historical trend comparison, and advisory recommendations.
package monitor

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-header-classifier/internal/classifier"
	"github.com/jonathan/cv-header-classifier/internal/types"
)

// Evaluate runs the model over every labeled example and derives the
// confusion matrix plus accuracy, precision, recall, and F1 on a 0-100
// scale. Undefined fractions (0/0) are reported as 0, not NaN.
//
// Examples are scored in parallel: each worker tallies a local matrix
// over its slice and the matrices are merged afterwards. Accumulation
// is commutative, so partitioning does not affect the result. Predict
// on a trained model touches no mutable state, which is what makes the
// fan-out safe.
func Evaluate(ctx context.Context, clf classifier.HeaderClassifier, examples []types.LabeledExample, modelVersion string) (types.MetricsSnapshot, error) {
	if len(examples) == 0 {
		return types.MetricsSnapshot{}, fmt.Errorf("evaluation requires at least one labeled example")
	}

	workers := runtime.NumCPU()
	if workers > len(examples) {
		workers = len(examples)
	}

	matrices := make([]types.ConfusionMatrix, workers)
	group, ctx := errgroup.WithContext(ctx)

	chunkSize := (len(examples) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := min(start+chunkSize, len(examples))
		if start >= end {
			continue
		}
		slot := w
		chunk := examples[start:end]

		group.Go(func() error {
			local := types.ConfusionMatrix{}
			for _, example := range chunk {
				if err := ctx.Err(); err != nil {
					return err
				}
				predicted, err := clf.PredictRecord(example.Features)
				if err != nil {
					return fmt.Errorf("prediction failed during evaluation: %w", err)
				}
				switch {
				case predicted && example.IsHeader:
					local.TruePositives++
				case predicted && !example.IsHeader:
					local.FalsePositives++
				case !predicted && !example.IsHeader:
					local.TrueNegatives++
				default:
					local.FalseNegatives++
				}
			}
			matrices[slot] = local
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return types.MetricsSnapshot{}, err
	}

	matrix := types.ConfusionMatrix{}
	for _, local := range matrices {
		matrix.TruePositives += local.TruePositives
		matrix.FalsePositives += local.FalsePositives
		matrix.TrueNegatives += local.TrueNegatives
		matrix.FalseNegatives += local.FalseNegatives
	}

	return snapshotFromMatrix(matrix, modelVersion), nil
}

// snapshotFromMatrix derives the timestamped metric snapshot from a
// tallied confusion matrix.
func snapshotFromMatrix(matrix types.ConfusionMatrix, modelVersion string) types.MetricsSnapshot {
	accuracy := percent(matrix.TruePositives+matrix.TrueNegatives, matrix.Total())
	precision := percent(matrix.TruePositives, matrix.TruePositives+matrix.FalsePositives)
	recall := percent(matrix.TruePositives, matrix.TruePositives+matrix.FalseNegatives)

	f1 := 0.0
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}

	return types.MetricsSnapshot{
		Timestamp:    time.Now().UTC(),
		ModelVersion: modelVersion,
		Accuracy:     accuracy,
		Precision:    precision,
		Recall:       recall,
		F1Score:      f1,
		Confusion:    matrix,
	}
}

// percent reports numerator/denominator on a 0-100 scale, with 0/0
// defined as 0.
func percent(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return 100 * float64(numerator) / float64(denominator)
}
