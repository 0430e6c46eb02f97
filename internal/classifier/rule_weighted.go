package classifier

import (
	"fmt"

	"github.com/jonathan/cv-header-classifier/internal/types"
)

// RuleWeighted scores a line by summing learned per-feature weights and
// comparing against a decision threshold.
//
// Each weight is headerRatio - nonHeaderRatio: the fraction of header
// examples in which the feature is true minus the same fraction over
// non-header examples. A positive weight marks a feature as
// characteristic of headers. Ratios are order-independent, so training
// on a permuted example list yields identical weights. Weights saturate
// at +/-1 when a feature is constant across one class in the training
// set; that is an accepted property of the approach.
type RuleWeighted struct {
	threshold float64
	weights   map[types.FeatureName]float64
	trained   bool
}

// Train computes feature weights from the labeled examples.
func (c *RuleWeighted) Train(examples []types.LabeledExample) error {
	if len(examples) == 0 {
		return fmt.Errorf("training requires at least one labeled example")
	}

	headerCount := 0
	nonHeaderCount := 0
	headerTrue := make(map[types.FeatureName]int, len(types.FeatureNames))
	nonHeaderTrue := make(map[types.FeatureName]int, len(types.FeatureNames))

	for _, example := range examples {
		if example.IsHeader {
			headerCount++
		} else {
			nonHeaderCount++
		}
		for _, name := range types.FeatureNames {
			if !example.Features.Bool(name) {
				continue
			}
			if example.IsHeader {
				headerTrue[name]++
			} else {
				nonHeaderTrue[name]++
			}
		}
	}

	weights := make(map[types.FeatureName]float64, len(types.FeatureNames))
	for _, name := range types.FeatureNames {
		headerRatio := 0.0
		if headerCount > 0 {
			headerRatio = float64(headerTrue[name]) / float64(headerCount)
		}
		nonHeaderRatio := 0.0
		if nonHeaderCount > 0 {
			nonHeaderRatio = float64(nonHeaderTrue[name]) / float64(nonHeaderCount)
		}
		weights[name] = headerRatio - nonHeaderRatio
	}

	c.weights = weights
	c.trained = true
	return nil
}

// Predict classifies a raw line by position.
func (c *RuleWeighted) Predict(text string, index, total int) (bool, error) {
	record, err := extractForPredict(text, index, total)
	if err != nil {
		return false, err
	}
	return c.PredictRecord(record)
}

// PredictRecord classifies an extracted feature record. It reads only
// immutable state, so concurrent calls on a trained instance are safe.
func (c *RuleWeighted) PredictRecord(record types.FeatureRecord) (bool, error) {
	if !c.trained {
		return false, ErrNotTrained
	}

	score := 0.0
	for _, name := range types.FeatureNames {
		if record.Bool(name) {
			score += c.weights[name]
		}
	}
	return score > c.threshold, nil
}

// Score returns the raw weighted sum for a record, for calibration and
// debugging. Requires a trained model.
func (c *RuleWeighted) Score(record types.FeatureRecord) (float64, error) {
	if !c.trained {
		return 0, ErrNotTrained
	}
	score := 0.0
	for _, name := range types.FeatureNames {
		if record.Bool(name) {
			score += c.weights[name]
		}
	}
	return score, nil
}

// Save persists the trained weights and threshold.
func (c *RuleWeighted) Save(path string) error {
	if !c.trained {
		return ErrNoTrainedModel
	}

	weights := make(map[types.FeatureName]float64, len(c.weights))
	for name, weight := range c.weights {
		weights[name] = weight
	}

	return writeModelFile(path, modelFile{
		FormatVersion: modelFileVersion,
		Strategy:      StrategyRuleWeighted,
		Trained:       true,
		RuleWeighted:  &ruleWeightedFile{Threshold: c.threshold, Weights: weights},
	})
}

// Load replaces this instance's state with the trained state at path.
func (c *RuleWeighted) Load(path string) error {
	file, err := readModelFile(path)
	if err != nil {
		return err
	}
	if file.Strategy != StrategyRuleWeighted || file.RuleWeighted == nil {
		return &CorruptModelError{Path: path, Cause: fmt.Errorf("expected %s state, found %s", StrategyRuleWeighted, file.Strategy)}
	}

	c.threshold = file.RuleWeighted.Threshold
	c.weights = file.RuleWeighted.Weights
	c.trained = true
	return nil
}
