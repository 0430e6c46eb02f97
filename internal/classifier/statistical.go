package classifier

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/cv-header-classifier/internal/types"
)

// Synthetic class labels for the statistical strategy.
const (
	classHeader    = "header"
	classNotHeader = "not-header"
)

// Statistical classifies lines with a multinomial Naive Bayes text
// model. Feature records are flattened into a space-joined string of
// key:value tokens (a bag-of-features encoding) and the model
// discriminates the synthetic classes "header" and "not-header". This
// trades the interpretability of the rule-weighted scorer for better
// generalization when feature distributions overlap.
//
// Counting is insensitive to example order; log-probability sums
// iterate the fixed feature order, so inference is fully deterministic.
type Statistical struct {
	classCounts map[string]int
	tokenCounts map[string]map[string]int
	totalTokens map[string]int
	vocabulary  map[string]struct{}
	trained     bool
}

// EncodeFeatures flattens a feature record into the bag-of-features
// text form consumed by the statistical model, e.g.
// "is_all_upper_case:true has_colon:false ...". Token order follows
// types.FeatureNames.
func EncodeFeatures(record types.FeatureRecord) string {
	tokens := make([]string, 0, len(types.FeatureNames))
	for _, name := range types.FeatureNames {
		tokens = append(tokens, string(name)+":"+strconv.FormatBool(record.Bool(name)))
	}
	return strings.Join(tokens, " ")
}

// Train fits class priors and per-class token frequencies.
func (c *Statistical) Train(examples []types.LabeledExample) error {
	if len(examples) == 0 {
		return fmt.Errorf("training requires at least one labeled example")
	}

	classCounts := map[string]int{classHeader: 0, classNotHeader: 0}
	tokenCounts := map[string]map[string]int{
		classHeader:    make(map[string]int),
		classNotHeader: make(map[string]int),
	}
	totalTokens := map[string]int{classHeader: 0, classNotHeader: 0}
	vocabulary := make(map[string]struct{})

	for _, example := range examples {
		label := classNotHeader
		if example.IsHeader {
			label = classHeader
		}
		classCounts[label]++

		for _, token := range strings.Fields(EncodeFeatures(example.Features)) {
			tokenCounts[label][token]++
			totalTokens[label]++
			vocabulary[token] = struct{}{}
		}
	}

	c.classCounts = classCounts
	c.tokenCounts = tokenCounts
	c.totalTokens = totalTokens
	c.vocabulary = vocabulary
	c.trained = true
	return nil
}

// Predict classifies a raw line by position.
func (c *Statistical) Predict(text string, index, total int) (bool, error) {
	record, err := extractForPredict(text, index, total)
	if err != nil {
		return false, err
	}
	return c.PredictRecord(record)
}

// PredictRecord classifies an extracted feature record. Inference only
// reads trained state; concurrent calls on a trained instance are safe.
func (c *Statistical) PredictRecord(record types.FeatureRecord) (bool, error) {
	if !c.trained {
		return false, ErrNotTrained
	}

	headerScore := c.logPosterior(classHeader, record)
	notHeaderScore := c.logPosterior(classNotHeader, record)
	return headerScore > notHeaderScore, nil
}

// logPosterior computes log P(class) + sum log P(token|class) with
// Laplace smoothing. Unknown tokens fall back to the smoothed floor.
func (c *Statistical) logPosterior(label string, record types.FeatureRecord) float64 {
	totalExamples := c.classCounts[classHeader] + c.classCounts[classNotHeader]
	// Smoothed prior keeps a class with zero training examples finite.
	score := math.Log(float64(c.classCounts[label]+1) / float64(totalExamples+2))

	vocabSize := len(c.vocabulary)
	denominator := float64(c.totalTokens[label] + vocabSize)
	for _, token := range strings.Fields(EncodeFeatures(record)) {
		count := c.tokenCounts[label][token]
		score += math.Log(float64(count+1) / denominator)
	}
	return score
}

// Save persists the trained counts and vocabulary.
func (c *Statistical) Save(path string) error {
	if !c.trained {
		return ErrNoTrainedModel
	}

	vocabulary := make([]string, 0, len(c.vocabulary))
	for token := range c.vocabulary {
		vocabulary = append(vocabulary, token)
	}
	sort.Strings(vocabulary)

	return writeModelFile(path, modelFile{
		FormatVersion: modelFileVersion,
		Strategy:      StrategyStatistical,
		Trained:       true,
		Statistical: &statisticalFile{
			ClassCounts: c.classCounts,
			TokenCounts: c.tokenCounts,
			TotalTokens: c.totalTokens,
			Vocabulary:  vocabulary,
		},
	})
}

// Load replaces this instance's state with the trained state at path.
func (c *Statistical) Load(path string) error {
	file, err := readModelFile(path)
	if err != nil {
		return err
	}
	if file.Strategy != StrategyStatistical || file.Statistical == nil {
		return &CorruptModelError{Path: path, Cause: fmt.Errorf("expected %s state, found %s", StrategyStatistical, file.Strategy)}
	}

	vocabulary := make(map[string]struct{}, len(file.Statistical.Vocabulary))
	for _, token := range file.Statistical.Vocabulary {
		vocabulary[token] = struct{}{}
	}

	c.classCounts = file.Statistical.ClassCounts
	c.tokenCounts = file.Statistical.TokenCounts
	c.totalTokens = file.Statistical.TotalTokens
	c.vocabulary = vocabulary
	c.trained = true
	return nil
}
