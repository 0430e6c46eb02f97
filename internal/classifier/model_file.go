package classifier

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/cv-header-classifier/internal/types"
)

// modelFileVersion is the current on-disk format version. Load rejects
// files written by a newer format.
const modelFileVersion = 1

// modelFile is the flat serialized representation of a trained model.
// Exactly one of the strategy state fields is populated, matching
// Strategy.
type modelFile struct {
	FormatVersion int               `json:"format_version"`
	Strategy      Strategy          `json:"strategy"`
	Trained       bool              `json:"trained"`
	RuleWeighted  *ruleWeightedFile `json:"rule_weighted,omitempty"`
	Statistical   *statisticalFile  `json:"statistical,omitempty"`
}

// ruleWeightedFile is the persisted state of the rule-weighted strategy.
type ruleWeightedFile struct {
	Threshold float64                       `json:"threshold"`
	Weights   map[types.FeatureName]float64 `json:"weights"`
}

// statisticalFile is the persisted state of the statistical strategy.
type statisticalFile struct {
	ClassCounts map[string]int            `json:"class_counts"`
	TokenCounts map[string]map[string]int `json:"token_counts"`
	TotalTokens map[string]int            `json:"total_tokens"`
	Vocabulary  []string                  `json:"vocabulary"`
}

// writeModelFile serializes the model to path, writing the whole file
// in one call so there is no partially written state on error paths.
func writeModelFile(path string, file modelFile) error {
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize model: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write model file: %w", err)
	}
	return nil
}

// readModelFile loads and sanity-checks a model file, distinguishing a
// missing file from a corrupt one.
func readModelFile(path string) (modelFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return modelFile{}, &CorruptModelError{Path: path, Missing: true, Cause: err}
		}
		return modelFile{}, &CorruptModelError{Path: path, Cause: err}
	}

	var file modelFile
	if err := json.Unmarshal(data, &file); err != nil {
		return modelFile{}, &CorruptModelError{Path: path, Cause: err}
	}
	if file.FormatVersion > modelFileVersion {
		return modelFile{}, &CorruptModelError{Path: path, Cause: fmt.Errorf("unsupported format version %d", file.FormatVersion)}
	}
	if !file.Trained {
		return modelFile{}, &CorruptModelError{Path: path, Cause: fmt.Errorf("model file is not marked trained")}
	}
	return file, nil
}
