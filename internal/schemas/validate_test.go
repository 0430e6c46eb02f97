package schemas

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/cv-header-classifier/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLabeledDataset_Valid(t *testing.T) {
	dataset := map[string]any{
		"source":       "corpus/cv_001.txt",
		"generated_at": "2026-08-01T12:00:00Z",
		"examples": []types.LabeledExample{
			{Text: "PUBLICATIONS", Features: types.FeatureRecord{IsAllUpperCase: true, Length: 12, WordCount: 1}, IsHeader: true},
			{Text: "Smith, J. (2020). A paper.", Features: types.FeatureRecord{ContainsYear: true, Length: 26, WordCount: 5, EndsWithTerminalPunct: true}, IsHeader: false},
		},
	}
	document, err := json.Marshal(dataset)
	require.NoError(t, err)

	assert.NoError(t, ValidateLabeledDataset(document))
}

func TestValidateLabeledDataset_MissingLabel(t *testing.T) {
	document := []byte(`{"examples": [{"text": "PUBLICATIONS", "features": {
		"is_all_upper_case": true, "starts_with_number_or_marker": false,
		"contains_year": false, "length": 12, "position_ratio": 0,
		"word_count": 1, "has_colon": false, "matches_publication_pattern": true,
		"ends_with_terminal_punct": false, "preceding_blank_line": false,
		"following_blank_line": false, "indentation_level": 0}}]}`)

	err := ValidateLabeledDataset(document)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Error(), "is_header")
}

func TestValidateLabeledDataset_EmptyExamples(t *testing.T) {
	err := ValidateLabeledDataset([]byte(`{"examples": []}`))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateLabeledDataset_MalformedJSON(t *testing.T) {
	err := ValidateLabeledDataset([]byte(`{"examples": [`))
	require.Error(t, err)

	var validationErr *ValidationError
	assert.NotErrorAs(t, err, &validationErr)
}

func TestValidateModelFile_Valid(t *testing.T) {
	document := []byte(`{
		"format_version": 1,
		"strategy": "rule_weighted",
		"trained": true,
		"rule_weighted": {
			"threshold": 1.2,
			"weights": {"is_all_upper_case": 0.8, "is_short": 1}
		}
	}`)

	assert.NoError(t, ValidateModelFile(document))
}

func TestValidateModelFile_UnknownStrategy(t *testing.T) {
	document := []byte(`{"format_version": 1, "strategy": "neural", "trained": true}`)

	err := ValidateModelFile(document)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Error(), "strategy")
}

func TestValidateMetricsHistory_Valid(t *testing.T) {
	document := []byte(`[{
		"timestamp": "2026-08-01T12:00:00Z",
		"model_version": "v1",
		"accuracy": 95.5,
		"precision": 94.7,
		"recall": 98.9,
		"f1_score": 96.8,
		"confusion_matrix": {
			"true_positives": 90, "false_positives": 5,
			"true_negatives": 4, "false_negatives": 1
		}
	}]`)

	assert.NoError(t, ValidateMetricsHistory(document))
}

func TestValidateMetricsHistory_MetricOutOfRange(t *testing.T) {
	document := []byte(`[{
		"timestamp": "2026-08-01T12:00:00Z",
		"accuracy": 120,
		"precision": 0,
		"recall": 0,
		"f1_score": 0,
		"confusion_matrix": {
			"true_positives": 0, "false_positives": 0,
			"true_negatives": 0, "false_negatives": 0
		}
	}]`)

	err := ValidateMetricsHistory(document)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Error(), "accuracy")
}
