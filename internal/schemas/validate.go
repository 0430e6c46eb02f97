// Package schemas provides JSON Schema validation for the classifier's
// persisted artifacts: labeled datasets, model files, and metrics
// history. The schemas ship embedded in the binary; nothing is loaded
// from external input.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed labeled_dataset.schema.json
var labeledDatasetSchema []byte

//go:embed model_file.schema.json
var modelFileSchema []byte

//go:embed metrics_history.schema.json
var metricsHistorySchema []byte

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a schema validation failure with the field
// paths that violated it.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateLabeledDataset validates labeled-dataset JSON content.
func ValidateLabeledDataset(document []byte) error {
	return validate(labeledDatasetSchema, document)
}

// ValidateModelFile validates model-file JSON content.
func ValidateModelFile(document []byte) error {
	return validate(modelFileSchema, document)
}

// ValidateMetricsHistory validates metrics-history JSON content.
func ValidateMetricsHistory(document []byte) error {
	return validate(metricsHistorySchema, document)
}

// validate runs a document against an embedded schema and converts the
// result into a structured ValidationError.
func validate(schema, document []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		// The schemas are embedded and known-good, so a failure here
		// means the document is not even parseable JSON.
		return fmt.Errorf("document is not valid JSON: %w", err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
