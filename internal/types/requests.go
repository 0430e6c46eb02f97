package types

import "github.com/go-playground/validator/v10"

// ClassifyRequest represents the request body for POST /classify.
// Either Text (a raw multi-line document) or Lines (pre-segmented,
// trimmed, non-empty lines) must be supplied.
type ClassifyRequest struct {
	Text  string   `json:"text,omitempty"`
	Lines []string `json:"lines,omitempty"`
}

// Validate validates the ClassifyRequest.
func (r *ClassifyRequest) Validate() error {
	if r.Text == "" && len(r.Lines) == 0 {
		return &RequestValidationError{Field: "text", Message: "either text or lines is required"}
	}
	return nil
}

// EvaluateRequest represents the request body for POST /evaluate.
type EvaluateRequest struct {
	Examples     []LabeledExample `json:"examples" validate:"required,min=1"`
	ModelVersion string           `json:"model_version,omitempty"`
}

// Validate validates the EvaluateRequest using the validator.
func (r *EvaluateRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return &RequestValidationError{Field: "examples", Message: "at least one labeled example is required"}
	}
	return nil
}

// RequestValidationError indicates a malformed API request body.
type RequestValidationError struct {
	Field   string
	Message string
}

func (e *RequestValidationError) Error() string {
	return "invalid request: " + e.Field + ": " + e.Message
}
