package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/cv-header-classifier/internal/schemas"
)

// LoadLabeled reads a labeled dataset file, validates it against the
// dataset schema, and returns it. A schema violation is reported before
// any unmarshaling so error messages point at the offending field.
func LoadLabeled(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("dataset file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	if err := schemas.ValidateLabeledDataset(data); err != nil {
		return nil, fmt.Errorf("invalid dataset file %s: %w", path, err)
	}

	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset file: %w", err)
	}
	return &ds, nil
}
