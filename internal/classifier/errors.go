package classifier

import (
	"errors"
	"fmt"
)

// ErrNotTrained indicates Predict was called before Train or Load.
// Predicting with an untrained model is a caller bug, not a condition
// to silently default around.
var ErrNotTrained = errors.New("classifier is not trained")

// ErrNoTrainedModel indicates Save was called on an untrained model.
var ErrNoTrainedModel = errors.New("no trained model to save")

// CorruptModelError indicates a model file could not be loaded. Missing
// distinguishes "file absent" from "file present but unparseable".
type CorruptModelError struct {
	Path    string
	Missing bool
	Cause   error
}

func (e *CorruptModelError) Error() string {
	if e.Missing {
		return fmt.Sprintf("model file not found: %s", e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("corrupt model file %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("corrupt model file %s", e.Path)
}

func (e *CorruptModelError) Unwrap() error {
	return e.Cause
}
