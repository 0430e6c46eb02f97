package features

import "fmt"

// InvalidInputError indicates malformed line position arguments.
// Extraction is a pure function; bad positions are caller bugs and are
// reported loudly rather than papered over with defaults.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}
