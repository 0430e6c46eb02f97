package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/cv-header-classifier/internal/classifier"
	"github.com/jonathan/cv-header-classifier/internal/types"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *types.RequestValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, classifier.ErrNotTrained), errors.Is(err, classifier.ErrNoTrainedModel):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
