package models

import (
	"errors"
	"net/http"

	"github.com/agentbridge/agentbridge/internal/providers"
)

// Domain errors for model operations.
var ErrNotFound = errors.New("model not found")

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, providers.ErrUnsupported) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
