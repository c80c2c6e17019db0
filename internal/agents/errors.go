package agents

import (
	"errors"
	"net/http"

	"github.com/agentbridge/agentbridge/internal/models"
)

// Domain errors for agent operations.
var ErrNotFound = errors.New("agent not found")

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
// A missing referenced model surfaces as 404 just like a missing agent.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, models.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
