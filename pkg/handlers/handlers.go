// Package handlers provides HTTP response utilities for JSON APIs.
// These stateless functions standardize response formatting across handlers.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorBody is the JSON error envelope returned by every failed request.
// Traceback carries panic stack detail on unhandled failures and is
// omitted otherwise.
type ErrorBody struct {
	Error     string `json:"error"`
	Traceback string `json:"traceback,omitempty"`
}

// RespondJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs the error and writes a JSON error response.
// The response body contains {"error": "<error message>"}.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	logger.Error("handler error", "error", err, "status", status)
	RespondJSON(w, status, ErrorBody{Error: err.Error()})
}

// RespondErrorTrace writes a JSON error response with diagnostic detail
// attached. Used by panic recovery where a stack trace is available.
func RespondErrorTrace(w http.ResponseWriter, logger *slog.Logger, status int, err error, trace string) {
	logger.Error("handler error", "error", err, "status", status)
	RespondJSON(w, status, ErrorBody{Error: err.Error(), Traceback: trace})
}
