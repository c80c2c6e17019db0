package models

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/agentbridge/agentbridge/pkg/handlers"
	"github.com/agentbridge/agentbridge/pkg/routes"
)

// Handler provides HTTP handlers for model creation and generation.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a new models HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{sys: sys, logger: logger}
}

// Routes returns the route group configuration for model endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/models",
		Description: "Model handle creation and generation",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "POST", Pattern: "/{id}/generate", Handler: h.Generate},
		},
	}
}

// Create handles POST /models to register a model handle.
// A malformed body surfaces as an unhandled error (500), not a 400.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	result, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Generate handles POST /models/{id}/generate to produce a reply from
// the model's provider.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.sys.Get(id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	var cmd GenerateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	result, err := h.sys.Generate(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
