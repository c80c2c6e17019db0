package memories

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/agentbridge/agentbridge/pkg/handlers"
	"github.com/agentbridge/agentbridge/pkg/routes"
)

// Handler provides HTTP handlers for memory manager operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a new memories HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{sys: sys, logger: logger}
}

// Routes returns the route group configuration for memory endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/memory",
		Description: "Bounded memory manager operations",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "POST", Pattern: "/{id}/add", Handler: h.Add},
		},
	}
}

// Create handles POST /memory to register a memory manager.
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

// Add handles POST /memory/{id}/add to append a memory entry.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.sys.Get(id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	var cmd AddCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	result, err := h.sys.Add(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
