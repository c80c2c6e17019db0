package tools

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/agentbridge/agentbridge/pkg/handlers"
	"github.com/agentbridge/agentbridge/pkg/routes"
)

// Handler provides HTTP handlers for tool registration.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a new tools HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{sys: sys, logger: logger}
}

// Routes returns the route group configuration for tool endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/tools",
		Description: "Tool definition registration",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Create},
		},
	}
}

// Create handles POST /tools to register a tool definition.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	result, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
