package agents

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/agentbridge/agentbridge/pkg/handlers"
	"github.com/agentbridge/agentbridge/pkg/routes"
)

// Handler provides HTTP handlers for agent creation and execution.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a new agents HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{sys: sys, logger: logger}
}

// Routes returns the route group configuration for agent endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/agents",
		Description: "Agent creation and execution",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "POST", Pattern: "/{id}/run", Handler: h.Run},
		},
	}
}

// Create handles POST /agents to register an agent.
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

// Run handles POST /agents/{id}/run to execute an agent with a message.
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.sys.Get(id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	var cmd RunCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	result, err := h.sys.Run(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
