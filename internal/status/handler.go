// Package status provides the introspection endpoint reporting service
// health and registered entity ids.
package status

import (
	"net/http"

	"github.com/agentbridge/agentbridge/pkg/handlers"
	"github.com/agentbridge/agentbridge/pkg/routes"
)

// KeySource enumerates the ids held by a registry.
type KeySource interface {
	Keys() []string
}

// Snapshot is the response payload for the status endpoint. The id
// arrays reflect registry contents at the moment of the call.
type Snapshot struct {
	Status         string   `json:"status"`
	Models         []string `json:"models"`
	Agents         []string `json:"agents"`
	MemoryManagers []string `json:"memory_managers"`
	Tools          []string `json:"tools"`
}

// Handler provides the HTTP handler for the status snapshot.
type Handler struct {
	models   KeySource
	agents   KeySource
	memories KeySource
	tools    KeySource
}

// NewHandler creates a status handler over the four registries.
func NewHandler(models, agents, memories, tools KeySource) *Handler {
	return &Handler{
		models:   models,
		agents:   agents,
		memories: memories,
		tools:    tools,
	}
}

// Routes returns the route configuration for the status endpoint.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/status",
		Description: "Service state introspection",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Snapshot},
		},
	}
}

// Snapshot handles GET /status.
func (h *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Snapshot{
		Status:         "running",
		Models:         h.models.Keys(),
		Agents:         h.agents.Keys(),
		MemoryManagers: h.memories.Keys(),
		Tools:          h.tools.Keys(),
	})
}
