package main

import (
	"log/slog"
	"net/http"

	"github.com/agentbridge/agentbridge/internal/agents"
	"github.com/agentbridge/agentbridge/internal/memories"
	"github.com/agentbridge/agentbridge/internal/models"
	"github.com/agentbridge/agentbridge/internal/status"
	"github.com/agentbridge/agentbridge/internal/tools"
	pkgroutes "github.com/agentbridge/agentbridge/pkg/routes"
)

// registerRoutes configures all HTTP routes for the service.
func registerRoutes(r pkgroutes.System, domain *Domain, logger *slog.Logger) {
	r.RegisterGroup(models.NewHandler(domain.Models, logger).Routes())
	r.RegisterGroup(agents.NewHandler(domain.Agents, logger).Routes())
	r.RegisterGroup(tools.NewHandler(domain.Tools, logger).Routes())
	r.RegisterGroup(memories.NewHandler(domain.Memories, logger).Routes())

	statusHandler := status.NewHandler(
		domain.Models,
		domain.Agents,
		domain.Memories,
		domain.Tools,
	)
	r.RegisterGroup(statusHandler.Routes())

	r.RegisterRoute(pkgroutes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: handleHealthCheck,
	})
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
