package main

import (
	"log/slog"

	"github.com/agentbridge/agentbridge/internal/agents"
	"github.com/agentbridge/agentbridge/internal/config"
	"github.com/agentbridge/agentbridge/internal/memories"
	"github.com/agentbridge/agentbridge/internal/models"
	"github.com/agentbridge/agentbridge/internal/providers"
	"github.com/agentbridge/agentbridge/internal/tools"
)

// Domain holds the registry systems, wired explicitly so lifecycle and
// testability stay visible. No package-level state.
type Domain struct {
	Models   models.System
	Agents   agents.System
	Tools    tools.System
	Memories memories.System
}

// NewDomain constructs the registries and their provider catalog.
func NewDomain(cfg *config.Config, logger *slog.Logger) *Domain {
	catalog := providers.NewCatalog(&cfg.Providers)

	modelSys := models.New(catalog, logger)
	toolSys := tools.New(logger)

	return &Domain{
		Models:   modelSys,
		Tools:    toolSys,
		Agents:   agents.New(modelSys, toolSys, logger),
		Memories: memories.New(modelSys, logger),
	}
}
