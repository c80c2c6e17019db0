package agents

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/agentbridge/agentbridge/internal/models"
	"github.com/agentbridge/agentbridge/internal/tools"
)

// Registry defaults applied when a create request omits fields.
const (
	DefaultID   = "default-agent"
	DefaultName = "Default Agent"
)

type registry struct {
	mu     sync.RWMutex
	agents map[string]*Agent
	models models.System
	tools  tools.System
	logger *slog.Logger
}

// New creates an empty agent registry that resolves model and tool
// references against the provided systems.
func New(modelSys models.System, toolSys tools.System, logger *slog.Logger) System {
	return &registry{
		agents: make(map[string]*Agent),
		models: modelSys,
		tools:  toolSys,
		logger: logger.With("system", "agents"),
	}
}

// Create resolves defaults and references, then stores the agent,
// replacing any existing agent with the same id. A referenced model must
// exist; unknown tool ids are silently dropped.
func (r *registry) Create(_ context.Context, cmd CreateCommand) (*CreateResult, error) {
	id := cmd.ID
	if id == "" {
		id = DefaultID
	}
	name := cmd.Name
	if name == "" {
		name = DefaultName
	}

	var modelID *string
	if cmd.ModelID != nil && *cmd.ModelID != "" {
		if _, err := r.models.Get(*cmd.ModelID); err != nil {
			return nil, err
		}
		modelID = cmd.ModelID
	}

	agent := &Agent{
		ID:           id,
		Name:         name,
		ModelID:      modelID,
		SystemPrompt: cmd.SystemPrompt,
		Tools:        r.resolveTools(cmd.Tools),
	}

	r.mu.Lock()
	r.agents[id] = agent
	r.mu.Unlock()

	r.logger.Info("agent created", "id", id, "name", name, "tools", len(agent.Tools))
	return &CreateResult{
		ID:     id,
		Name:   name,
		Status: "created",
	}, nil
}

// Run produces the agent's reply for a message. The message and
// workspace id are call parameters only; the stored agent is not
// mutated, so concurrent runs of the same agent cannot race.
func (r *registry) Run(_ context.Context, id string, cmd RunCommand) (*RunResult, error) {
	agent, err := r.Get(id)
	if err != nil {
		return nil, err
	}

	session := ""
	if cmd.WorkspaceID != nil {
		session = fmt.Sprint(cmd.WorkspaceID)
	}

	content := "No model available for this agent"
	if agent.ModelID != nil {
		content = fmt.Sprintf("I am %s, executing a response based on: %s", agent.Name, cmd.Message)
	}

	r.logger.Info("agent run", "id", id, "session", session)
	return &RunResult{
		Content:     content,
		AgentID:     id,
		WorkspaceID: cmd.WorkspaceID,
	}, nil
}

// Get returns the agent for an id, or ErrNotFound.
func (r *registry) Get(id string) (*Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agent, ok := r.agents[id]
	if !ok {
		return nil, ErrNotFound
	}
	return agent, nil
}

// Keys returns the sorted ids of all registered agents.
func (r *registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.agents))
	for id := range r.agents {
		keys = append(keys, id)
	}
	slices.Sort(keys)
	return keys
}

func (r *registry) resolveTools(ids []string) []tools.Tool {
	resolved := make([]tools.Tool, 0, len(ids))
	for _, id := range ids {
		tool, err := r.tools.Get(id)
		if err != nil {
			r.logger.Debug("unknown tool id skipped", "id", id)
			continue
		}
		resolved = append(resolved, *tool)
	}
	return resolved
}
