package tools

import (
	"context"
	"log/slog"
	"slices"
	"sync"
)

// Registry defaults applied when a create request omits fields.
const (
	DefaultID   = "default-tool"
	DefaultName = "Default Tool"
)

type registry struct {
	mu     sync.RWMutex
	tools  map[string]*Tool
	logger *slog.Logger
}

// New creates an empty tool registry.
func New(logger *slog.Logger) System {
	return &registry{
		tools:  make(map[string]*Tool),
		logger: logger.With("system", "tools"),
	}
}

// Create stores a tool, replacing any existing tool with the same id.
// No validation is applied beyond defaults.
func (r *registry) Create(_ context.Context, cmd CreateCommand) (*CreateResult, error) {
	tool := &Tool{
		ID:          cmd.ID,
		Name:        cmd.Name,
		Description: cmd.Description,
		Parameters:  cmd.Parameters,
	}
	if tool.ID == "" {
		tool.ID = DefaultID
	}
	if tool.Name == "" {
		tool.Name = DefaultName
	}
	if tool.Parameters == nil {
		tool.Parameters = map[string]any{}
	}

	r.mu.Lock()
	r.tools[tool.ID] = tool
	r.mu.Unlock()

	r.logger.Info("tool created", "id", tool.ID, "name", tool.Name)
	return &CreateResult{
		ID:     tool.ID,
		Name:   tool.Name,
		Status: "created",
	}, nil
}

// Get returns the tool for an id, or ErrNotFound.
func (r *registry) Get(id string) (*Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, ok := r.tools[id]
	if !ok {
		return nil, ErrNotFound
	}
	return tool, nil
}

// Keys returns the sorted ids of all registered tools.
func (r *registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.tools))
	for id := range r.tools {
		keys = append(keys, id)
	}
	slices.Sort(keys)
	return keys
}
