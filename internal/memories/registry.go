package memories

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/agentbridge/agentbridge/internal/models"
)

// Registry defaults applied when a create request omits fields.
const (
	DefaultID    = "default-memory"
	DefaultLimit = 100
)

type registry struct {
	mu       sync.RWMutex
	managers map[string]*Manager
	models   models.System
	logger   *slog.Logger
}

// New creates an empty memory manager registry that resolves model
// references against the provided system.
func New(modelSys models.System, logger *slog.Logger) System {
	return &registry{
		managers: make(map[string]*Manager),
		models:   modelSys,
		logger:   logger.With("system", "memories"),
	}
}

// Create stores a memory manager, replacing any existing manager with
// the same id. A referenced model must exist.
func (r *registry) Create(_ context.Context, cmd CreateCommand) (*CreateResult, error) {
	id := cmd.ID
	if id == "" {
		id = DefaultID
	}
	limit := DefaultLimit
	if cmd.Limit != nil {
		limit = *cmd.Limit
	}

	var modelID *string
	if cmd.ModelID != nil && *cmd.ModelID != "" {
		if _, err := r.models.Get(*cmd.ModelID); err != nil {
			return nil, err
		}
		modelID = cmd.ModelID
	}

	manager := &Manager{
		ID:      id,
		ModelID: modelID,
		Limit:   limit,
	}

	r.mu.Lock()
	r.managers[id] = manager
	r.mu.Unlock()

	r.logger.Info("memory manager created", "id", id, "limit", limit)
	return &CreateResult{ID: id, Status: "created"}, nil
}

// Add appends an entry, evicting the oldest entry first when the manager
// is at capacity.
func (r *registry) Add(_ context.Context, id string, cmd AddCommand) (*AddResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	manager, ok := r.managers[id]
	if !ok {
		return nil, ErrNotFound
	}

	if len(manager.Entries) >= manager.Limit && len(manager.Entries) > 0 {
		manager.Entries = manager.Entries[1:]
	}
	manager.Entries = append(manager.Entries, Entry{Content: cmd.Content})

	return &AddResult{Result: true, Status: "success"}, nil
}

// Get returns a snapshot of the manager for an id, or ErrNotFound.
func (r *registry) Get(id string) (*Manager, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	manager, ok := r.managers[id]
	if !ok {
		return nil, ErrNotFound
	}

	snapshot := *manager
	snapshot.Entries = slices.Clone(manager.Entries)
	return &snapshot, nil
}

// Keys returns the sorted ids of all registered memory managers.
func (r *registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.managers))
	for id := range r.managers {
		keys = append(keys, id)
	}
	slices.Sort(keys)
	return keys
}
