package models

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/agentbridge/agentbridge/internal/providers"
)

// Registry defaults applied when a create request omits fields.
const (
	DefaultID   = "default-model"
	DefaultName = "Default Model"
)

// registry is the in-memory model store. State is volatile and lost on
// restart. The mutex protects map integrity only; cross-call atomicity
// is not guaranteed.
type registry struct {
	mu      sync.RWMutex
	models  map[string]*Model
	catalog *providers.Catalog
	logger  *slog.Logger
}

// New creates an empty model registry backed by the provider catalog.
func New(catalog *providers.Catalog, logger *slog.Logger) System {
	return &registry{
		models:  make(map[string]*Model),
		catalog: catalog,
		logger:  logger.With("system", "models"),
	}
}

// Create resolves defaults, validates the provider kind, and stores the
// handle, replacing any existing handle with the same id.
func (r *registry) Create(_ context.Context, cmd CreateCommand) (*CreateResult, error) {
	kindInput := cmd.Type
	if kindInput == "" {
		kindInput = string(providers.KindOpenAI)
	}
	kind, err := providers.ParseKind(kindInput)
	if err != nil {
		return nil, err
	}

	id := cmd.ID
	if id == "" {
		id = DefaultID
	}
	name := cmd.Name
	if name == "" {
		name = DefaultName
	}

	model := &Model{
		ID:     id,
		Name:   name,
		Kind:   kind,
		Config: r.resolveConfig(kind, cmd.Config),
	}

	r.mu.Lock()
	r.models[id] = model
	r.mu.Unlock()

	r.logger.Info("model created", "id", id, "name", name, "type", kind)
	return &CreateResult{
		ID:     id,
		Name:   name,
		Type:   kindInput,
		Status: "created",
	}, nil
}

// Generate invokes the provider for the identified model. The message
// sequence is transient; nothing about the call is stored.
func (r *registry) Generate(ctx context.Context, id string, cmd GenerateCommand) (*GenerateResult, error) {
	model, err := r.Get(id)
	if err != nil {
		return nil, err
	}

	messages := make([]providers.Message, len(cmd.Messages))
	for i, m := range cmd.Messages {
		role := m.Role
		if role == "" {
			role = providers.RoleUser
		}
		messages[i] = providers.Message{Role: role, Content: m.Content}
	}

	provider, err := r.catalog.Get(model.Kind)
	if err != nil {
		return nil, err
	}

	reply, err := provider.Respond(ctx, model.Config, messages)
	if err != nil {
		return nil, err
	}

	return &GenerateResult{
		Content:   reply.Message.Content,
		Role:      reply.Message.Role,
		ToolCalls: reply.ToolCalls,
	}, nil
}

// Get returns the model for an id, or ErrNotFound.
func (r *registry) Get(id string) (*Model, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	model, ok := r.models[id]
	if !ok {
		return nil, ErrNotFound
	}
	return model, nil
}

// Keys returns the sorted ids of all registered models.
func (r *registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.models))
	for id := range r.models {
		keys = append(keys, id)
	}
	slices.Sort(keys)
	return keys
}

func (r *registry) resolveConfig(kind providers.Kind, cmd ConfigCommand) providers.Config {
	cfg := providers.Config{
		Model:        cmd.Model,
		Temperature:  providers.DefaultTemperature,
		MaxTokens:    cmd.MaxTokens,
		SystemPrompt: cmd.SystemPrompt,
		APIKey:       r.catalog.APIKey(kind),
	}
	if cfg.Model == "" {
		cfg.Model = kind.DefaultModel()
	}
	if cmd.Temperature != nil {
		cfg.Temperature = *cmd.Temperature
	}
	return cfg
}
