package agents_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/agentbridge/agentbridge/internal/agents"
	"github.com/agentbridge/agentbridge/internal/config"
	"github.com/agentbridge/agentbridge/internal/models"
	"github.com/agentbridge/agentbridge/internal/providers"
	"github.com/agentbridge/agentbridge/internal/tools"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSystems() (agents.System, models.System, tools.System) {
	logger := testLogger()
	catalog := providers.NewCatalog(&config.ProvidersConfig{
		Mode:            config.ProviderModeStub,
		OpenAIKeyEnv:    "OPENAI_API_KEY",
		AnthropicKeyEnv: "ANTHROPIC_API_KEY",
	})
	modelSys := models.New(catalog, logger)
	toolSys := tools.New(logger)
	return agents.New(modelSys, toolSys, logger), modelSys, toolSys
}

func TestCreateDefaults(t *testing.T) {
	sys, _, _ := testSystems()

	result, err := sys.Create(context.Background(), agents.CreateCommand{})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if result.ID != "default-agent" {
		t.Errorf("ID = %q, want %q", result.ID, "default-agent")
	}
	if result.Name != "Default Agent" {
		t.Errorf("Name = %q, want %q", result.Name, "Default Agent")
	}
	if result.Status != "created" {
		t.Errorf("Status = %q, want %q", result.Status, "created")
	}

	agent, err := sys.Get("default-agent")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if agent.ModelID != nil {
		t.Errorf("ModelID = %v, want nil", agent.ModelID)
	}
	if len(agent.Tools) != 0 {
		t.Errorf("Tools = %v, want empty", agent.Tools)
	}
}

func TestCreateUnknownModel(t *testing.T) {
	sys, _, _ := testSystems()

	modelID := "missing"
	_, err := sys.Create(context.Background(), agents.CreateCommand{ID: "a1", ModelID: &modelID})
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("Create() error = %v, want models.ErrNotFound", err)
	}
	if got := agents.MapHTTPStatus(err); got != 404 {
		t.Errorf("MapHTTPStatus() = %d, want 404", got)
	}

	// The failed create must not register the agent.
	if _, err := sys.Get("a1"); !errors.Is(err, agents.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestCreateDropsUnknownTools(t *testing.T) {
	sys, _, toolSys := testSystems()
	ctx := context.Background()

	for _, id := range []string{"search", "calc"} {
		if _, err := toolSys.Create(ctx, tools.CreateCommand{ID: id, Name: id}); err != nil {
			t.Fatalf("tool Create(%q) error = %v", id, err)
		}
	}

	_, err := sys.Create(ctx, agents.CreateCommand{
		ID:    "a1",
		Tools: []string{"search", "ghost", "calc"},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	agent, err := sys.Get("a1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(agent.Tools) != 2 {
		t.Fatalf("len(Tools) = %d, want 2", len(agent.Tools))
	}
	if agent.Tools[0].ID != "search" || agent.Tools[1].ID != "calc" {
		t.Errorf("Tools = [%s %s], want [search calc]", agent.Tools[0].ID, agent.Tools[1].ID)
	}
}

func TestRunWithModel(t *testing.T) {
	sys, modelSys, _ := testSystems()
	ctx := context.Background()

	if _, err := modelSys.Create(ctx, models.CreateCommand{ID: "m1"}); err != nil {
		t.Fatalf("model Create() error = %v", err)
	}
	modelID := "m1"
	if _, err := sys.Create(ctx, agents.CreateCommand{ID: "a1", Name: "Scout", ModelID: &modelID}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	result, err := sys.Run(ctx, "a1", agents.RunCommand{Message: "find the logs", WorkspaceID: "ws-7"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := "I am Scout, executing a response based on: find the logs"
	if result.Content != want {
		t.Errorf("Content = %q, want %q", result.Content, want)
	}
	if result.AgentID != "a1" {
		t.Errorf("AgentID = %q, want %q", result.AgentID, "a1")
	}
	if result.WorkspaceID != "ws-7" {
		t.Errorf("WorkspaceID = %v, want %q", result.WorkspaceID, "ws-7")
	}
}

func TestRunWithoutModel(t *testing.T) {
	sys, _, _ := testSystems()
	ctx := context.Background()

	if _, err := sys.Create(ctx, agents.CreateCommand{ID: "a1", Name: "Idle"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	result, err := sys.Run(ctx, "a1", agents.RunCommand{Message: "hello"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Content != "No model available for this agent" {
		t.Errorf("Content = %q", result.Content)
	}
	if result.WorkspaceID != nil {
		t.Errorf("WorkspaceID = %v, want nil", result.WorkspaceID)
	}
}

func TestRunUnknownAgent(t *testing.T) {
	sys, _, _ := testSystems()

	_, err := sys.Run(context.Background(), "ghost", agents.RunCommand{Message: "hi"})
	if !errors.Is(err, agents.ErrNotFound) {
		t.Fatalf("Run() error = %v, want ErrNotFound", err)
	}
	if got := agents.MapHTTPStatus(err); got != 404 {
		t.Errorf("MapHTTPStatus() = %d, want 404", got)
	}
}

func TestRunNumericWorkspaceID(t *testing.T) {
	sys, _, _ := testSystems()
	ctx := context.Background()

	if _, err := sys.Create(ctx, agents.CreateCommand{ID: "a1"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	result, err := sys.Run(ctx, "a1", agents.RunCommand{Message: "hi", WorkspaceID: float64(42)})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.WorkspaceID != float64(42) {
		t.Errorf("WorkspaceID = %v, want 42", result.WorkspaceID)
	}
}

func TestCreateOverwrite(t *testing.T) {
	sys, _, _ := testSystems()
	ctx := context.Background()

	if _, err := sys.Create(ctx, agents.CreateCommand{ID: "a1", Name: "First"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := sys.Create(ctx, agents.CreateCommand{ID: "a1", Name: "Second"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	agent, err := sys.Get("a1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if agent.Name != "Second" {
		t.Errorf("Name = %q, want %q", agent.Name, "Second")
	}
	if keys := sys.Keys(); len(keys) != 1 {
		t.Errorf("Keys() = %v, want a single id", keys)
	}
}
