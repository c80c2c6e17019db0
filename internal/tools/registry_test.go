package tools_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/agentbridge/agentbridge/internal/tools"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateDefaults(t *testing.T) {
	sys := tools.New(testLogger())

	result, err := sys.Create(context.Background(), tools.CreateCommand{})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if result.ID != "default-tool" {
		t.Errorf("ID = %q, want %q", result.ID, "default-tool")
	}
	if result.Name != "Default Tool" {
		t.Errorf("Name = %q, want %q", result.Name, "Default Tool")
	}
	if result.Status != "created" {
		t.Errorf("Status = %q, want %q", result.Status, "created")
	}

	tool, err := sys.Get("default-tool")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if tool.Parameters == nil {
		t.Error("Parameters = nil, want empty map")
	}
	if len(tool.Parameters) != 0 {
		t.Errorf("Parameters = %v, want empty", tool.Parameters)
	}
}

func TestCreateExplicit(t *testing.T) {
	sys := tools.New(testLogger())

	params := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{"type": "string"},
		},
	}
	_, err := sys.Create(context.Background(), tools.CreateCommand{
		ID:          "search",
		Name:        "Search",
		Description: "Searches the workspace",
		Parameters:  params,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tool, err := sys.Get("search")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if tool.Description != "Searches the workspace" {
		t.Errorf("Description = %q", tool.Description)
	}
	if tool.Parameters["type"] != "object" {
		t.Errorf("Parameters[type] = %v, want object", tool.Parameters["type"])
	}
}

func TestCreateOverwrite(t *testing.T) {
	sys := tools.New(testLogger())
	ctx := context.Background()

	if _, err := sys.Create(ctx, tools.CreateCommand{ID: "t1", Name: "First"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := sys.Create(ctx, tools.CreateCommand{ID: "t1", Name: "Second"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tool, err := sys.Get("t1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if tool.Name != "Second" {
		t.Errorf("Name = %q, want %q", tool.Name, "Second")
	}
	if keys := sys.Keys(); len(keys) != 1 {
		t.Errorf("Keys() = %v, want a single id", keys)
	}
}

func TestGetUnknown(t *testing.T) {
	sys := tools.New(testLogger())

	_, err := sys.Get("ghost")
	if !errors.Is(err, tools.ErrNotFound) {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
}
