// Package models provides the domain system for managing language-model
// handles and invoking their providers.
package models

import (
	"github.com/agentbridge/agentbridge/internal/providers"
)

// Model represents a language-model handle held in the registry.
// Handles are immutable after creation; re-creating an id replaces the
// handle wholesale.
type Model struct {
	ID     string
	Name   string
	Kind   providers.Kind
	Config providers.Config
}

// CreateCommand contains the data required to create a model handle.
// Every field is optional; defaults are applied during creation.
type CreateCommand struct {
	Type   string        `json:"type"`
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Config ConfigCommand `json:"config"`
}

// ConfigCommand carries the optional generation settings of a create request.
type ConfigCommand struct {
	Model        string   `json:"model"`
	Temperature  *float64 `json:"temperature"`
	MaxTokens    *int     `json:"maxTokens"`
	SystemPrompt string   `json:"systemPrompt"`
}

// CreateResult is the response payload for model creation.
type CreateResult struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

// MessageCommand is a single message of a generate request.
type MessageCommand struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerateCommand contains the message sequence for a generate request.
type GenerateCommand struct {
	Messages []MessageCommand `json:"messages"`
}

// GenerateResult is the response payload for a generate call. ToolCalls
// is null unless the provider requested tool execution.
type GenerateResult struct {
	Content   string               `json:"content"`
	Role      string               `json:"role"`
	ToolCalls []providers.ToolCall `json:"tool_calls"`
}
