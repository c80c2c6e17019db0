// Package agents provides the domain system for managing agent handles
// and running them against a message.
package agents

import (
	"github.com/agentbridge/agentbridge/internal/tools"
)

// Agent represents an agent handle held in the registry. Run input is
// passed per call and never stored on the agent, so a handle is safe to
// run concurrently.
type Agent struct {
	ID           string
	Name         string
	ModelID      *string
	SystemPrompt string
	Tools        []tools.Tool
}

// CreateCommand contains the data required to create an agent.
// Every field is optional; defaults are applied during creation.
type CreateCommand struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	ModelID      *string  `json:"modelId"`
	SystemPrompt string   `json:"systemPrompt"`
	Tools        []string `json:"tools"`
}

// CreateResult is the response payload for agent creation.
type CreateResult struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// RunCommand contains the per-call input for an agent run. WorkspaceID
// accepts any JSON scalar; it is stringified for session context and
// echoed back unchanged.
type RunCommand struct {
	Message     string `json:"message"`
	WorkspaceID any    `json:"workspaceId"`
}

// RunResult is the response payload for an agent run.
type RunResult struct {
	Content     string `json:"content"`
	AgentID     string `json:"agentId"`
	WorkspaceID any    `json:"workspaceId"`
}
