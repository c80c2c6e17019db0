// Package tools provides the registry for tool definitions agents can
// reference. Tools are declarative handles only; execution is out of scope.
package tools

// Tool represents a callable capability exposed to agents. Parameters is
// an opaque JSON schema object passed through untouched.
type Tool struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// CreateCommand contains the data required to create a tool.
// Every field is optional; defaults are applied during creation.
type CreateCommand struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// CreateResult is the response payload for tool creation.
type CreateResult struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}
