package tools

import "context"

// System defines the interface for tool storage and retrieval operations.
type System interface {
	Create(ctx context.Context, cmd CreateCommand) (*CreateResult, error)
	Get(id string) (*Tool, error)
	Keys() []string
}
