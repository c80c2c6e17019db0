package agents

import "context"

// System defines the interface for agent storage and execution operations.
type System interface {
	Create(ctx context.Context, cmd CreateCommand) (*CreateResult, error)
	Run(ctx context.Context, id string, cmd RunCommand) (*RunResult, error)
	Get(id string) (*Agent, error)
	Keys() []string
}
