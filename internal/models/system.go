package models

import "context"

// System defines the interface for model handle storage and invocation.
type System interface {
	Create(ctx context.Context, cmd CreateCommand) (*CreateResult, error)
	Generate(ctx context.Context, id string, cmd GenerateCommand) (*GenerateResult, error)
	Get(id string) (*Model, error)
	Keys() []string
}
