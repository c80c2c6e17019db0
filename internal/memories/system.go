package memories

import "context"

// System defines the interface for memory manager storage and insertion.
type System interface {
	Create(ctx context.Context, cmd CreateCommand) (*CreateResult, error)
	Add(ctx context.Context, id string, cmd AddCommand) (*AddResult, error)
	Get(id string) (*Manager, error)
	Keys() []string
}
