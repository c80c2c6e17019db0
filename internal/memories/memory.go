// Package memories provides the domain system for bounded FIFO memory
// managers.
package memories

// Entry is a single stored memory.
type Entry struct {
	Content string `json:"content"`
}

// Manager represents a bounded memory store. Entries never exceed Limit;
// inserting at capacity evicts the oldest entry first.
type Manager struct {
	ID      string
	ModelID *string
	Limit   int
	Entries []Entry
}

// CreateCommand contains the data required to create a memory manager.
// Every field is optional; defaults are applied during creation.
type CreateCommand struct {
	ID      string  `json:"id"`
	ModelID *string `json:"modelId"`
	Limit   *int    `json:"limit"`
}

// CreateResult is the response payload for memory manager creation.
type CreateResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// AddCommand contains the content for a memory insertion.
type AddCommand struct {
	Content string `json:"content"`
}

// AddResult is the response payload for a memory insertion.
type AddResult struct {
	Result bool   `json:"result"`
	Status string `json:"status"`
}
