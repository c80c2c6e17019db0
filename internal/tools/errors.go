package tools

import "errors"

// ErrNotFound marks a lookup for an unregistered tool id. Agent creation
// treats it as a skip signal rather than a failure.
var ErrNotFound = errors.New("tool not found")
