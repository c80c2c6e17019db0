package providers

import (
	"errors"
	"fmt"
)

// ErrUnsupported marks a provider kind outside the supported set.
var ErrUnsupported = errors.New("unsupported model type")

// UnsupportedKindError reports an unsupported provider kind. Its message
// is part of the wire contract, so the capitalization is deliberate.
type UnsupportedKindError struct {
	Kind string
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("Unsupported model type: %s", e.Kind)
}

func (e *UnsupportedKindError) Unwrap() error {
	return ErrUnsupported
}
