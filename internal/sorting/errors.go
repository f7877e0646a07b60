package sorting

import (
	"errors"
	"fmt"
)

// Domain errors for sorting sessions.
var (
	// ErrInvalidState indicates cursor indices outside their invariant.
	ErrInvalidState = errors.New("sorting: invalid step state")

	// ErrUnknownAlgorithm indicates a name or kind outside the supported set.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")
)

// StateError wraps ErrInvalidState with the offending cursor bundle.
type StateError struct {
	State  State
	Size   int
	Reason string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%v: %s (kind=%s i=%d j=%d min=%d n=%d)",
		ErrInvalidState, e.Reason, e.State.Kind, e.State.I, e.State.J, e.State.Min, e.Size)
}

func (e *StateError) Unwrap() error {
	return ErrInvalidState
}
