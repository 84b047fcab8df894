package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidState is the sentinel for operations that are illegal in the
// entity's current lifecycle state.
var ErrInvalidState = errors.New("invalid state")

// InvalidStateError describes a rejected lifecycle operation.
// Target is empty when the failure is a missing precondition rather than a transition.
type InvalidStateError struct {
	Entity  string
	Current string
	Target  string
	Reason  string
}

// NewInvalidStateError reports an illegal transition from current to target.
func NewInvalidStateError(entity, current, target string) *InvalidStateError {
	return &InvalidStateError{Entity: entity, Current: current, Target: target}
}

// NewInvalidStateErrorWithReason reports an operation that is not allowed while
// the entity is in the current state.
func NewInvalidStateErrorWithReason(entity, current, reason string) *InvalidStateError {
	return &InvalidStateError{Entity: entity, Current: current, Reason: reason}
}

func (e *InvalidStateError) Error() string {
	switch {
	case e.Target != "":
		return fmt.Sprintf("%s: %s cannot transition from %s to %s", ErrInvalidState, e.Entity, e.Current, e.Target)
	case e.Current != "":
		return fmt.Sprintf("%s: %s is %s: %s", ErrInvalidState, e.Entity, e.Current, e.Reason)
	default:
		return fmt.Sprintf("%s: %s: %s", ErrInvalidState, e.Entity, e.Reason)
	}
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}
