package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrObjectNotFound is the sentinel for lookups of unknown identifiers.
	ErrObjectNotFound = errors.New("object not found")
	// ErrObjectAlreadyExists is the sentinel for inserting an identifier twice.
	ErrObjectAlreadyExists = errors.New("object already exists")
)

// ObjectNotFoundError reports that the entity referenced by ID does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError carrying the underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
	}
	return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
		ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectAlreadyExistsError reports that an entity with ID is already stored.
type ObjectAlreadyExistsError struct {
	ParamName string
	ID        any
}

// NewObjectAlreadyExistsError creates an ObjectAlreadyExistsError.
func NewObjectAlreadyExistsError(paramName string, id any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id}
}

func (e *ObjectAlreadyExistsError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrObjectAlreadyExists, e.ParamName, sanitize(e.ID))
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}
