// Package guard holds small helpers that protect domain invariants.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller passes a nil error and the guarded object is a zero value.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an aggregate or value object as built by its
// constructor. Embed it as a field and check it in Validate; a zero-value
// struct carries a zero-value guard and fails the check.
//
// Example:
//
//	var ErrAddressNotConstructed = errors.New("Address must be created via NewAddress")
//
//	type Address struct {
//	    city  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (a Address) Validate() error {
//	    return a.guard.Validate(ErrAddressNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard and validationError otherwise.
// A nil validationError is replaced by ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
