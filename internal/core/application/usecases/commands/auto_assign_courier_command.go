package commands

import (
	"errors"

	"deliverysystem/internal/pkg/guard"
)

var ErrAutoAssignCourierCommandIsNotConstructed = errors.New(
	"AutoAssignCourierCommand must be created via NewAutoAssignCourierCommand constructor",
)

// AutoAssignCourierCommand triggers the assignment of an available courier to
// the oldest ReadyForDelivery order that has no active delivery yet.
//
// Example:
//
//	cmd := NewAutoAssignCourierCommand()
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No orders to assign or no available couriers: %v", err)
//	}
type AutoAssignCourierCommand struct {
	guard guard.ConstructorGuard
}

// NewAutoAssignCourierCommand creates a new command to trigger courier assignment.
// This is a parameterless command that initiates the courier-order matching process.
func NewAutoAssignCourierCommand() AutoAssignCourierCommand {
	return AutoAssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAutoAssignCourierCommandIsNotConstructed if validation fails.
func (c *AutoAssignCourierCommand) Validate() error {
	return c.guard.Validate(
		ErrAutoAssignCourierCommandIsNotConstructed,
	)
}
