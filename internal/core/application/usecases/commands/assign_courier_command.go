package commands

import (
	"errors"

	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand asks for a specific courier to take a ReadyForDelivery
// order over distanceKm. The distance is checked against the configured
// maximum by the handler, not here, so the limit can change at runtime.
//
// Example:
//
//	cmd, err := NewAssignCourierCommand(orderID, courierID, decimal.NewFromInt(10))
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	courierID  kernel.UUID
	distanceKm decimal.Decimal

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a new command to assign courierID to orderID.
func NewAssignCourierCommand(orderID, courierID kernel.UUID, distanceKm decimal.Decimal) (AssignCourierCommand, error) {
	if err := errors.Join(
		validateID("orderID", orderID),
		validateID("courierID", courierID),
	); err != nil {
		return AssignCourierCommand{}, err
	}

	return AssignCourierCommand{
		orderID:    orderID,
		courierID:  courierID,
		distanceKm: distanceKm,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignCourierCommandIsNotConstructed if validation fails.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

func (c AssignCourierCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c AssignCourierCommand) DistanceKm() decimal.Decimal {
	return c.distanceKm
}
