package commands

import (
	"errors"

	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand represents a request to register a courier of a given
// vehicle kind. Kind specific payload (license plate, flight range) travels
// in params and is checked by the kind's factory.
//
// Example:
//
//	cmd, err := NewCreateCourierCommand(kernel.NewUUID(), courier.Car, courier.CreationParams{
//	    Name:         "Ion",
//	    Phone:        "+37369000000",
//	    LicensePlate: "C AB 123",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//
//	handler := NewCreateCourierCommandHandler(uowFactory, courier.NewDefaultFactoryProvider())
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create courier: %w", err)
//	}
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	kind      courier.VehicleKind
	params    courier.CreationParams

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a new courier.
// Validates the id and the vehicle kind.
func NewCreateCourierCommand(
	courierID kernel.UUID,
	kind courier.VehicleKind,
	params courier.CreationParams,
) (CreateCourierCommand, error) {
	command := CreateCourierCommand{
		params: params,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setKind(kind),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCourierCommandIsNotConstructed if validation fails.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the courier ID from the command.
func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Kind returns the requested vehicle kind.
func (c CreateCourierCommand) Kind() courier.VehicleKind {
	return c.kind
}

// Params returns the factory input.
func (c CreateCourierCommand) Params() courier.CreationParams {
	return c.params
}

func (c *CreateCourierCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *CreateCourierCommand) setKind(kind courier.VehicleKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}
