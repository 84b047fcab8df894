package commands

import (
	"errors"

	"deliverysystem/internal/core/domain/model/delivery"
	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/pkg/errs"
	"deliverysystem/internal/pkg/guard"
)

var ErrChangeDeliveryStatusCommandIsNotConstructed = errors.New(
	"ChangeDeliveryStatusCommand must be created via NewChangeDeliveryStatusCommand constructor",
)

// ChangeDeliveryStatusCommand records delivery progress: PickedUp,
// InTransit, Delivered or Failed.
type ChangeDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	target     delivery.Status

	guard guard.ConstructorGuard
}

func NewChangeDeliveryStatusCommand(deliveryID kernel.UUID, target delivery.Status) (ChangeDeliveryStatusCommand, error) {
	command := ChangeDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setTarget(target),
	); err != nil {
		return ChangeDeliveryStatusCommand{}, err
	}

	return command, nil
}

func (c ChangeDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDeliveryStatusCommandIsNotConstructed)
}

func (c ChangeDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c ChangeDeliveryStatusCommand) Target() delivery.Status {
	return c.target
}

func (c *ChangeDeliveryStatusCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryID = id
	return nil
}

func (c *ChangeDeliveryStatusCommand) setTarget(target delivery.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	switch target {
	case delivery.PickedUp, delivery.InTransit, delivery.Delivered, delivery.Failed:
	default:
		return errs.NewValueIsInvalidError("target")
	}

	c.target = target
	return nil
}
