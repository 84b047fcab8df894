package commands

import (
	"errors"

	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/pkg/errs"
	"deliverysystem/internal/pkg/guard"
)

var ErrCloneOrderCommandIsNotConstructed = errors.New(
	"CloneOrderCommand must be created via NewCloneOrderCommand constructor",
)

// CloneOrderCommand re-places an existing order as a new Created order
// with copies of its items.
type CloneOrderCommand struct { //nolint:recvcheck //using for validation
	sourceOrderID kernel.UUID
	cloneOrderID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCloneOrderCommand creates the command. cloneOrderID becomes the id of the copy.
func NewCloneOrderCommand(sourceOrderID, cloneOrderID kernel.UUID) (CloneOrderCommand, error) {
	if err := errors.Join(
		validateID("sourceOrderID", sourceOrderID),
		validateID("cloneOrderID", cloneOrderID),
	); err != nil {
		return CloneOrderCommand{}, err
	}
	if sourceOrderID.IsEqual(cloneOrderID) {
		return CloneOrderCommand{}, errs.NewValueIsInvalidError("cloneOrderID")
	}

	return CloneOrderCommand{
		sourceOrderID: sourceOrderID,
		cloneOrderID:  cloneOrderID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CloneOrderCommand) Validate() error {
	return c.guard.Validate(ErrCloneOrderCommandIsNotConstructed)
}

func (c CloneOrderCommand) SourceOrderID() kernel.UUID {
	return c.sourceOrderID
}

func (c CloneOrderCommand) CloneOrderID() kernel.UUID {
	return c.cloneOrderID
}

func validateID(paramName string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(paramName, err)
	}
	return nil
}
