package commands

import (
	"errors"

	"deliverysystem/internal/pkg/guard"
)

var ErrReleaseIdleCouriersCommandIsNotConstructed = errors.New(
	"ReleaseIdleCouriersCommand must be created via NewReleaseIdleCouriersCommand constructor",
)

// ReleaseIdleCouriersCommand makes couriers available again when they are
// reserved but have no active delivery, e.g. after a release was skipped.
type ReleaseIdleCouriersCommand struct {
	guard guard.ConstructorGuard
}

func NewReleaseIdleCouriersCommand() ReleaseIdleCouriersCommand {
	return ReleaseIdleCouriersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c *ReleaseIdleCouriersCommand) Validate() error {
	return c.guard.Validate(ErrReleaseIdleCouriersCommandIsNotConstructed)
}
