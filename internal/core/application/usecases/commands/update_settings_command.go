package commands

import (
	"errors"

	"deliverysystem/internal/config"
	"deliverysystem/internal/pkg/errs"
	"deliverysystem/internal/pkg/guard"
)

var ErrUpdateSettingsCommandIsNotConstructed = errors.New(
	"UpdateSettingsCommand must be created via NewUpdateSettingsCommand constructor",
)

// UpdateSettingsCommand carries a partial settings change. Field values are
// validated by the settings store when the command is handled, so that all
// fields are applied together or not at all.
type UpdateSettingsCommand struct {
	update config.Update

	guard guard.ConstructorGuard
}

// NewUpdateSettingsCommand rejects an update that changes nothing.
func NewUpdateSettingsCommand(update config.Update) (UpdateSettingsCommand, error) {
	if update.MaxDeliveryDistanceKm == nil &&
		update.DefaultCurrency == nil &&
		update.MaxOrderItems == nil &&
		update.SystemName == nil {
		return UpdateSettingsCommand{}, errs.NewValueIsRequiredError("settings")
	}

	return UpdateSettingsCommand{
		update: update,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateSettingsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSettingsCommandIsNotConstructed)
}

func (c UpdateSettingsCommand) Update() config.Update {
	return c.update
}
