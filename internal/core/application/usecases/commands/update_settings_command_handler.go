package commands

import (
	"context"
	"log/slog"

	"deliverysystem/internal/config"
)

// SettingsStore applies validated settings changes.
type SettingsStore interface {
	Apply(update config.Update) error
	Snapshot() config.Settings
}

// UpdateSettingsCommandHandler changes the business settings at runtime.
// Concurrent updates are serialized by the store; readers always see either
// the old or the new settings as a whole.
type UpdateSettingsCommandHandler struct {
	store  SettingsStore
	logger *slog.Logger
}

func NewUpdateSettingsCommandHandler(store SettingsStore, logger *slog.Logger) UpdateSettingsCommandHandler {
	return UpdateSettingsCommandHandler{
		store:  store,
		logger: logger.With("component", "settings"),
	}
}

func (h UpdateSettingsCommandHandler) Handle(ctx context.Context, command UpdateSettingsCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := h.store.Apply(command.Update()); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "settings updated", "settings", h.store.Snapshot().String())
	return nil
}
