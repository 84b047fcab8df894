package queries

import (
	"deliverysystem/internal/config"
	"deliverysystem/internal/core/ports"
)

// GetSettingsQueryHandler returns the current business settings. The
// snapshot is a copy; later updates do not change it.
type GetSettingsQueryHandler struct {
	settings ports.SettingsProvider
}

func NewGetSettingsQueryHandler(settings ports.SettingsProvider) GetSettingsQueryHandler {
	return GetSettingsQueryHandler{settings: settings}
}

func (h GetSettingsQueryHandler) Handle() config.Settings {
	return h.settings.Snapshot()
}
