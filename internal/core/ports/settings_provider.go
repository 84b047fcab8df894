package ports

import "deliverysystem/internal/config"

// SettingsProvider returns a consistent copy of the business settings.
// *config.Store implements it.
type SettingsProvider interface {
	Snapshot() config.Settings
}
