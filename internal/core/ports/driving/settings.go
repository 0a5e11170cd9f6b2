package driving

import "github.com/custodia-labs/nearby/internal/core/domain"

// SettingsService manages persisted defaults for the CLI.
type SettingsService interface {
	// Get retrieves current settings, falling back to defaults.
	Get() (*domain.Settings, error)

	// Save persists settings.
	Save(settings *domain.Settings) error

	// SetRadius updates the default search radius in kilometers.
	SetRadius(km float64) error

	// SetFormat updates the default input format.
	SetFormat(format domain.InputFormat) error

	// SetVerbose updates the default verbosity.
	SetVerbose(verbose bool) error

	// GetDefaults returns built-in default settings.
	GetDefaults() domain.Settings
}
