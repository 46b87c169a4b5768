package driving

import "github.com/custodia-labs/utilkit/internal/core/domain"

// SettingsService manages user preferences.
type SettingsService interface {
	// Get returns the current settings, filling defaults for unset keys.
	Get() (*domain.AppSettings, error)

	// Save persists all settings.
	Save(settings *domain.AppSettings) error

	// Set stores a single setting by key, validating its value.
	Set(key, value string) error
}
