package driving

import "github.com/custodia-labs/apuntes/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, defaults applied.
	Get() (*domain.AppSettings, error)

	// Set validates and stores a single setting by key.
	Set(key, value string) error

	// Keys returns every recognised setting key.
	Keys() []string
}
