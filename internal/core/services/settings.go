package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/utilkit/internal/core/domain"
	"github.com/custodia-labs/utilkit/internal/core/ports/driven"
	"github.com/custodia-labs/utilkit/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyOutputFormat = "output.format"
	KeyVerbose      = "core.verbose"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or invalid stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Output: domain.OutputSettings{
			Format: s.getOutputFormat(defaults.Output.Format),
		},
		Verbose: s.getBool(KeyVerbose, defaults.Verbose),
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(KeyOutputFormat, settings.Output.Format.String()); err != nil {
		return fmt.Errorf("save output format: %w", err)
	}
	if err := s.configStore.Set(KeyVerbose, settings.Verbose); err != nil {
		return fmt.Errorf("save verbose: %w", err)
	}
	return nil
}

// Set validates and stores a single setting.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case KeyOutputFormat:
		format := domain.OutputFormat(value)
		if !format.IsValid() {
			return fmt.Errorf("output format %q: %w", value, domain.ErrInvalidInput)
		}
		settings.Output.Format = format
	case KeyVerbose:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("verbose %q: %w", value, domain.ErrInvalidInput)
		}
		settings.Verbose = v
	default:
		return fmt.Errorf("%s: %w", key, domain.ErrUnknownSetting)
	}

	return s.Save(settings)
}

func (s *SettingsService) getOutputFormat(defaultVal domain.OutputFormat) domain.OutputFormat {
	format := domain.OutputFormat(s.configStore.GetString(KeyOutputFormat))
	if !format.IsValid() {
		return defaultVal
	}
	return format
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
