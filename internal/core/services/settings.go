package services

import (
	"fmt"

	"github.com/custodia-labs/nearby/internal/core/domain"
	"github.com/custodia-labs/nearby/internal/core/ports/driven"
	"github.com/custodia-labs/nearby/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages persisted CLI defaults.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	return &domain.Settings{
		Search: domain.SearchSettings{
			RadiusKilometers: s.getRadius(defaults.Search.RadiusKilometers),
		},
		Input: domain.InputSettings{
			Format: s.getFormat(defaults.Input.Format),
		},
		Output: domain.OutputSettings{
			Verbose: s.getBool(domain.KeyVerbose, defaults.Output.Verbose),
		},
	}, nil
}

// Save persists settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if err := s.configStore.Set(domain.KeyRadiusKilometers, settings.Search.RadiusKilometers); err != nil {
		return fmt.Errorf("save search radius: %w", err)
	}
	if err := s.configStore.Set(domain.KeyInputFormat, settings.Input.Format.String()); err != nil {
		return fmt.Errorf("save input format: %w", err)
	}
	if err := s.configStore.Set(domain.KeyVerbose, settings.Output.Verbose); err != nil {
		return fmt.Errorf("save output verbose: %w", err)
	}
	return nil
}

// SetRadius updates the default search radius in kilometers.
func (s *SettingsService) SetRadius(km float64) error {
	radius := domain.SearchSettings{RadiusKilometers: km}
	if !radius.IsValid() {
		return fmt.Errorf("%w: %v", domain.ErrNegativeRadius, km)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Search = radius
	return s.Save(settings)
}

// SetFormat updates the default input format.
func (s *SettingsService) SetFormat(format domain.InputFormat) error {
	if !format.IsValid() {
		return fmt.Errorf("%w: input format %q", domain.ErrUnsupportedType, format)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Input.Format = format
	return s.Save(settings)
}

// SetVerbose updates the default verbosity.
func (s *SettingsService) SetVerbose(verbose bool) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Output.Verbose = verbose
	return s.Save(settings)
}

// GetDefaults returns built-in default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getRadius(defaultVal float64) float64 {
	val, exists := s.configStore.Get(domain.KeyRadiusKilometers)
	if !exists {
		return defaultVal
	}
	switch val.(type) {
	case float64, float32, int, int64:
	default:
		return defaultVal
	}
	radius := domain.SearchSettings{RadiusKilometers: s.configStore.GetFloat(domain.KeyRadiusKilometers)}
	if !radius.IsValid() {
		return defaultVal
	}
	return radius.RadiusKilometers
}

func (s *SettingsService) getFormat(defaultVal domain.InputFormat) domain.InputFormat {
	format := domain.InputFormat(s.configStore.GetString(domain.KeyInputFormat))
	if !format.IsValid() {
		return defaultVal
	}
	return format
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
