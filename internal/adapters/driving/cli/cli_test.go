package cli

import (
	"bytes"
	"context"
	"iter"
	"slices"
	"testing"

	"github.com/spf13/pflag"

	"github.com/custodia-labs/nearby/internal/core/domain"
	"github.com/custodia-labs/nearby/internal/logger"
)

// --- Mock implementations ---

// mockNearbyService implements driving.NearbyService for testing.
type mockNearbyService struct {
	customers []domain.Customer
	err       error
	calls     int
	lastQuery domain.NearbyQuery
}

func (m *mockNearbyService) Find(_ context.Context, query domain.NearbyQuery) (iter.Seq[domain.Customer], error) {
	m.calls++
	m.lastQuery = query
	if m.err != nil {
		return nil, m.err
	}
	return slices.Values(m.customers), nil
}

// mockSettingsService implements driving.SettingsService for testing.
type mockSettingsService struct {
	settings domain.Settings
	getErr   error
}

func (m *mockSettingsService) Get() (*domain.Settings, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(settings *domain.Settings) error {
	m.settings = *settings
	return nil
}

func (m *mockSettingsService) SetRadius(km float64) error {
	m.settings.Search.RadiusKilometers = km
	return nil
}

func (m *mockSettingsService) SetFormat(format domain.InputFormat) error {
	m.settings.Input.Format = format
	return nil
}

func (m *mockSettingsService) SetVerbose(verbose bool) error {
	m.settings.Output.Verbose = verbose
	return nil
}

func (m *mockSettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// setupTestServices installs mock services and returns a cleanup function
// that restores the previous services.
func setupTestServices() (*mockNearbyService, *mockSettingsService, func()) {
	origNearby := nearbyService
	origSettings := settingsService

	nearby := &mockNearbyService{}
	settings := &mockSettingsService{settings: domain.DefaultSettings()}
	nearbyService = nearby
	settingsService = settings

	return nearby, settings, func() {
		nearbyService = origNearby
		settingsService = origSettings
	}
}

// execute runs the root command with args and returns its combined output.
// Flag values and logger state are reset afterwards since rootCmd is shared.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	logOut := logger.Output()
	logger.SetOutput(buf)

	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		logger.SetOutput(logOut)
		logger.SetVerbose(false)
		resetFlags()
	})

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func resetFlags() {
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}
