// Package cli provides the cobra command tree for the nearby binary.
// Services are injected by the composition root through SetServices.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/nearby/internal/core/ports/driving"
)

var (
	version = "dev"

	nearbyService   driving.NearbyService
	settingsService driving.SettingsService
	configPath      string
)

var rootCmd = &cobra.Command{
	Use:   "nearby",
	Short: "Find customers within range of a location",
	Long: `Reads a customer file with one record per line, drops records that cannot
be decoded or validated, and prints the customers within the given radius of
the target location, ordered by user ID.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runNearby,
}

// SetServices injects the core services used by the commands.
func SetServices(nearby driving.NearbyService, settings driving.SettingsService) {
	nearbyService = nearby
	settingsService = settings
}

// SetConfigPath records where persisted defaults live, for "config path".
func SetConfigPath(path string) {
	configPath = path
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
