package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/nearby/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage persisted defaults",
	Long: `View and change the defaults used when a flag is not given.

Keys:
  search.radius_km  default search radius in kilometers
  input.format      default input line format (json|yaml)
  output.verbose    print diagnostics by default (true|false)`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if configPath == "" {
			return errors.New("settings are not persisted")
		}
		fmt.Fprintln(cmd.OutOrStdout(), configPath)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	settings, err := currentSettings()
	if err != nil {
		return err
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Radius: %s km\n", formatKilometers(settings.Search.RadiusKilometers))
	cmd.Println()

	cmd.Println("[Input]")
	cmd.Printf("  Format: %s\n", settings.Input.Format.Description())
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Verbose: %t\n", settings.Output.Verbose)

	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	settings, err := currentSettings()
	if err != nil {
		return err
	}

	var value string
	switch key := args[0]; key {
	case domain.KeyRadiusKilometers:
		value = formatKilometers(settings.Search.RadiusKilometers)
	case domain.KeyInputFormat:
		value = settings.Input.Format.String()
	case domain.KeyVerbose:
		value = strconv.FormatBool(settings.Output.Verbose)
	default:
		return unknownKey(key)
	}

	// Printed to stdout so scripts can capture it.
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	switch key {
	case domain.KeyRadiusKilometers:
		km, err := parseRadius(value)
		if err != nil {
			return err
		}
		if err := settingsService.SetRadius(km); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	case domain.KeyInputFormat:
		if err := settingsService.SetFormat(domain.InputFormat(strings.ToLower(value))); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	case domain.KeyVerbose:
		verbose, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %q", key, value)
		}
		if err := settingsService.SetVerbose(verbose); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	default:
		return unknownKey(key)
	}

	cmd.Printf("%s = %s\n", key, value)
	return nil
}

func currentSettings() (*domain.Settings, error) {
	if settingsService == nil {
		return nil, errors.New("settings service not configured")
	}
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

func unknownKey(key string) error {
	return fmt.Errorf("unknown setting %q (valid keys: %s)", key, strings.Join(domain.SettingsKeys(), ", "))
}

func formatKilometers(km float64) string {
	return strconv.FormatFloat(km, 'f', -1, 64)
}
