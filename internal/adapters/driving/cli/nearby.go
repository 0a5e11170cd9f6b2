package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/nearby/internal/core/domain"
	"github.com/custodia-labs/nearby/internal/logger"
)

const (
	flagInputFile = "input-file"
	flagLatitude  = "latitude"
	flagLongitude = "longitude"
	flagRadius    = "radius"
	flagFormat    = "format"
	flagVerbose   = "verbose"
)

var (
	nearbyInputFile string
	nearbyLatitude  string
	nearbyLongitude string
	nearbyRadius    string
	nearbyFormat    string
	nearbyVerbose   bool
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&nearbyInputFile, flagInputFile, "", "customer file")
	flags.StringVar(&nearbyLatitude, flagLatitude, "", "latitude coordinate (in degrees) of target location")
	flags.StringVar(&nearbyLongitude, flagLongitude, "", "longitude coordinate (in degrees) of target location")
	flags.StringVarP(&nearbyRadius, flagRadius, "r",
		strconv.FormatFloat(domain.DefaultRadiusKilometers, 'f', -1, 64), "search radius in kilometers")
	flags.StringVarP(&nearbyFormat, flagFormat, "f", domain.FormatJSON.String(), "input line format (json|yaml)")
	flags.BoolVarP(&nearbyVerbose, flagVerbose, "v", false, "verbose mode")
	flags.SetNormalizeFunc(flagAliases)

	_ = rootCmd.MarkFlagRequired(flagInputFile)
	_ = rootCmd.MarkFlagRequired(flagLatitude)
	_ = rootCmd.MarkFlagRequired(flagLongitude)
}

// flagAliases accepts --lat and --long for the coordinate flags.
func flagAliases(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "lat":
		name = flagLatitude
	case "long":
		name = flagLongitude
	}
	return pflag.NormalizedName(name)
}

func runNearby(cmd *cobra.Command, _ []string) error {
	if nearbyService == nil {
		return errors.New("nearby service not configured")
	}

	query, err := buildQuery(cmd)
	if err != nil {
		return err
	}

	logger.SetVerbose(query.Verbose)
	logger.Info("Verbose mode enabled")

	customers, err := nearbyService.Find(cmd.Context(), query)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for c := range customers {
		fmt.Fprintln(out, c.String())
	}
	return nil
}

// buildQuery merges flags with persisted defaults; explicit flags win.
func buildQuery(cmd *cobra.Command) (domain.NearbyQuery, error) {
	settings := domain.DefaultSettings()
	if settingsService != nil {
		stored, err := settingsService.Get()
		if err != nil {
			return domain.NearbyQuery{}, fmt.Errorf("failed to get settings: %w", err)
		}
		settings = *stored
	}

	flags := cmd.Flags()

	radiusKm := settings.Search.RadiusKilometers
	if flags.Changed(flagRadius) {
		r, err := parseRadius(nearbyRadius)
		if err != nil {
			return domain.NearbyQuery{}, err
		}
		radiusKm = r
	}

	format := settings.Input.Format
	if flags.Changed(flagFormat) {
		format = domain.InputFormat(nearbyFormat)
		if !format.IsValid() {
			return domain.NearbyQuery{}, fmt.Errorf("%w: input format %q", domain.ErrUnsupportedType, nearbyFormat)
		}
	}

	verbose := settings.Output.Verbose
	if flags.Changed(flagVerbose) {
		verbose = nearbyVerbose
	}

	target, err := domain.ParseCoordinate(nearbyLatitude, nearbyLongitude)
	if err != nil {
		return domain.NearbyQuery{}, fmt.Errorf("invalid target location: %w", err)
	}

	return domain.NearbyQuery{
		InputFile:    nearbyInputFile,
		Format:       format,
		Target:       target,
		RadiusMeters: radiusKm * domain.MetersPerKilometer,
		Verbose:      verbose,
	}, nil
}

// parseRadius parses a radius in kilometers. Negative values pass through
// so the pipeline can reject them with domain.ErrNegativeRadius.
func parseRadius(s string) (float64, error) {
	r, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, fmt.Errorf("invalid radius: %w: %q", domain.ErrNotANumber, s)
	}
	return r, nil
}
