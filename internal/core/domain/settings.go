package domain

import "math"

const unknownDescription = "Unknown"

// InputFormat names the encoding of each input line.
type InputFormat string

// Available input formats.
const (
	// FormatJSON expects one JSON object per line.
	FormatJSON InputFormat = "json"

	// FormatYAML expects one YAML flow mapping per line.
	// Plain JSON lines are also accepted.
	FormatYAML InputFormat = "yaml"
)

// IsValid returns true if the format is recognised.
func (f InputFormat) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f InputFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f InputFormat) Description() string {
	switch f {
	case FormatJSON:
		return "JSON lines"
	case FormatYAML:
		return "YAML flow mappings, one per line"
	default:
		return unknownDescription
	}
}

// AllInputFormats returns every supported format.
func AllInputFormats() []InputFormat {
	return []InputFormat{FormatJSON, FormatYAML}
}

// DefaultRadiusKilometers is the search radius used when none is given.
const DefaultRadiusKilometers = 100.0

// SearchSettings holds defaults for the range search.
type SearchSettings struct {
	RadiusKilometers float64
}

// IsValid reports whether the radius is a usable non-negative number.
func (s SearchSettings) IsValid() bool {
	return s.RadiusKilometers >= 0 && !math.IsInf(s.RadiusKilometers, 0)
}

// InputSettings holds defaults for reading the input file.
type InputSettings struct {
	Format InputFormat
}

// OutputSettings holds defaults for diagnostics.
type OutputSettings struct {
	Verbose bool
}

// Settings holds the persisted CLI defaults.
// Command-line flags take precedence over these values.
type Settings struct {
	Search SearchSettings
	Input  InputSettings
	Output OutputSettings
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		Search: SearchSettings{RadiusKilometers: DefaultRadiusKilometers},
		Input:  InputSettings{Format: FormatJSON},
		Output: OutputSettings{Verbose: false},
	}
}

// Config keys for persisted settings.
const (
	KeyRadiusKilometers = "search.radius_km"
	KeyInputFormat      = "input.format"
	KeyVerbose          = "output.verbose"
)

// SettingsKeys lists every persisted settings key.
func SettingsKeys() []string {
	return []string{KeyInputFormat, KeyVerbose, KeyRadiusKilometers}
}
