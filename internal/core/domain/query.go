package domain

// NearbyQuery configures one pipeline run.
type NearbyQuery struct {
	// InputFile is the path of the line-delimited record file.
	InputFile string

	// Format selects the record decoder. Empty means FormatJSON.
	Format InputFormat

	// Target is the point distances are measured from.
	Target Coordinate

	// RadiusMeters is the inclusive search radius.
	RadiusMeters float64

	// Verbose enables per-item diagnostics.
	Verbose bool
}
