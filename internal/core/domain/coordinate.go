package domain

import (
	"fmt"
	"math"
)

const (
	// MaxLatitude bounds latitude to [-MaxLatitude, MaxLatitude].
	MaxLatitude = 90.0

	// MaxLongitude bounds longitude to [-MaxLongitude, MaxLongitude].
	MaxLongitude = 180.0

	// MeanEarthRadius is the mean radius of a spherical Earth in meters.
	// See https://en.wikipedia.org/wiki/Great-circle_distance#Radius_for_spherical_Earth
	MeanEarthRadius = 6_371_000.0

	// MetersPerKilometer converts user-facing radii to meters.
	MetersPerKilometer = 1_000.0
)

// Coordinate is an immutable latitude/longitude pair in decimal degrees.
// Coordinates compare by value. An out-of-range or missing component makes
// the coordinate invalid, which Validate reports.
type Coordinate struct {
	latitude  Degrees
	longitude Degrees
}

// NewCoordinate builds a coordinate without validating it.
func NewCoordinate(latitude, longitude Degrees) Coordinate {
	return Coordinate{latitude: latitude, longitude: longitude}
}

// ParseCoordinate parses and validates a coordinate from decimal strings.
// A value that is not a number yields an error wrapping ErrNotANumber;
// an out-of-range value yields a *ValidationError.
func ParseCoordinate(latitude, longitude string) (Coordinate, error) {
	lat, err := ParseDegrees(latitude)
	if err != nil {
		return Coordinate{}, fmt.Errorf("latitude: %w", err)
	}
	lon, err := ParseDegrees(longitude)
	if err != nil {
		return Coordinate{}, fmt.Errorf("longitude: %w", err)
	}
	return checked(NewCoordinate(lat, lon))
}

// CoordinateOf builds and validates a coordinate from numeric values.
// NaN and infinities yield an error wrapping ErrNotANumber.
func CoordinateOf(latitude, longitude float64) (Coordinate, error) {
	if math.IsNaN(latitude) || math.IsInf(latitude, 0) {
		return Coordinate{}, fmt.Errorf("latitude: %w: %v", ErrNotANumber, latitude)
	}
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return Coordinate{}, fmt.Errorf("longitude: %w: %v", ErrNotANumber, longitude)
	}
	return checked(NewCoordinate(DegreesOf(latitude), DegreesOf(longitude)))
}

func checked(c Coordinate) (Coordinate, error) {
	if verr := NewValidationError(c.String(), c.Validate()); verr != nil {
		return Coordinate{}, verr
	}
	return c, nil
}

// Latitude returns the latitude component.
func (c Coordinate) Latitude() Degrees { return c.latitude }

// Longitude returns the longitude component.
func (c Coordinate) Longitude() Degrees { return c.longitude }

// Validate returns the violated constraints, ordered by path.
func (c Coordinate) Validate() []Violation {
	var violations []Violation

	switch {
	case !c.latitude.IsSet():
		violations = append(violations, Violation{Path: "latitude", Message: "latitude must not be null"})
	case !c.latitude.within(MaxLatitude):
		violations = append(violations, Violation{Path: "latitude", Message: "latitude must be between -90.0 and 90.0"})
	}

	switch {
	case !c.longitude.IsSet():
		violations = append(violations, Violation{Path: "longitude", Message: "longitude must not be null"})
	case !c.longitude.within(MaxLongitude):
		violations = append(violations, Violation{Path: "longitude", Message: "longitude must be between -180.0 and 180.0"})
	}

	return violations
}

// IsValid reports whether both components are present and in range.
func (c Coordinate) IsValid() bool {
	return len(c.Validate()) == 0
}

// String renders the coordinate as Coordinate(latitude=<lat>, longitude=<lon>).
func (c Coordinate) String() string {
	return fmt.Sprintf("Coordinate(latitude=%s, longitude=%s)", c.latitude, c.longitude)
}
