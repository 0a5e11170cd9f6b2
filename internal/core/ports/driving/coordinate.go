package driving

import "github.com/custodia-labs/nearby/internal/core/domain"

// CoordinateService provides great-circle math on a sphere.
type CoordinateService interface {
	// DegreesToRadians converts an angle. IEEE special values propagate.
	DegreesToRadians(degrees float64) float64

	// CentralAngle returns the angle in radians subtended at the centre
	// of the sphere by a and b.
	CentralAngle(a, b domain.Coordinate) float64

	// ArcLength returns the distance between a and b on a sphere of the
	// given radius, in the radius's unit.
	// Returns domain.ErrNegativeRadius if radius < 0.
	ArcLength(radius float64, a, b domain.Coordinate) (float64, error)

	// GreatCircleDistanceOnEarthBetween returns the distance in meters
	// using domain.MeanEarthRadius.
	GreatCircleDistanceOnEarthBetween(a, b domain.Coordinate) float64
}
