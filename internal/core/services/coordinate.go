package services

import (
	"math"

	"github.com/custodia-labs/nearby/internal/core/domain"
	"github.com/custodia-labs/nearby/internal/core/ports/driving"
)

// Ensure CoordinateService implements the interface.
var _ driving.CoordinateService = (*CoordinateService)(nil)

// CoordinateService computes great-circle distances with the spherical
// law of cosines.
type CoordinateService struct{}

// NewCoordinateService creates a new coordinate service.
func NewCoordinateService() *CoordinateService {
	return &CoordinateService{}
}

// DegreesToRadians converts an angle from degrees to radians.
func (s *CoordinateService) DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// CentralAngle returns the central angle between a and b in radians.
//
// The longitude difference is used as-is, without reducing it into
// [0, pi]; cos makes the result identical either way. Coincident points
// give exactly 0, and the acos argument is clamped to [-1, 1] so rounding
// never yields NaN.
//
// See https://en.wikipedia.org/wiki/Great-circle_distance
func (s *CoordinateService) CentralAngle(a, b domain.Coordinate) float64 {
	latA := s.DegreesToRadians(a.Latitude().Float64())
	lonA := s.DegreesToRadians(a.Longitude().Float64())
	latB := s.DegreesToRadians(b.Latitude().Float64())
	lonB := s.DegreesToRadians(b.Longitude().Float64())

	if latA == latB && lonA == lonB {
		return 0
	}

	deltaLon := math.Abs(lonA - lonB)

	cosAngle := math.Sin(latA)*math.Sin(latB) + math.Cos(latA)*math.Cos(latB)*math.Cos(deltaLon)

	return math.Acos(math.Max(-1, math.Min(1, cosAngle)))
}

// ArcLength returns the arc length between a and b on a sphere of the given radius.
func (s *CoordinateService) ArcLength(radius float64, a, b domain.Coordinate) (float64, error) {
	if radius < 0 {
		return 0, domain.ErrNegativeRadius
	}
	return radius * s.CentralAngle(a, b), nil
}

// GreatCircleDistanceOnEarthBetween returns the distance between a and b in meters.
func (s *CoordinateService) GreatCircleDistanceOnEarthBetween(a, b domain.Coordinate) float64 {
	return domain.MeanEarthRadius * s.CentralAngle(a, b)
}
