package services

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/nearby/internal/core/domain"
)

const angleDelta = 1e-7

func coord(t *testing.T, lat, lon string) domain.Coordinate {
	t.Helper()
	c, err := domain.ParseCoordinate(lat, lon)
	require.NoError(t, err)
	return c
}

func TestCoordinateService_DegreesToRadians(t *testing.T) {
	s := NewCoordinateService()

	tests := []struct {
		degrees float64
		radians float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{-90, -math.Pi / 2},
		{180, math.Pi},
		{360, 2 * math.Pi},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.radians, s.DegreesToRadians(tt.degrees), angleDelta)
	}

	assert.True(t, math.IsInf(s.DegreesToRadians(math.Inf(1)), 1))
	assert.True(t, math.IsInf(s.DegreesToRadians(math.Inf(-1)), -1))
	assert.True(t, math.IsNaN(s.DegreesToRadians(math.NaN())))
}

func TestCoordinateService_CentralAngle(t *testing.T) {
	s := NewCoordinateService()

	tests := []struct {
		name  string
		a, b  [2]string
		angle float64
	}{
		{"same point at origin", [2]string{"0.0", "0.0"}, [2]string{"0.0", "0.0"}, 0},
		{"same point at north pole", [2]string{"90.0", "0.0"}, [2]string{"90.0", "0.0"}, 0},
		{"same point on antimeridian", [2]string{"0.0", "180.0"}, [2]string{"0.0", "180.0"}, 0},
		{"pole to equator", [2]string{"90.0", "0.0"}, [2]string{"0.0", "0.0"}, math.Pi / 2},
		{"south pole to equator", [2]string{"-90.0", "180.0"}, [2]string{"0.0", "180.0"}, math.Pi / 2},
		{"pole to pole", [2]string{"90.0", "0.0"}, [2]string{"-90.0", "0.0"}, math.Pi},
		{"equator quarter", [2]string{"0.0", "90.0"}, [2]string{"0.0", "0.0"}, math.Pi / 2},
		{"equator half", [2]string{"0.0", "90.0"}, [2]string{"0.0", "-90.0"}, math.Pi},
		{"equator across antimeridian", [2]string{"0.0", "135.0"}, [2]string{"0.0", "-135.0"}, math.Pi / 2},
		{"longitudes 360 apart", [2]string{"0.0", "180.0"}, [2]string{"0.0", "-180.0"}, 0},
		{"north pole any longitude", [2]string{"90.0", "90.0"}, [2]string{"90.0", "-90.0"}, 0},
		{"south pole any longitude", [2]string{"-90.0", "-180.0"}, [2]string{"-90.0", "0.0"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := coord(t, tt.a[0], tt.a[1])
			b := coord(t, tt.b[0], tt.b[1])

			assert.InDelta(t, tt.angle, s.CentralAngle(a, b), angleDelta)
			assert.InDelta(t, tt.angle, s.CentralAngle(b, a), angleDelta)

			arc, err := s.ArcLength(2.0, a, b)
			require.NoError(t, err)
			assert.InDelta(t, 2.0*tt.angle, arc, angleDelta)

			assert.InDelta(t, domain.MeanEarthRadius*tt.angle, s.GreatCircleDistanceOnEarthBetween(a, b), 1.0)
		})
	}
}

func TestCoordinateService_CentralAngle_Range(t *testing.T) {
	s := NewCoordinateService()
	points := []domain.Coordinate{
		coord(t, "53.339428", "-6.257664"),
		coord(t, "51.92893", "-10.27699"),
		coord(t, "-33.8688", "151.2093"),
		coord(t, "40.7128", "-74.0060"),
		coord(t, "0", "0"),
	}

	for _, a := range points {
		for _, b := range points {
			angle := s.CentralAngle(a, b)
			require.False(t, math.IsNaN(angle), "angle between %s and %s", a, b)
			assert.GreaterOrEqual(t, angle, 0.0)
			assert.LessOrEqual(t, angle, math.Pi)
			assert.InDelta(t, angle, s.CentralAngle(b, a), angleDelta)
		}
	}
}

func TestCoordinateService_CentralAngle_IdenticalPoints(t *testing.T) {
	s := NewCoordinateService()

	c := coord(t, "10", "20")
	assert.Equal(t, 0.0, s.CentralAngle(c, c))
	assert.Equal(t, 0.0, s.GreatCircleDistanceOnEarthBetween(c, c))

	for lat := -90.0; lat <= 90.0; lat += 0.75 {
		for lon := -180.0; lon <= 180.0; lon += 1.25 {
			p, err := domain.CoordinateOf(lat, lon)
			require.NoError(t, err)
			if angle := s.CentralAngle(p, p); angle != 0 {
				t.Fatalf("CentralAngle(%s, %s) = %v, want 0", p, p, angle)
			}
		}
	}
}

func TestCoordinateService_CentralAngle_Antipodes(t *testing.T) {
	s := NewCoordinateService()

	angle := s.CentralAngle(coord(t, "10", "20"), coord(t, "-10", "-160"))

	assert.False(t, math.IsNaN(angle))
	assert.InDelta(t, math.Pi, angle, angleDelta)
	assert.LessOrEqual(t, angle, math.Pi)
}

func TestCoordinateService_GreatCircleDistance_Dublin(t *testing.T) {
	s := NewCoordinateService()
	office := coord(t, "53.339428", "-6.257664")

	tests := []struct {
		name   string
		c      domain.Coordinate
		meters float64
	}{
		{"Ian Kehoe", coord(t, "53.2451022", "-6.238335"), 10566.936},
		{"Christina McArdle", coord(t, "52.986375", "-6.043701"), 41768.726},
		{"Alice Cahill", coord(t, "51.92893", "-10.27699"), 313255.634},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.meters, s.GreatCircleDistanceOnEarthBetween(office, tt.c), 1.0)
		})
	}
}

func TestCoordinateService_ArcLength_NegativeRadius(t *testing.T) {
	s := NewCoordinateService()
	a := coord(t, "0", "0")

	_, err := s.ArcLength(-1, a, a)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNegativeRadius))
	assert.Equal(t, "radius must be greater than or equal to 0", err.Error())

	arc, err := s.ArcLength(0, a, coord(t, "90", "0"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, arc)
}
