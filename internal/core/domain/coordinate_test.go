package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDegrees(t *testing.T, s string) Degrees {
	t.Helper()
	d, err := ParseDegrees(s)
	require.NoError(t, err)
	return d
}

// TestParseCoordinate tests a valid coordinate
func TestParseCoordinate(t *testing.T) {
	c, err := ParseCoordinate("53.339428", "-6.257664")
	require.NoError(t, err)

	assert.Equal(t, "53.339428", c.Latitude().String())
	assert.Equal(t, "-6.257664", c.Longitude().String())
	assert.True(t, c.IsValid())
	assert.Equal(t, "Coordinate(latitude=53.339428, longitude=-6.257664)", c.String())
}

// TestParseCoordinate_Bounds tests that the range limits are inclusive
func TestParseCoordinate_Bounds(t *testing.T) {
	tests := []struct{ lat, lon string }{
		{"90", "180"},
		{"-90", "-180"},
		{"90.0", "-180.0"},
		{"0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.lat+","+tt.lon, func(t *testing.T) {
			_, err := ParseCoordinate(tt.lat, tt.lon)
			assert.NoError(t, err)
		})
	}
}

// TestParseCoordinate_OutOfRange tests that range failures are validation errors
func TestParseCoordinate_OutOfRange(t *testing.T) {
	_, err := ParseCoordinate("90.1", "180.1")
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrNotANumber))
	assert.Equal(t, []Violation{
		{Path: "latitude", Message: "latitude must be between -90.0 and 90.0"},
		{Path: "longitude", Message: "longitude must be between -180.0 and 180.0"},
	}, verr.Violations)
	assert.Equal(t, "Coordinate(latitude=90.1, longitude=180.1)", verr.Subject)
}

// TestParseCoordinate_NotANumber tests that parse failures are distinct from range failures
func TestParseCoordinate_NotANumber(t *testing.T) {
	_, err := ParseCoordinate("north", "0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotANumber))
	assert.False(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "latitude")

	_, err = ParseCoordinate("0", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotANumber))
	assert.Contains(t, err.Error(), "longitude")
}

// TestCoordinateOf tests numeric construction
func TestCoordinateOf(t *testing.T) {
	c, err := CoordinateOf(52.986375, -6.043701)
	require.NoError(t, err)
	assert.Equal(t, 52.986375, c.Latitude().Float64())

	_, err = CoordinateOf(math.NaN(), 0)
	assert.True(t, errors.Is(err, ErrNotANumber))

	_, err = CoordinateOf(0, math.Inf(1))
	assert.True(t, errors.Is(err, ErrNotANumber))

	_, err = CoordinateOf(-91, 0)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

// TestCoordinate_Validate tests violations of an unchecked coordinate
func TestCoordinate_Validate(t *testing.T) {
	tests := []struct {
		name       string
		coordinate Coordinate
		messages   []string
	}{
		{
			name:       "valid",
			coordinate: NewCoordinate(mustDegrees(t, "10"), mustDegrees(t, "20")),
		},
		{
			name:       "missing both",
			coordinate: Coordinate{},
			messages:   []string{"latitude must not be null", "longitude must not be null"},
		},
		{
			name:       "latitude too small",
			coordinate: NewCoordinate(mustDegrees(t, "-90.0001"), mustDegrees(t, "0")),
			messages:   []string{"latitude must be between -90.0 and 90.0"},
		},
		{
			name:       "NaN latitude",
			coordinate: NewCoordinate(DegreesOf(math.NaN()), mustDegrees(t, "0")),
			messages:   []string{"latitude must be between -90.0 and 90.0"},
		},
		{
			name:       "longitude missing",
			coordinate: NewCoordinate(mustDegrees(t, "0"), Degrees{}),
			messages:   []string{"longitude must not be null"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var messages []string
			for _, v := range tt.coordinate.Validate() {
				messages = append(messages, v.Message)
			}
			assert.Equal(t, tt.messages, messages)
			assert.Equal(t, len(tt.messages) == 0, tt.coordinate.IsValid())
		})
	}
}

// TestCoordinate_Equality tests value comparison
func TestCoordinate_Equality(t *testing.T) {
	a, err := ParseCoordinate("53.2451022", "-6.238335")
	require.NoError(t, err)
	b, err := ParseCoordinate("53.2451022", "-6.238335")
	require.NoError(t, err)

	assert.True(t, a == b)
	assert.Equal(t, a, b)
}

// TestCoordinate_StringMissing tests rendering of absent components
func TestCoordinate_StringMissing(t *testing.T) {
	assert.Equal(t, "Coordinate(latitude=null, longitude=null)", Coordinate{}.String())
}
