package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Degrees is a decimal angle as read from input.
// It keeps the text it was parsed from so values render exactly as given.
// The zero value is absent.
type Degrees struct {
	text  string
	value float64
	set   bool
}

// ParseDegrees parses a decimal string.
// Empty or non-numeric text, NaN and infinities are rejected with ErrNotANumber.
func ParseDegrees(text string) (Degrees, error) {
	text = strings.TrimSpace(text)
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Degrees{}, fmt.Errorf("%w: %q", ErrNotANumber, text)
	}
	return Degrees{text: text, value: v, set: true}, nil
}

// DegreesOf wraps a float64. Special values are kept as-is; they are
// rejected later by validation rather than here.
func DegreesOf(v float64) Degrees {
	return Degrees{text: strconv.FormatFloat(v, 'f', -1, 64), value: v, set: true}
}

// IsSet reports whether a value is present.
func (d Degrees) IsSet() bool {
	return d.set
}

// Float64 returns the numeric value, or 0 when absent.
func (d Degrees) Float64() float64 {
	return d.value
}

// String returns the original text, or "null" when absent.
func (d Degrees) String() string {
	if !d.set {
		return "null"
	}
	return d.text
}

// within reports whether the value lies in [-limit, limit].
// NaN is never within range.
func (d Degrees) within(limit float64) bool {
	return d.value >= -limit && d.value <= limit
}
