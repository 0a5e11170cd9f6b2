package wire

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/custodia-labs/nearby/internal/core/domain"
)

// Wire keys.
const (
	KeyUserID    = "user_id"
	KeyName      = "name"
	KeyLatitude  = "latitude"
	KeyLongitude = "longitude"
)

// Fields is the raw text of each recognised key.
// A nil field was missing or null.
type Fields struct {
	UserID    *string
	Name      *string
	Latitude  *string
	Longitude *string
}

// IsBlank reports whether a line has no content.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Record converts the raw text into a record.
// Numeric fields holding non-numeric text are errors; missing fields stay absent.
func (f Fields) Record() (domain.CustomerRecord, error) {
	var record domain.CustomerRecord

	if f.UserID != nil {
		id, err := parseUserID(*f.UserID)
		if err != nil {
			return domain.CustomerRecord{}, fmt.Errorf("%s: %w: %q", KeyUserID, domain.ErrNotANumber, *f.UserID)
		}
		record.UserID = &id
	}

	if f.Name != nil {
		name := *f.Name
		record.Name = &name
	}

	if f.Latitude != nil {
		lat, err := domain.ParseDegrees(*f.Latitude)
		if err != nil {
			return domain.CustomerRecord{}, fmt.Errorf("%s: %w", KeyLatitude, err)
		}
		record.Latitude = lat
	}

	if f.Longitude != nil {
		lon, err := domain.ParseDegrees(*f.Longitude)
		if err != nil {
			return domain.CustomerRecord{}, fmt.Errorf("%s: %w", KeyLongitude, err)
		}
		record.Longitude = lon
	}

	return record, nil
}

// parseUserID accepts an integer, or a decimal with no fractional part
// such as "12.0" or "1e3". Fractional and out-of-range values are errors.
func parseUserID(text string) (int64, error) {
	text = strings.TrimSpace(text)
	if id, err := strconv.ParseInt(text, 10, 64); err == nil {
		return id, nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, strconv.ErrRange
	}
	return int64(f), nil
}
