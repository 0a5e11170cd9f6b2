package domain

// CustomerRecord is the flat shape of one input line.
// Any field may be absent.
type CustomerRecord struct {
	UserID    *int64
	Name      *string
	Latitude  Degrees
	Longitude Degrees
}
