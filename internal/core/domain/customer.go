package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Customer is a customer entity with a location.
// Fields may be missing; Validate reports what is wrong before the
// customer takes part in a distance check.
type Customer struct {
	UserID   *int64
	Name     *string
	Location Coordinate
}

// NewCustomer builds a customer with every field present.
func NewCustomer(userID int64, name string, location Coordinate) Customer {
	return Customer{UserID: &userID, Name: &name, Location: location}
}

// Validate checks the customer and its location as a unit.
// Violations are ordered by path.
func (c Customer) Validate() []Violation {
	var violations []Violation

	if c.UserID == nil {
		violations = append(violations, Violation{Path: "userId", Message: "user ID must not be null"})
	}
	if c.Name == nil || strings.TrimSpace(*c.Name) == "" {
		violations = append(violations, Violation{Path: "name", Message: "name must not be blank"})
	}
	violations = append(violations, prefixed("location", c.Location.Validate())...)

	SortViolations(violations)
	return violations
}

// String renders the customer as
// Customer(userId=<id>, name=<name>, location=Coordinate(...)).
func (c Customer) String() string {
	id := "null"
	if c.UserID != nil {
		id = strconv.FormatInt(*c.UserID, 10)
	}
	name := "null"
	if c.Name != nil {
		name = *c.Name
	}
	return fmt.Sprintf("Customer(userId=%s, name=%s, location=%s)", id, name, c.Location)
}
