package converters

import (
	"github.com/custodia-labs/nearby/internal/core/domain"
	"github.com/custodia-labs/nearby/internal/core/ports/driven"
)

// Ensure CustomerConverter implements the interface.
var _ driven.CustomerConverter = (*CustomerConverter)(nil)

// CustomerConverter converts CustomerRecord values to Customer entities and back.
type CustomerConverter struct{}

// NewCustomerConverter creates a new customer converter.
func NewCustomerConverter() *CustomerConverter {
	return &CustomerConverter{}
}

// ToCustomer converts a record into an entity.
// The coordinate is built unchecked.
func (c *CustomerConverter) ToCustomer(record domain.CustomerRecord) domain.Customer {
	return domain.Customer{
		UserID:   record.UserID,
		Name:     record.Name,
		Location: domain.NewCoordinate(record.Latitude, record.Longitude),
	}
}

// ToRecord converts an entity into its wire shape.
func (c *CustomerConverter) ToRecord(customer domain.Customer) domain.CustomerRecord {
	return domain.CustomerRecord{
		UserID:    customer.UserID,
		Name:      customer.Name,
		Latitude:  customer.Location.Latitude(),
		Longitude: customer.Location.Longitude(),
	}
}
