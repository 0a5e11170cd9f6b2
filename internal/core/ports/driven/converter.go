package driven

import "github.com/custodia-labs/nearby/internal/core/domain"

// CustomerConverter maps between wire records and customer entities.
// Both directions are total and perform no validation.
type CustomerConverter interface {
	// ToCustomer converts a decoded record into an entity.
	ToCustomer(record domain.CustomerRecord) domain.Customer

	// ToRecord converts an entity back into its wire shape.
	ToRecord(customer domain.Customer) domain.CustomerRecord
}
