package driving

import "github.com/custodia-labs/nearby/internal/core/domain"

// CustomerService answers range questions about customers.
type CustomerService interface {
	// IsWithinRange validates c and reports whether it lies within
	// radiusMeters (inclusive) of target.
	// Returns a *domain.ValidationError for an invalid customer.
	IsWithinRange(c domain.Customer, target domain.Coordinate, radiusMeters float64) (bool, error)

	// FindWithinRange keeps the customers within radiusMeters of target,
	// in input order. Invalid customers are skipped.
	// Returns domain.ErrNegativeRadius or a *domain.ValidationError for
	// unusable arguments before any customer is examined.
	FindWithinRange(customers []domain.Customer, target domain.Coordinate, radiusMeters float64) ([]domain.Customer, error)
}
