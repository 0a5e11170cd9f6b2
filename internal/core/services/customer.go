package services

import (
	"math"

	"github.com/custodia-labs/nearby/internal/core/domain"
	"github.com/custodia-labs/nearby/internal/core/ports/driving"
	"github.com/custodia-labs/nearby/internal/resilient"
)

// Ensure CustomerService implements the interface.
var _ driving.CustomerService = (*CustomerService)(nil)

// CustomerService filters customers by distance to a target.
type CustomerService struct {
	coordinates driving.CoordinateService
}

// NewCustomerService creates a new customer service.
func NewCustomerService(coordinates driving.CoordinateService) *CustomerService {
	return &CustomerService{coordinates: coordinates}
}

// IsWithinRange validates c, then reports whether its great-circle distance
// to target is at most radiusMeters.
func (s *CustomerService) IsWithinRange(c domain.Customer, target domain.Coordinate, radiusMeters float64) (bool, error) {
	if verr := domain.NewValidationError(c.String(), c.Validate()); verr != nil {
		return false, verr
	}
	return s.coordinates.GreatCircleDistanceOnEarthBetween(c.Location, target) <= radiusMeters, nil
}

// FindWithinRange keeps the customers within radiusMeters of target, in input order.
func (s *CustomerService) FindWithinRange(
	customers []domain.Customer,
	target domain.Coordinate,
	radiusMeters float64,
) ([]domain.Customer, error) {
	if err := checkRange(target, radiusMeters); err != nil {
		return nil, err
	}

	return resilient.Filter(customers, func(c domain.Customer) (bool, error) {
		return s.IsWithinRange(c, target, radiusMeters)
	}, false), nil
}

// checkRange rejects a search that could never match anything meaningful.
func checkRange(target domain.Coordinate, radiusMeters float64) error {
	if radiusMeters < 0 || math.IsNaN(radiusMeters) {
		return domain.ErrNegativeRadius
	}
	if verr := domain.NewValidationError(target.String(), target.Validate()); verr != nil {
		return verr
	}
	return nil
}
