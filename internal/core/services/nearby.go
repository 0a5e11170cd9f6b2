package services

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"slices"

	"github.com/google/uuid"

	"github.com/custodia-labs/nearby/internal/core/domain"
	"github.com/custodia-labs/nearby/internal/core/ports/driven"
	"github.com/custodia-labs/nearby/internal/core/ports/driving"
	"github.com/custodia-labs/nearby/internal/logger"
	"github.com/custodia-labs/nearby/internal/resilient"
)

// Ensure NearbyService implements the interface.
var _ driving.NearbyService = (*NearbyService)(nil)

// NearbyService reads, decodes, converts, filters and orders customers.
type NearbyService struct {
	reader    driven.LineReader
	decoders  driven.DecoderRegistry
	converter driven.CustomerConverter
	customers driving.CustomerService
}

// NewNearbyService creates a new nearby service.
func NewNearbyService(
	reader driven.LineReader,
	decoders driven.DecoderRegistry,
	converter driven.CustomerConverter,
	customers driving.CustomerService,
) *NearbyService {
	return &NearbyService{
		reader:    reader,
		decoders:  decoders,
		converter: converter,
		customers: customers,
	}
}

// Find runs the pipeline for query.
// Arguments are checked before the input file is touched. Failures after
// that point carry the run ID that tags the verbose diagnostics.
func (s *NearbyService) Find(ctx context.Context, query domain.NearbyQuery) (iter.Seq[domain.Customer], error) {
	runID := uuid.NewString()
	logger.Section("Nearby Search " + runID)

	format := query.Format
	if format == "" {
		format = domain.FormatJSON
	}
	decoder, err := s.decoders.Get(format)
	if err != nil {
		return nil, err
	}
	if err := checkRange(query.Target, query.RadiusMeters); err != nil {
		return nil, err
	}

	logger.Debug("Input: %s (%s)", query.InputFile, format)
	logger.Debug("Target: %s, radius: %gm", query.Target, query.RadiusMeters)

	lines, err := s.reader.ReadLines(ctx, query.InputFile)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	records := resilient.Map(lines, decoder.Decode)
	customers := make([]domain.Customer, len(records))
	for i, r := range records {
		customers[i] = s.converter.ToCustomer(r)
	}

	inRange, err := s.customers.FindWithinRange(customers, query.Target, query.RadiusMeters)
	if err != nil {
		return nil, fmt.Errorf("run %s: filter customers: %w", runID, err)
	}
	SortByUserID(inRange)

	logger.Info("Run %s: %d lines, %d decoded, %d in range", runID, len(lines), len(records), len(inRange))
	return slices.Values(inRange), nil
}

// SortByUserID orders customers by user ID ascending, keeping the input
// order of equal IDs. Customers without an ID sort first.
func SortByUserID(customers []domain.Customer) {
	slices.SortStableFunc(customers, func(a, b domain.Customer) int {
		switch {
		case a.UserID == nil && b.UserID == nil:
			return 0
		case a.UserID == nil:
			return -1
		case b.UserID == nil:
			return 1
		}
		return cmp.Compare(*a.UserID, *b.UserID)
	})
}
