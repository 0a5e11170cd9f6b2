package driving

import (
	"context"
	"iter"

	"github.com/custodia-labs/nearby/internal/core/domain"
)

// NearbyService runs the whole ingestion and filter pipeline.
type NearbyService interface {
	// Find reads query.InputFile and yields the customers within range of
	// query.Target, ordered by user ID ascending.
	// Setup failures are returned before anything is read or yielded;
	// malformed lines and invalid customers are skipped.
	Find(ctx context.Context, query domain.NearbyQuery) (iter.Seq[domain.Customer], error)
}
