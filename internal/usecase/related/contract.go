package related

import (
	"context"

	"github.com/kailas-cloud/contentd/internal/domain"
)

// Repository reads records for related-content resolution.
type Repository interface {
	// GetMany returns the records for the given ids, preserving input order.
	// Ids no longer present in the collection are skipped, not errors.
	GetMany(ctx context.Context, entityName string, ids []string) ([]domain.Record, error)

	// Recent returns up to limit records ordered most recent first, skipping
	// the excluded ids.
	Recent(ctx context.Context, entityName string, exclude []string, limit int) ([]domain.Record, error)
}
