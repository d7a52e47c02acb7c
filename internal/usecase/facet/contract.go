package facet

import (
	"context"

	"github.com/kailas-cloud/contentd/internal/domain"
)

// Repository reads full entity collections for facet derivation.
type Repository interface {
	All(ctx context.Context, entityName string) ([]domain.Record, error)
}
