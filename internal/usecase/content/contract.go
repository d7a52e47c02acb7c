package content

import (
	"context"

	"github.com/kailas-cloud/contentd/internal/domain"
)

// Repository defines the storage contract for records.
type Repository interface {
	Insert(ctx context.Context, entityName string, rec *domain.Record) error
	Get(ctx context.Context, entityName, id string) (domain.Record, error)
	Update(ctx context.Context, entityName string, rec *domain.Record) error
	Delete(ctx context.Context, entityName, id string) error
}

// Input carries the caller-writable fields of a record.
type Input struct {
	Texts      map[string]string
	Numerics   map[string]float64
	Categories []string
	Tags       []string
	Related    []string
}
