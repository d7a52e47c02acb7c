// Package facet derives the distinct values a field takes across a
// collection, for filter-menu population. Facets are not used to validate
// filter input: a filter for a value outside the facet set simply matches
// nothing.
package facet

import (
	"context"
	"fmt"
	"sort"

	"github.com/kailas-cloud/contentd/internal/domain"
	"github.com/kailas-cloud/contentd/internal/domain/entity"
)

// Service derives distinct field values per entity collection.
type Service struct {
	repo     Repository
	registry *entity.Registry
}

// New creates a facet service.
func New(repo Repository, registry *entity.Registry) *Service {
	return &Service{repo: repo, registry: registry}
}

// Distinct returns every value the field takes across the collection,
// excluding absent/empty values, sorted ascending. The field must be in the
// entity's filter allow-list.
func (s *Service) Distinct(ctx context.Context, entityName, field string) ([]string, error) {
	cfg, err := s.registry.Get(entityName)
	if err != nil {
		return nil, fmt.Errorf("get entity config: %w", err)
	}
	if !cfg.Filterable(field) {
		return nil, fmt.Errorf("field %q is not filterable on %s: %w", field, entityName, domain.ErrUnknownField)
	}

	records, err := s.repo.All(ctx, entityName)
	if err != nil {
		return nil, fmt.Errorf("read collection: %w", err)
	}

	seen := make(map[string]struct{})
	for _, rec := range records {
		for _, v := range fieldValues(&rec, field) {
			if v == "" {
				continue
			}
			seen[v] = struct{}{}
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values, nil
}

// fieldValues returns the record's values for a facet field. The category
// facet spans all taxonomy labels, every other field is a single text value.
func fieldValues(rec *domain.Record, field string) []string {
	if field == "category" {
		return rec.Categories()
	}
	if v, ok := rec.Text(field); ok {
		return []string{v}
	}
	return nil
}
