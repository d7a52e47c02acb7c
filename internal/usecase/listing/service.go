package listing

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kailas-cloud/contentd/internal/domain"
	"github.com/kailas-cloud/contentd/internal/domain/entity"
	"github.com/kailas-cloud/contentd/internal/domain/query"
)

// Service executes normalized list queries against one entity collection:
// predicate, deterministic sort, page slice.
type Service struct {
	repo     Repository
	registry *entity.Registry
}

// New creates a listing service.
func New(repo Repository, registry *entity.Registry) *Service {
	return &Service{repo: repo, registry: registry}
}

// List normalizes the raw parameters against the entity configuration and
// returns the requested page. A query with no matches returns an empty page,
// not an error.
func (s *Service) List(ctx context.Context, entityName string, params query.Params) (query.Page, error) {
	cfg, err := s.registry.Get(entityName)
	if err != nil {
		return query.Page{}, fmt.Errorf("get entity config: %w", err)
	}

	spec := query.Normalize(params, cfg)

	records, err := s.repo.All(ctx, entityName)
	if err != nil {
		return query.Page{}, fmt.Errorf("read collection: %w", err)
	}

	matched := records[:0:0]
	for _, rec := range records {
		if matches(&rec, spec, cfg) {
			matched = append(matched, rec)
		}
	}

	sortRecords(matched, spec.SortBy(), spec.SortOrder())

	items := slicePage(matched, spec.Offset(), spec.Limit())
	return query.NewPage(items, len(matched), spec.Page(), spec.Limit()), nil
}

// matches applies the search predicate (OR over searchable fields, contains,
// case-insensitive) AND the filter predicate (exact equality per field).
func matches(rec *domain.Record, spec query.Spec, cfg entity.Config) bool {
	if spec.HasSearch() && !matchesSearch(rec, spec.Search(), cfg.SearchableFields()) {
		return false
	}
	for field, value := range spec.Filters() {
		if !matchesFilter(rec, field, value) {
			return false
		}
	}
	return true
}

func matchesSearch(rec *domain.Record, search string, fields []string) bool {
	needle := strings.ToLower(search)
	for _, f := range fields {
		if v, ok := rec.Text(f); ok && strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

// matchesFilter compares one filter against a record field. String fields
// compare case-insensitively, numeric fields after parsing the filter value.
// The category filter matches any taxonomy label. A filter on a field the
// record does not carry matches nothing.
func matchesFilter(rec *domain.Record, field, value string) bool {
	if field == "category" {
		for _, c := range rec.Categories() {
			if strings.EqualFold(c, value) {
				return true
			}
		}
		return false
	}
	if v, ok := rec.Text(field); ok {
		return strings.EqualFold(v, value)
	}
	if n, ok := rec.Numerics()[field]; ok {
		f, err := strconv.ParseFloat(value, 64)
		return err == nil && f == n
	}
	return false
}

// sortRecords orders records by the sort field, ties broken by id ascending
// regardless of direction. Unstable ties would make pagination
// non-idempotent: the same record could land on two different pages across
// two calls.
func sortRecords(records []domain.Record, sortBy string, order query.Order) {
	desc := order == query.OrderDesc
	sort.Slice(records, func(i, j int) bool {
		a, b := &records[i], &records[j]
		cmp := compareByField(a, b, sortBy)
		if cmp == 0 {
			return a.ID() < b.ID()
		}
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

func compareByField(a, b *domain.Record, field string) int {
	if field == domain.FieldCreatedAt {
		return compareInt64(a.CreatedAt(), b.CreatedAt())
	}
	an, aNum := a.Numerics()[field]
	bn, bNum := b.Numerics()[field]
	if aNum || bNum {
		// A record missing the numeric field sorts below every record that has it.
		if !aNum {
			return -1
		}
		if !bNum {
			return 1
		}
		return compareFloat64(an, bn)
	}
	av := strings.ToLower(a.Texts()[field])
	bv := strings.ToLower(b.Texts()[field])
	return strings.Compare(av, bv)
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// slicePage takes the [offset, offset+limit) window; a start past the end
// yields an empty page.
func slicePage(records []domain.Record, offset, limit int) []domain.Record {
	if offset >= len(records) {
		return []domain.Record{}
	}
	end := offset + limit
	if end > len(records) {
		end = len(records)
	}
	return records[offset:end]
}
