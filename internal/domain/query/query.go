// Package query turns raw, untrusted list parameters into a validated,
// bounded QuerySpec. Invalid input is degraded to safe defaults, never
// rejected: a list request always yields a valid (possibly empty) page.
package query

import (
	"strconv"
	"strings"

	"github.com/kailas-cloud/contentd/internal/domain/entity"
)

// Order is the sort direction.
type Order string

// Sort direction constants.
const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// IsValid checks if the order is one of the supported values.
func (o Order) IsValid() bool { return o == OrderAsc || o == OrderDesc }

// Params are the raw request parameters as they arrive from the query string.
type Params struct {
	Page      string
	Limit     string
	Search    string
	SortBy    string
	SortOrder string
	Filters   map[string]string
}

// Spec is a normalized, bounded list query (immutable value object).
type Spec struct {
	page      int
	limit     int
	search    string
	filters   map[string]string
	sortBy    string
	sortOrder Order
}

// Normalize builds a Spec from raw parameters and an entity configuration.
//
// page < 1 or non-numeric → 1; limit clamped to [1, maxLimit], absent →
// defaultLimit; search trimmed, empty → absent; filter keys outside the
// allow-list dropped silently; sortBy outside the allow-list → default sort;
// sortOrder anything but asc/desc → desc.
func Normalize(p Params, cfg entity.Config) Spec {
	page := parsePositive(p.Page, 1)

	limit := parsePositive(p.Limit, cfg.DefaultLimit())
	if limit > cfg.MaxLimit() {
		limit = cfg.MaxLimit()
	}

	var filters map[string]string
	for k, v := range p.Filters {
		if !cfg.Filterable(k) {
			continue
		}
		if filters == nil {
			filters = make(map[string]string)
		}
		filters[k] = v
	}

	sortBy := p.SortBy
	if !cfg.Sortable(sortBy) {
		sortBy = cfg.DefaultSort()
	}

	order := Order(p.SortOrder)
	if !order.IsValid() {
		order = OrderDesc
	}

	return Spec{
		page:      page,
		limit:     limit,
		search:    strings.TrimSpace(p.Search),
		filters:   filters,
		sortBy:    sortBy,
		sortOrder: order,
	}
}

// parsePositive parses s as a positive integer, falling back to def.
func parsePositive(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	return n
}

// Page returns the 1-based page number.
func (s Spec) Page() int { return s.page }

// Limit returns the page size.
func (s Spec) Limit() int { return s.limit }

// Offset returns the slice start for the requested page.
func (s Spec) Offset() int { return (s.page - 1) * s.limit }

// Search returns the trimmed free-text search (empty means absent).
func (s Spec) Search() string { return s.search }

// HasSearch reports whether a free-text search was requested.
func (s Spec) HasSearch() bool { return s.search != "" }

// Filters returns the exact-match filters (allow-listed keys only).
func (s Spec) Filters() map[string]string { return s.filters }

// SortBy returns the sort field (always in the entity's allow-list).
func (s Spec) SortBy() string { return s.sortBy }

// SortOrder returns the sort direction.
func (s Spec) SortOrder() Order { return s.sortOrder }
