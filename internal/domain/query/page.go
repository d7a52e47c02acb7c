package query

import "github.com/kailas-cloud/contentd/internal/domain"

// Page is one slice of a filtered-and-sorted result set.
type Page struct {
	items      []domain.Record
	total      int
	page       int
	limit      int
	totalPages int
}

// NewPage creates a Page. totalPages = ceil(total/limit), 0 iff total is 0.
func NewPage(items []domain.Record, total, page, limit int) Page {
	totalPages := 0
	if total > 0 && limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Page{items: items, total: total, page: page, limit: limit, totalPages: totalPages}
}

// Items returns the records on this page (length ≤ limit).
func (p Page) Items() []domain.Record { return p.items }

// Total returns the number of records matching the query.
func (p Page) Total() int { return p.total }

// Number returns the 1-based page number.
func (p Page) Number() int { return p.page }

// Limit returns the page size the slice was taken with.
func (p Page) Limit() int { return p.limit }

// TotalPages returns the number of pages in the full result set.
func (p Page) TotalPages() int { return p.totalPages }
