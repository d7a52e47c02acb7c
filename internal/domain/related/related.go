// Package related defines the related-content query value object. Resolution
// runs two ordered tiers: explicit curated relations first, then a
// same-primary-category fallback over the most recent records.
package related

import "fmt"

// Related result limits.
const (
	DefaultLimit = 6
	MaxLimit     = 12
	// OverfetchFactor is how many recency-ordered candidates are requested per
	// needed result in the category fallback tier. The store cannot query on
	// the first element of the taxonomy, so candidates are filtered in memory
	// and most are expected to be rejected.
	OverfetchFactor = 3
)

// Query is a validated related-content request.
type Query struct {
	sourceID        string
	explicitIDs     []string
	primaryCategory string
	limit           int
}

// NewQuery validates and normalizes related request parameters.
// Limit defaults to 6 and is clamped to [1, 12].
func NewQuery(sourceID string, explicitIDs []string, primaryCategory string, limit int) (Query, error) {
	if sourceID == "" {
		return Query{}, fmt.Errorf("source ID is required")
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	ids := make([]string, 0, len(explicitIDs))
	for _, id := range explicitIDs {
		if id != "" {
			ids = append(ids, id)
		}
	}

	return Query{
		sourceID:        sourceID,
		explicitIDs:     ids,
		primaryCategory: primaryCategory,
		limit:           limit,
	}, nil
}

// SourceID returns the record the relations are computed for.
func (q *Query) SourceID() string { return q.sourceID }

// ExplicitIDs returns the curated related ids in editorial order.
func (q *Query) ExplicitIDs() []string { return q.explicitIDs }

// PrimaryCategory returns the category used by the fallback tier
// (empty means the fallback is skipped).
func (q *Query) PrimaryCategory() string { return q.primaryCategory }

// Limit returns the maximum result length.
func (q *Query) Limit() int { return q.limit }
