package related

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/contentd/internal/domain"
	domrel "github.com/kailas-cloud/contentd/internal/domain/related"
)

// Service resolves a bounded, deduplicated, ordered list of related records.
// Curated relations reflect editorial intent and take priority; category
// suggestions fill the remainder only when curation is insufficient.
type Service struct {
	repo Repository
}

// New creates a related-content service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Resolve returns up to q.Limit() records, never containing the source and
// never containing a duplicate id.
//
// Tier 1 looks up the explicit ids in their curated order. Tier 2, reached
// only when tier 1 falls short and a primary category is known, fetches
// 3×need recency-ordered candidates and keeps those whose first taxonomy
// label equals the primary category. If fewer than need survive, the result
// is simply shorter than the limit: one bounded fetch per tier, no retries.
func (s *Service) Resolve(ctx context.Context, entityName string, q domrel.Query) ([]domain.Record, error) {
	selected := make([]domain.Record, 0, q.Limit())
	selectedIDs := map[string]struct{}{q.SourceID(): {}}

	if len(q.ExplicitIDs()) > 0 {
		curated, err := s.repo.GetMany(ctx, entityName, q.ExplicitIDs())
		if err != nil {
			return nil, fmt.Errorf("fetch curated relations: %w", err)
		}
		for _, rec := range curated {
			if len(selected) >= q.Limit() {
				break
			}
			if _, dup := selectedIDs[rec.ID()]; dup {
				continue
			}
			selectedIDs[rec.ID()] = struct{}{}
			selected = append(selected, rec)
		}
	}

	if len(selected) < q.Limit() && q.PrimaryCategory() != "" {
		need := q.Limit() - len(selected)

		exclude := make([]string, 0, len(selectedIDs))
		for id := range selectedIDs {
			exclude = append(exclude, id)
		}

		candidates, err := s.repo.Recent(ctx, entityName, exclude, domrel.OverfetchFactor*need)
		if err != nil {
			return nil, fmt.Errorf("fetch category candidates: %w", err)
		}

		taken := 0
		for _, rec := range candidates {
			if taken >= need {
				break
			}
			primary, ok := rec.PrimaryCategory()
			if !ok || primary != q.PrimaryCategory() {
				continue
			}
			if _, dup := selectedIDs[rec.ID()]; dup {
				continue
			}
			selectedIDs[rec.ID()] = struct{}{}
			selected = append(selected, rec)
			taken++
		}
	}

	// Final invariant check, not a correctness assumption.
	if len(selected) > q.Limit() {
		selected = selected[:q.Limit()]
	}
	return selected, nil
}
