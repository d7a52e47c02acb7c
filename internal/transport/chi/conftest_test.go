package chi

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/contentd/internal/domain"
	"github.com/kailas-cloud/contentd/internal/domain/entity"
	"github.com/kailas-cloud/contentd/internal/domain/status"
	contentuc "github.com/kailas-cloud/contentd/internal/usecase/content"
	facetuc "github.com/kailas-cloud/contentd/internal/usecase/facet"
	healthuc "github.com/kailas-cloud/contentd/internal/usecase/health"
	listinguc "github.com/kailas-cloud/contentd/internal/usecase/listing"
	relateduc "github.com/kailas-cloud/contentd/internal/usecase/related"
)

// fakeRepo is an in-memory record repository backing all use case contracts.
type fakeRepo struct {
	records map[string]map[string]domain.Record
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string]map[string]domain.Record)}
}

func (f *fakeRepo) seed(entityName string, recs ...domain.Record) {
	col, ok := f.records[entityName]
	if !ok {
		col = make(map[string]domain.Record)
		f.records[entityName] = col
	}
	for _, rec := range recs {
		col[rec.ID()] = rec
	}
}

func (f *fakeRepo) All(_ context.Context, entityName string) ([]domain.Record, error) {
	out := make([]domain.Record, 0, len(f.records[entityName]))
	for _, rec := range f.records[entityName] {
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeRepo) GetMany(_ context.Context, entityName string, ids []string) ([]domain.Record, error) {
	out := make([]domain.Record, 0, len(ids))
	for _, id := range ids {
		if rec, ok := f.records[entityName][id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRepo) Recent(_ context.Context, entityName string, exclude []string, limit int) ([]domain.Record, error) {
	excluded := make(map[string]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}
	all := make([]domain.Record, 0, len(f.records[entityName]))
	for _, rec := range f.records[entityName] {
		if _, skip := excluded[rec.ID()]; skip {
			continue
		}
		all = append(all, rec)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt() != all[j].CreatedAt() {
			return all[i].CreatedAt() > all[j].CreatedAt()
		}
		return all[i].ID() < all[j].ID()
	})
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeRepo) Insert(_ context.Context, entityName string, rec *domain.Record) error {
	if _, ok := f.records[entityName][rec.ID()]; ok {
		return fmt.Errorf("record %s: %w", rec.ID(), domain.ErrAlreadyExists)
	}
	f.seed(entityName, *rec)
	return nil
}

func (f *fakeRepo) Get(_ context.Context, entityName, id string) (domain.Record, error) {
	rec, ok := f.records[entityName][id]
	if !ok {
		return domain.Record{}, fmt.Errorf("record %s: %w", id, domain.ErrRecordNotFound)
	}
	return rec, nil
}

func (f *fakeRepo) Update(_ context.Context, entityName string, rec *domain.Record) error {
	if _, ok := f.records[entityName][rec.ID()]; !ok {
		return fmt.Errorf("record %s: %w", rec.ID(), domain.ErrRecordNotFound)
	}
	f.records[entityName][rec.ID()] = *rec
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, entityName, id string) error {
	if _, ok := f.records[entityName][id]; !ok {
		return fmt.Errorf("record %s: %w", id, domain.ErrRecordNotFound)
	}
	delete(f.records[entityName], id)
	return nil
}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(_ context.Context) error { return f.err }

// newTestRouter wires the real services over the fake repo and mounts them.
func newTestRouter(repo *fakeRepo, pinger *fakePinger) http.Handler {
	registry := entity.NewRegistry()
	guard := status.NewGuard(registry.StatusSets())

	server := NewServer(
		listinguc.New(repo, registry),
		facetuc.New(repo, registry),
		relateduc.New(repo),
		contentuc.New(repo, registry, guard),
		healthuc.New(pinger),
		registry,
		zap.NewNop(),
	)

	r := chi.NewRouter()
	server.Mount(r)
	return r
}

func makeRecord(id string, texts map[string]string, categories, related []string, createdAt int64) domain.Record {
	return domain.Reconstruct(id, texts, nil, categories, nil, related, createdAt)
}
