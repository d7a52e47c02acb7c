// Package content is the CRUD layer the admin dashboards sit on. Writes that
// carry a status value pass the status guard before they reach the store.
package content

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/contentd/internal/domain"
	"github.com/kailas-cloud/contentd/internal/domain/entity"
	"github.com/kailas-cloud/contentd/internal/domain/status"
)

// Service handles record CRUD and guarded status updates.
type Service struct {
	repo     Repository
	registry *entity.Registry
	guard    *status.Guard
}

// New creates a content service.
func New(repo Repository, registry *entity.Registry, guard *status.Guard) *Service {
	return &Service{repo: repo, registry: registry, guard: guard}
}

// Create stores a new record with a generated id. A missing status defaults
// to the first value of the entity's enumeration.
func (s *Service) Create(ctx context.Context, entityName string, in Input) (domain.Record, error) {
	cfg, err := s.registry.Get(entityName)
	if err != nil {
		return domain.Record{}, fmt.Errorf("get entity config: %w", err)
	}

	texts := in.Texts
	if texts[domain.FieldStatus] == "" && !cfg.Statuses().IsEmpty() {
		if texts == nil {
			texts = make(map[string]string, 1)
		}
		texts[domain.FieldStatus] = string(cfg.Statuses().Values()[0])
	}
	if err := s.checkStatus(entityName, texts[domain.FieldStatus]); err != nil {
		return domain.Record{}, err
	}

	rec, err := domain.New(
		uuid.NewString(), texts, in.Numerics, in.Categories, in.Tags, in.Related, time.Now().UnixMilli(),
	)
	if err != nil {
		return domain.Record{}, fmt.Errorf("build record: %w", err)
	}

	if err := s.repo.Insert(ctx, entityName, &rec); err != nil {
		return domain.Record{}, fmt.Errorf("insert record: %w", err)
	}
	return rec, nil
}

// Get retrieves a record by id.
func (s *Service) Get(ctx context.Context, entityName, id string) (domain.Record, error) {
	if _, err := s.registry.Get(entityName); err != nil {
		return domain.Record{}, fmt.Errorf("get entity config: %w", err)
	}
	rec, err := s.repo.Get(ctx, entityName, id)
	if err != nil {
		return domain.Record{}, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

// Update replaces a record's writable fields, keeping id and creation time.
// A missing status keeps the stored one.
func (s *Service) Update(ctx context.Context, entityName, id string, in Input) (domain.Record, error) {
	if _, err := s.registry.Get(entityName); err != nil {
		return domain.Record{}, fmt.Errorf("get entity config: %w", err)
	}

	existing, err := s.repo.Get(ctx, entityName, id)
	if err != nil {
		return domain.Record{}, fmt.Errorf("get record: %w", err)
	}

	texts := in.Texts
	if texts[domain.FieldStatus] == "" && existing.Status() != "" {
		if texts == nil {
			texts = make(map[string]string, 1)
		}
		texts[domain.FieldStatus] = existing.Status()
	}
	if err := s.checkStatus(entityName, texts[domain.FieldStatus]); err != nil {
		return domain.Record{}, err
	}

	rec, err := domain.New(id, texts, in.Numerics, in.Categories, in.Tags, in.Related, existing.CreatedAt())
	if err != nil {
		return domain.Record{}, fmt.Errorf("build record: %w", err)
	}

	if err := s.repo.Update(ctx, entityName, &rec); err != nil {
		return domain.Record{}, fmt.Errorf("update record: %w", err)
	}
	return rec, nil
}

// Delete removes a record.
func (s *Service) Delete(ctx context.Context, entityName, id string) error {
	if _, err := s.registry.Get(entityName); err != nil {
		return fmt.Errorf("get entity config: %w", err)
	}
	if err := s.repo.Delete(ctx, entityName, id); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

// UpdateStatus sets a record's status after the guard accepts the value.
// An invalid value never reaches the store. The write itself is
// last-write-wins; a concurrent delete surfaces as not-found.
func (s *Service) UpdateStatus(ctx context.Context, entityName, id, value string) (domain.Record, error) {
	if _, err := s.registry.Get(entityName); err != nil {
		return domain.Record{}, fmt.Errorf("get entity config: %w", err)
	}
	if err := s.checkStatus(entityName, value); err != nil {
		return domain.Record{}, err
	}

	existing, err := s.repo.Get(ctx, entityName, id)
	if err != nil {
		return domain.Record{}, fmt.Errorf("get record: %w", err)
	}

	updated := existing.WithText(domain.FieldStatus, value)
	if err := s.repo.Update(ctx, entityName, &updated); err != nil {
		return domain.Record{}, fmt.Errorf("update record: %w", err)
	}
	return updated, nil
}

func (s *Service) checkStatus(entityName, value string) error {
	if value == "" {
		return nil
	}
	if !s.guard.Validate(entityName, status.Value(value)) {
		allowed, _ := s.guard.Allowed(entityName)
		return domain.NewInvalidStatus(entityName, value, allowed.Strings())
	}
	return nil
}
