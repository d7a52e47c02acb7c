// Package record persists entity records in Redis: one hash per record, a
// set of ids per collection, and a recency-scored sorted set backing the
// most-recent-first reads of the related-content resolver.
package record

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/contentd/internal/domain"
)

// store is the consumer interface for records (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	SAdd(ctx context.Context, key string, members ...string) error
	SRem(ctx context.Context, key string, members ...string) error
	SMembers(ctx context.Context, key string) ([]string, error)
	ZAdd(ctx context.Context, key string, score float64, member string) error
	ZRem(ctx context.Context, key string, members ...string) error
	ZRevRange(ctx context.Context, key string, start, stop int64) ([]string, error)
}

// Repo implements the record storage contracts of the listing, facet,
// related, and content use cases.
type Repo struct {
	store  store
	prefix string
}

// New creates a record repository. prefix namespaces all keys.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

func (r *Repo) recKey(entity, id string) string { return r.prefix + "rec:" + entity + ":" + id }
func (r *Repo) idsKey(entity string) string     { return r.prefix + "ids:" + entity }
func (r *Repo) recencyKey(entity string) string { return r.prefix + "recency:" + entity }

// Insert stores a new record. Returns domain.ErrAlreadyExists for a taken id.
func (r *Repo) Insert(ctx context.Context, entityName string, rec *domain.Record) error {
	key := r.recKey(entityName, rec.ID())

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if exists {
		return fmt.Errorf("record %s: %w", rec.ID(), domain.ErrAlreadyExists)
	}

	if err := r.writeRecord(ctx, entityName, rec); err != nil {
		return err
	}
	if err := r.store.SAdd(ctx, r.idsKey(entityName), rec.ID()); err != nil {
		return fmt.Errorf("register id %s: %w", rec.ID(), err)
	}
	if err := r.store.ZAdd(ctx, r.recencyKey(entityName), float64(rec.CreatedAt()), rec.ID()); err != nil {
		return fmt.Errorf("index recency %s: %w", rec.ID(), err)
	}
	return nil
}

// Get returns a record by id.
func (r *Repo) Get(ctx context.Context, entityName, id string) (domain.Record, error) {
	key := r.recKey(entityName, id)
	fields, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return domain.Record{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	// HGETALL on a missing key yields an empty map, not an error.
	if len(fields) == 0 {
		return domain.Record{}, fmt.Errorf("record %s: %w", id, domain.ErrRecordNotFound)
	}
	return parseHashFields(id, fields)
}

// Update replaces an existing record's fields.
func (r *Repo) Update(ctx context.Context, entityName string, rec *domain.Record) error {
	key := r.recKey(entityName, rec.ID())

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return fmt.Errorf("record %s: %w", rec.ID(), domain.ErrRecordNotFound)
	}

	// HSET merges fields, so clear the hash first to drop removed ones.
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("clear %s: %w", key, err)
	}
	return r.writeRecord(ctx, entityName, rec)
}

// Delete removes a record and its index entries.
func (r *Repo) Delete(ctx context.Context, entityName, id string) error {
	key := r.recKey(entityName, id)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return fmt.Errorf("record %s: %w", id, domain.ErrRecordNotFound)
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	if err := r.store.SRem(ctx, r.idsKey(entityName), id); err != nil {
		return fmt.Errorf("unregister id %s: %w", id, err)
	}
	if err := r.store.ZRem(ctx, r.recencyKey(entityName), id); err != nil {
		return fmt.Errorf("unindex recency %s: %w", id, err)
	}
	return nil
}

// All returns every record of a collection.
func (r *Repo) All(ctx context.Context, entityName string) ([]domain.Record, error) {
	ids, err := r.store.SMembers(ctx, r.idsKey(entityName))
	if err != nil {
		return nil, fmt.Errorf("list ids %s: %w", entityName, err)
	}
	return r.fetchByIDs(ctx, entityName, ids)
}

// GetMany returns the records for the given ids, preserving input order and
// skipping ids no longer present.
func (r *Repo) GetMany(ctx context.Context, entityName string, ids []string) ([]domain.Record, error) {
	return r.fetchByIDs(ctx, entityName, ids)
}

// Recent returns up to limit records by descending creation time, skipping
// the excluded ids.
func (r *Repo) Recent(ctx context.Context, entityName string, exclude []string, limit int) ([]domain.Record, error) {
	if limit <= 0 {
		return nil, nil
	}

	excluded := make(map[string]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}

	// Fetch enough extra entries to survive the exclusion filter.
	stop := int64(limit+len(exclude)) - 1
	ids, err := r.store.ZRevRange(ctx, r.recencyKey(entityName), 0, stop)
	if err != nil {
		return nil, fmt.Errorf("recency range %s: %w", entityName, err)
	}

	kept := make([]string, 0, limit)
	for _, id := range ids {
		if _, skip := excluded[id]; skip {
			continue
		}
		kept = append(kept, id)
		if len(kept) == limit {
			break
		}
	}
	return r.fetchByIDs(ctx, entityName, kept)
}

func (r *Repo) writeRecord(ctx context.Context, entityName string, rec *domain.Record) error {
	fields, err := buildHashFields(rec)
	if err != nil {
		return fmt.Errorf("flatten record %s: %w", rec.ID(), err)
	}
	if err := r.store.HSet(ctx, r.recKey(entityName, rec.ID()), fields); err != nil {
		return fmt.Errorf("hset %s: %w", rec.ID(), err)
	}
	return nil
}

func (r *Repo) fetchByIDs(ctx context.Context, entityName string, ids []string) ([]domain.Record, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.recKey(entityName, id)
	}

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("fetch records %s: %w", entityName, err)
	}

	records := make([]domain.Record, 0, len(ids))
	for i, fields := range hashes {
		// Stale references are silently skipped.
		if len(fields) == 0 {
			continue
		}
		rec, err := parseHashFields(ids[i], fields)
		if err != nil {
			return nil, fmt.Errorf("parse record %s: %w", ids[i], err)
		}
		records = append(records, rec)
	}
	return records, nil
}
