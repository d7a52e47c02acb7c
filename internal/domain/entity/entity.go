// Package entity holds the static per-entity query configuration: field
// allow-lists, default sort, page size bounds, and the closed status
// enumeration. One generic listing engine is parametrized by these configs
// instead of one handler per entity.
package entity

import (
	"fmt"
	"sort"

	"github.com/kailas-cloud/contentd/internal/domain"
	"github.com/kailas-cloud/contentd/internal/domain/status"
)

// Page size bounds shared by all entities unless overridden.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Config is the query configuration for one entity type (immutable value object).
type Config struct {
	name         string
	searchable   []string
	filterable   map[string]struct{}
	sortable     map[string]struct{}
	defaultSort  string
	defaultLimit int
	maxLimit     int
	statuses     status.Set
}

func newConfig(
	name string, searchable, filterable, sortable []string,
	defaultSort string, statuses status.Set,
) Config {
	return Config{
		name:         name,
		searchable:   searchable,
		filterable:   toSet(filterable),
		sortable:     toSet(sortable),
		defaultSort:  defaultSort,
		defaultLimit: DefaultPageSize,
		maxLimit:     MaxPageSize,
		statuses:     statuses,
	}
}

// Name returns the entity type name.
func (c Config) Name() string { return c.name }

// SearchableFields returns the fields matched by free-text search.
func (c Config) SearchableFields() []string { return c.searchable }

// Filterable reports whether a field accepts exact-match filters.
func (c Config) Filterable(field string) bool {
	_, ok := c.filterable[field]
	return ok
}

// Sortable reports whether a field is in the sort allow-list.
func (c Config) Sortable(field string) bool {
	_, ok := c.sortable[field]
	return ok
}

// FilterableFields returns the filter allow-list, sorted.
func (c Config) FilterableFields() []string { return sortedKeys(c.filterable) }

// SortableFields returns the sort allow-list, sorted.
func (c Config) SortableFields() []string { return sortedKeys(c.sortable) }

// DefaultSort returns the fallback sort field.
func (c Config) DefaultSort() string { return c.defaultSort }

// DefaultLimit returns the page size used when none is requested.
func (c Config) DefaultLimit() int { return c.defaultLimit }

// MaxLimit returns the page size ceiling.
func (c Config) MaxLimit() int { return c.maxLimit }

// Statuses returns the entity's closed status enumeration.
func (c Config) Statuses() status.Set { return c.statuses }

// Registry maps entity type names to their configurations.
type Registry struct {
	configs map[string]Config
}

// NewRegistry creates the registry of all served entity types.
func NewRegistry() *Registry {
	configs := make(map[string]Config)
	for _, c := range builtinConfigs() {
		configs[c.Name()] = c
	}
	return &Registry{configs: configs}
}

// WithPageSizes overrides the default and maximum page size for every entity.
func (r *Registry) WithPageSizes(defaultLimit, maxLimit int) *Registry {
	for name, c := range r.configs {
		if defaultLimit > 0 {
			c.defaultLimit = defaultLimit
		}
		if maxLimit > 0 {
			c.maxLimit = maxLimit
		}
		r.configs[name] = c
	}
	return r
}

// Get returns the configuration for an entity type.
func (r *Registry) Get(name string) (Config, error) {
	c, ok := r.configs[name]
	if !ok {
		return Config{}, fmt.Errorf("entity %q: %w", name, domain.ErrUnknownEntity)
	}
	return c, nil
}

// Names returns all registered entity type names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.configs))
	for name := range r.configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StatusSets returns the per-entity status enumerations (guard construction).
func (r *Registry) StatusSets() map[string]status.Set {
	sets := make(map[string]status.Set, len(r.configs))
	for name, c := range r.configs {
		sets[name] = c.statuses
	}
	return sets
}

// builtinConfigs declares every entity served by the admin dashboards and
// public listing pages.
func builtinConfigs() []Config {
	return []Config{
		newConfig("blog",
			[]string{"title", "excerpt", "content", "author"},
			[]string{"status", "category", "author"},
			[]string{"createdAt", "publishedAt", "title"},
			"createdAt",
			status.NewSet("draft", "scheduled", "published", "archived"),
		),
		newConfig("model",
			[]string{"name", "description", "provider"},
			[]string{"status", "type", "provider"},
			[]string{"createdAt", "name"},
			"createdAt",
			status.NewSet("active", "inactive"),
		),
		newConfig("career",
			[]string{"name", "email", "position"},
			[]string{"status", "position"},
			[]string{"createdAt", "name"},
			"createdAt",
			status.NewSet("applied", "reviewed", "shortlisted", "rejected", "hired"),
		),
		newConfig("quotation",
			[]string{"name", "email", "company", "message"},
			[]string{"status", "service"},
			[]string{"createdAt"},
			"createdAt",
			status.NewSet("new", "reviewed", "quoted", "accepted", "rejected", "archived"),
		),
		newConfig("testimonial",
			[]string{"author", "company", "quote"},
			[]string{"status", "brand"},
			[]string{"createdAt", "author"},
			"createdAt",
			status.NewSet("pending", "approved", "rejected", "archived"),
		),
		newConfig("subscriber",
			[]string{"email"},
			[]string{"status", "source"},
			[]string{"createdAt", "email"},
			"createdAt",
			status.NewSet("active", "unsubscribed", "bounced"),
		),
		newConfig("feedback",
			[]string{"name", "email", "message"},
			[]string{"status", "topic"},
			[]string{"createdAt"},
			"createdAt",
			status.NewSet("new", "read", "replied", "archived"),
		),
		newConfig("brand",
			[]string{"name"},
			[]string{"status", "industry"},
			[]string{"createdAt", "name"},
			"createdAt",
			status.NewSet("active", "inactive"),
		),
	}
}

func toSet(fields []string) map[string]struct{} {
	s := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		s[f] = struct{}{}
	}
	return s
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
