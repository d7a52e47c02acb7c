package domain

import (
	"fmt"
	"regexp"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Well-known record field names.
const (
	FieldStatus    = "status"
	FieldCreatedAt = "createdAt"
)

// Record is a persisted content entity (immutable value object).
// Text fields carry searchable and exact-filterable values (title, status,
// author, ...), numeric fields carry ordinal values (publishedAt, rating).
// Categories are the ordered taxonomy; the first entry is the primary
// category. Related holds the curated related-record ids in editorial order.
type Record struct {
	id         string
	texts      map[string]string
	numerics   map[string]float64
	categories []string
	tags       []string
	related    []string
	createdAt  int64
}

// New validates and creates a Record.
// ID: ^[a-zA-Z0-9_-]+$, 1-256 chars. Field names are validated against the
// entity configuration in the service layer, not here.
func New(
	id string, texts map[string]string, numerics map[string]float64,
	categories, tags, related []string, createdAt int64,
) (Record, error) {
	if id == "" {
		return Record{}, fmt.Errorf("record ID is required: %w", ErrInvalidRecord)
	}
	if len(id) > 256 {
		return Record{}, fmt.Errorf("record ID too long (max 256): %w", ErrInvalidRecord)
	}
	if !idRegex.MatchString(id) {
		return Record{}, fmt.Errorf(
			"record ID must be alphanumeric with underscores and hyphens: %w", ErrInvalidRecord,
		)
	}
	for _, c := range categories {
		if c == "" {
			return Record{}, fmt.Errorf("empty category label: %w", ErrInvalidRecord)
		}
	}

	return Record{
		id:         id,
		texts:      cloneStringMap(texts),
		numerics:   cloneFloat64Map(numerics),
		categories: cloneStrings(categories),
		tags:       cloneStrings(tags),
		related:    cloneStrings(related),
		createdAt:  createdAt,
	}, nil
}

// Reconstruct creates a Record without validation (storage hydration).
func Reconstruct(
	id string, texts map[string]string, numerics map[string]float64,
	categories, tags, related []string, createdAt int64,
) Record {
	return Record{
		id: id, texts: texts, numerics: numerics,
		categories: categories, tags: tags, related: related, createdAt: createdAt,
	}
}

// ID returns the record identifier.
func (r *Record) ID() string { return r.id }

// Texts returns the text fields.
func (r *Record) Texts() map[string]string { return r.texts }

// Numerics returns the numeric fields.
func (r *Record) Numerics() map[string]float64 { return r.numerics }

// Categories returns the ordered taxonomy labels.
func (r *Record) Categories() []string { return r.categories }

// Tags returns the free-form tags.
func (r *Record) Tags() []string { return r.tags }

// Related returns the curated related-record ids in editorial order.
func (r *Record) Related() []string { return r.related }

// CreatedAt returns the creation timestamp (unix millis).
func (r *Record) CreatedAt() int64 { return r.createdAt }

// Text looks up a text field by name.
func (r *Record) Text(field string) (string, bool) {
	v, ok := r.texts[field]
	return v, ok
}

// Status returns the status text field (empty if unset).
func (r *Record) Status() string { return r.texts[FieldStatus] }

// PrimaryCategory returns the first taxonomy label.
func (r *Record) PrimaryCategory() (string, bool) {
	if len(r.categories) == 0 {
		return "", false
	}
	return r.categories[0], true
}

// WithText returns a copy with one text field replaced.
func (r *Record) WithText(field, value string) Record {
	texts := cloneStringMap(r.texts)
	if texts == nil {
		texts = make(map[string]string, 1)
	}
	texts[field] = value
	return Record{
		id: r.id, texts: texts, numerics: r.numerics,
		categories: r.categories, tags: r.tags, related: r.related, createdAt: r.createdAt,
	}
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	c := make(map[string]string, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func cloneFloat64Map(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	c := make(map[string]float64, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	c := make([]string, len(s))
	copy(c, s)
	return c
}
