package record

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/kailas-cloud/contentd/internal/domain"
)

// Hash layout: text fields are stored under "t:<name>", numeric fields under
// "n:<name>"; taxonomy, tags, and creation time use reserved keys. Prefixes
// keep field types unambiguous without guessing from the value.
const (
	textPrefix    = "t:"
	numericPrefix = "n:"
	keyCategories = "__categories"
	keyTags       = "__tags"
	keyRelated    = "__related"
	keyCreated    = "__created"
)

// buildHashFields converts a domain Record into a flat map[string]string for HSET.
func buildHashFields(rec *domain.Record) (map[string]string, error) {
	m := make(map[string]string, 3+len(rec.Texts())+len(rec.Numerics()))
	for k, v := range rec.Texts() {
		m[textPrefix+k] = v
	}
	for k, v := range rec.Numerics() {
		m[numericPrefix+k] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	if len(rec.Categories()) > 0 {
		data, err := json.Marshal(rec.Categories())
		if err != nil {
			return nil, fmt.Errorf("marshal categories: %w", err)
		}
		m[keyCategories] = string(data)
	}
	if len(rec.Tags()) > 0 {
		data, err := json.Marshal(rec.Tags())
		if err != nil {
			return nil, fmt.Errorf("marshal tags: %w", err)
		}
		m[keyTags] = string(data)
	}
	if len(rec.Related()) > 0 {
		data, err := json.Marshal(rec.Related())
		if err != nil {
			return nil, fmt.Errorf("marshal related ids: %w", err)
		}
		m[keyRelated] = string(data)
	}
	m[keyCreated] = strconv.FormatInt(rec.CreatedAt(), 10)
	return m, nil
}

// parseHashFields converts a flat hash map back into a domain Record.
func parseHashFields(id string, m map[string]string) (domain.Record, error) {
	texts := make(map[string]string)
	numerics := make(map[string]float64)
	var categories, tags, related []string
	var createdAt int64

	for k, v := range m {
		switch {
		case strings.HasPrefix(k, textPrefix):
			texts[strings.TrimPrefix(k, textPrefix)] = v
		case strings.HasPrefix(k, numericPrefix):
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return domain.Record{}, fmt.Errorf("numeric field %s: %w", k, err)
			}
			numerics[strings.TrimPrefix(k, numericPrefix)] = f
		case k == keyCategories:
			if err := json.Unmarshal([]byte(v), &categories); err != nil {
				return domain.Record{}, fmt.Errorf("unmarshal categories: %w", err)
			}
		case k == keyTags:
			if err := json.Unmarshal([]byte(v), &tags); err != nil {
				return domain.Record{}, fmt.Errorf("unmarshal tags: %w", err)
			}
		case k == keyRelated:
			if err := json.Unmarshal([]byte(v), &related); err != nil {
				return domain.Record{}, fmt.Errorf("unmarshal related ids: %w", err)
			}
		case k == keyCreated:
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return domain.Record{}, fmt.Errorf("created timestamp: %w", err)
			}
			createdAt = n
		}
	}

	return domain.Reconstruct(id, texts, numerics, categories, tags, related, createdAt), nil
}
