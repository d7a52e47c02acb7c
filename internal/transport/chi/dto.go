package chi

import (
	"github.com/kailas-cloud/contentd/internal/domain"
	contentuc "github.com/kailas-cloud/contentd/internal/usecase/content"
	healthuc "github.com/kailas-cloud/contentd/internal/usecase/health"
)

// recordRequest is the create/update request body.
type recordRequest struct {
	Fields     map[string]string  `json:"fields"`
	Numerics   map[string]float64 `json:"numerics,omitempty"`
	Categories []string           `json:"categories,omitempty"`
	Tags       []string           `json:"tags,omitempty"`
	Related    []string           `json:"related,omitempty"`
}

func (r recordRequest) toInput() contentuc.Input {
	return contentuc.Input{
		Texts:      r.Fields,
		Numerics:   r.Numerics,
		Categories: r.Categories,
		Tags:       r.Tags,
		Related:    r.Related,
	}
}

// statusRequest is the status update request body.
type statusRequest struct {
	Status string `json:"status"`
}

// recordPayload is the record response shape.
type recordPayload struct {
	ID         string             `json:"id"`
	Fields     map[string]string  `json:"fields,omitempty"`
	Numerics   map[string]float64 `json:"numerics,omitempty"`
	Categories []string           `json:"categories,omitempty"`
	Tags       []string           `json:"tags,omitempty"`
	Related    []string           `json:"related,omitempty"`
	CreatedAt  int64              `json:"createdAt"`
}

func recordToPayload(rec *domain.Record) recordPayload {
	return recordPayload{
		ID:         rec.ID(),
		Fields:     rec.Texts(),
		Numerics:   rec.Numerics(),
		Categories: rec.Categories(),
		Tags:       rec.Tags(),
		Related:    rec.Related(),
		CreatedAt:  rec.CreatedAt(),
	}
}

func recordsToPayload(records []domain.Record) []recordPayload {
	out := make([]recordPayload, len(records))
	for i := range records {
		out[i] = recordToPayload(&records[i])
	}
	return out
}

// paginationPayload mirrors the page metadata of a list response.
type paginationPayload struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type listResponse struct {
	Items      []recordPayload   `json:"items"`
	Pagination paginationPayload `json:"pagination"`
}

// healthPayload is the /health response shape.
type healthPayload struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func checksToPayload(checks map[string]healthuc.CheckResult) map[string]string {
	out := make(map[string]string, len(checks))
	for k, v := range checks {
		out[k] = string(v)
	}
	return out
}
