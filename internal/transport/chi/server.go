// Package chi exposes the listing, facet, related-content, and CRUD services
// over HTTP.
package chi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/kailas-cloud/contentd/internal/domain"
	"github.com/kailas-cloud/contentd/internal/domain/entity"
	"github.com/kailas-cloud/contentd/internal/domain/query"
	domrel "github.com/kailas-cloud/contentd/internal/domain/related"
	contentuc "github.com/kailas-cloud/contentd/internal/usecase/content"
	facetuc "github.com/kailas-cloud/contentd/internal/usecase/facet"
	healthuc "github.com/kailas-cloud/contentd/internal/usecase/health"
	listinguc "github.com/kailas-cloud/contentd/internal/usecase/listing"
	relateduc "github.com/kailas-cloud/contentd/internal/usecase/related"
)

// Query parameters reserved by the list endpoint; everything else is treated
// as an exact-match filter candidate.
var reservedListParams = map[string]struct{}{
	"page":      {},
	"limit":     {},
	"search":    {},
	"sortBy":    {},
	"sortOrder": {},
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server routes HTTP requests to the use case services.
type Server struct {
	listing       *listinguc.Service
	facets        *facetuc.Service
	related       *relateduc.Service
	content       *contentuc.Service
	health        *healthuc.Service
	registry      *entity.Registry
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	listing *listinguc.Service,
	facets *facetuc.Service,
	related *relateduc.Service,
	content *contentuc.Service,
	health *healthuc.Service,
	registry *entity.Registry,
	logger *zap.Logger,
) *Server {
	s := &Server{
		listing:  listing,
		facets:   facets,
		related:  related,
		content:  content,
		health:   health,
		registry: registry,
		logger:   logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidStatus, http.StatusBadRequest, codeInvalidStatus),
		sentinelHandler(domain.ErrUnknownField, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidRecord, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrUnknownEntity, http.StatusNotFound, codeUnknownEntity),
		sentinelHandler(domain.ErrRecordNotFound, http.StatusNotFound, codeRecordNotFound),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, codeConflict),
	}
	return s
}

// Mount registers all routes on the router.
func (s *Server) Mount(r chi.Router) {
	r.Get("/health", s.handleHealth)

	r.Route("/api/v1/{entity}", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/", s.handleCreate)
		r.Get("/facets/{field}", s.handleFacets)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Put("/", s.handleUpdate)
			r.Delete("/", s.handleDelete)
			r.Patch("/status", s.handleUpdateStatus)
			r.Get("/related", s.handleRelated)
		})
	})
}

// handleList handles GET /api/v1/{entity}.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	entityName := chi.URLParam(r, "entity")
	q := r.URL.Query()

	filters := make(map[string]string)
	for key, values := range q {
		if _, reserved := reservedListParams[key]; reserved {
			continue
		}
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}

	params := query.Params{
		Page:      q.Get("page"),
		Limit:     q.Get("limit"),
		Search:    q.Get("search"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
		Filters:   filters,
	}

	page, err := s.listing.List(r.Context(), entityName, params)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeData(w, http.StatusOK, listResponse{
		Items: recordsToPayload(page.Items()),
		Pagination: paginationPayload{
			Page:       page.Number(),
			Limit:      page.Limit(),
			Total:      page.Total(),
			TotalPages: page.TotalPages(),
		},
	})
}

// handleFacets handles GET /api/v1/{entity}/facets/{field}.
func (s *Server) handleFacets(w http.ResponseWriter, r *http.Request) {
	entityName := chi.URLParam(r, "entity")
	field := chi.URLParam(r, "field")

	values, err := s.facets.Distinct(r.Context(), entityName, field)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if values == nil {
		values = []string{}
	}
	writeData(w, http.StatusOK, values)
}

// handleRelated handles GET /api/v1/{entity}/{id}/related.
func (s *Server) handleRelated(w http.ResponseWriter, r *http.Request) {
	entityName := chi.URLParam(r, "entity")
	id := chi.URLParam(r, "id")

	// Non-numeric limit degrades to the default, like list pagination.
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	source, err := s.content.Get(r.Context(), entityName, id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	primary, _ := source.PrimaryCategory()
	relQuery, err := domrel.NewQuery(id, source.Related(), primary, limit)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	items, err := s.related.Resolve(r.Context(), entityName, relQuery)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeData(w, http.StatusOK, recordsToPayload(items))
}

// handleCreate handles POST /api/v1/{entity}.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	entityName := chi.URLParam(r, "entity")

	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	rec, err := s.content.Create(r.Context(), entityName, req.toInput())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/%s/%s", entityName, rec.ID()))
	writeData(w, http.StatusCreated, recordToPayload(&rec))
}

// handleGet handles GET /api/v1/{entity}/{id}.
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := s.content.Get(r.Context(), chi.URLParam(r, "entity"), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeData(w, http.StatusOK, recordToPayload(&rec))
}

// handleUpdate handles PUT /api/v1/{entity}/{id}.
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	rec, err := s.content.Update(r.Context(), chi.URLParam(r, "entity"), chi.URLParam(r, "id"), req.toInput())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeData(w, http.StatusOK, recordToPayload(&rec))
}

// handleDelete handles DELETE /api/v1/{entity}/{id}.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.content.Delete(r.Context(), chi.URLParam(r, "entity"), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleUpdateStatus handles PATCH /api/v1/{entity}/{id}/status.
func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Status == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "status is required")
		return
	}

	rec, err := s.content.UpdateStatus(r.Context(), chi.URLParam(r, "entity"), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeData(w, http.StatusOK, recordToPayload(&rec))
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	statusCode := http.StatusOK
	if report.Status != healthuc.Healthy {
		statusCode = http.StatusServiceUnavailable
	}
	writeJSON(w, statusCode, healthPayload{Status: string(report.Status), Checks: checksToPayload(report.Checks)})
}

// handleDomainError maps a domain error to an HTTP response. Unmatched errors
// are logged and surfaced as a generic server error; no retries here or below.
func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err, err.Error()) {
			return
		}
	}
	s.logger.Error("unhandled domain error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

// sentinelHandler creates an errorHandler matching one sentinel error.
func sentinelHandler(sentinel error, statusCode int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, statusCode, code, msg)
		return true
	}
}
