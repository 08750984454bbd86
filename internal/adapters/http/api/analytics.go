// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/fieldside/clubmetrics/internal/adapters/repository"
	"github.com/fieldside/clubmetrics/internal/domain/analytics"
	"github.com/fieldside/clubmetrics/internal/domain/model"
)

// AnalyticsDependencies defines the interface for analytics read operations.
type AnalyticsDependencies interface {
	Analytics(ctx context.Context, q analytics.Query) ([]model.PlayerAnalytics, error)
	MemberAnalytics(ctx context.Context, memberID string) (model.PlayerAnalytics, error)
}

// AnalyticsHandler handles analytics requests.
type AnalyticsHandler struct {
	deps AnalyticsDependencies
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(deps AnalyticsDependencies) *AnalyticsHandler {
	return &AnalyticsHandler{deps: deps}
}

// HandleGetAnalytics handles GET /analytics requests.
// Query parameters: position, status, sort, order (asc|desc).
func (h *AnalyticsHandler) HandleGetAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	q, err := queryFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	records, err := h.deps.Analytics(r.Context(), q)
	if err != nil {
		if isQueryError(err) {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// HandleGetMemberAnalytics handles GET /analytics/{member_id} requests.
func (h *AnalyticsHandler) HandleGetMemberAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/analytics/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	record, err := h.deps.MemberAnalytics(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// queryFromRequest parses filter/sort query parameters. Value validation is
// left to Query.Validate so handlers and callers reject the same inputs.
func queryFromRequest(r *http.Request) (analytics.Query, error) {
	var q analytics.Query
	params := r.URL.Query()

	q.Position = model.Position(params.Get("position"))
	q.Status = model.MemberStatus(params.Get("status"))
	q.Sort = analytics.SortKey(params.Get("sort"))

	switch order := params.Get("order"); order {
	case "", "desc":
	case "asc":
		q.Ascending = true
	default:
		return q, errors.New("invalid order; must be asc or desc")
	}
	return q, q.Validate()
}

// isQueryError reports whether err stems from an invalid filter/sort query.
func isQueryError(err error) bool {
	return errors.Is(err, analytics.ErrInvalidPosition) ||
		errors.Is(err, analytics.ErrInvalidStatus) ||
		errors.Is(err, analytics.ErrInvalidSortKey)
}
