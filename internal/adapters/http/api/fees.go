// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fieldside/clubmetrics/internal/domain/model"
)

// FeeDependencies defines the interface for fee status operations.
type FeeDependencies interface {
	FeeStatuses(ctx context.Context, now time.Time) []model.MembershipStatus
}

// FeesHandler handles membership fee status requests.
type FeesHandler struct {
	deps FeeDependencies
	now  func() time.Time
}

// NewFeesHandler creates a new fees handler.
func NewFeesHandler(deps FeeDependencies) *FeesHandler {
	return &FeesHandler{deps: deps, now: time.Now}
}

// HandleGetFees handles GET /fees requests.
func (h *FeesHandler) HandleGetFees(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	statuses := h.deps.FeeStatuses(r.Context(), h.now())
	writeJSON(w, http.StatusOK, statuses)
}
