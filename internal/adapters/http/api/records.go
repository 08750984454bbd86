// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fieldside/clubmetrics/internal/domain/dedupe"
	"github.com/fieldside/clubmetrics/internal/domain/model"
)

// RecordDependencies defines the interface for record ingestion dependencies.
type RecordDependencies interface {
	dedupe.Deduper
	Enqueue(ctx context.Context, c model.Change) bool
}

// RecordsHandler handles record ingestion requests.
type RecordsHandler struct {
	deps RecordDependencies
}

// NewRecordsHandler creates a new records handler.
func NewRecordsHandler(deps RecordDependencies) *RecordsHandler {
	return &RecordsHandler{deps: deps}
}

// HandlePostRecord handles POST /records requests.
func (h *RecordsHandler) HandlePostRecord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	// Idempotency check on client-supplied keys only. Requests without a
	// record_id are always treated as new.
	if req.RecordID != "" && h.deps.SeenAndRecord(r.Context(), req.RecordID) {
		writeJSON(w, http.StatusOK, ackResponse{Status: "duplicate", Duplicate: true})
		return
	}

	if ok := h.deps.Enqueue(r.Context(), req.change()); !ok {
		// Roll back the seen status so the client can retry the same key.
		if req.RecordID != "" {
			h.deps.Unrecord(r.Context(), req.RecordID)
		}
		writeError(w, http.StatusTooManyRequests, "backpressure", ErrBackpressure)
		return
	}
	writeJSON(w, http.StatusAccepted, ackResponse{Status: "accepted", Duplicate: false})
}
