// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fieldside/clubmetrics/internal/domain/analytics"
	"github.com/fieldside/clubmetrics/internal/domain/dedupe"
	"github.com/fieldside/clubmetrics/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	dedupe.Deduper

	// Enqueue pushes a record change for async ingestion. Returns false on
	// backpressure.
	Enqueue(ctx context.Context, c model.Change) bool

	// Read operations expose the derived collections.
	Analytics(ctx context.Context, q analytics.Query) ([]model.PlayerAnalytics, error)
	MemberAnalytics(ctx context.Context, memberID string) (model.PlayerAnalytics, error)
	FeeStatuses(ctx context.Context, now time.Time) []model.MembershipStatus
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	recordsHandler   *RecordsHandler
	analyticsHandler *AnalyticsHandler
	feesHandler      *FeesHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		recordsHandler:   NewRecordsHandler(deps),
		analyticsHandler: NewAnalyticsHandler(deps),
		feesHandler:      NewFeesHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/records", MetricsMiddleware(s.recordsHandler.HandlePostRecord, "records"))
	mux.HandleFunc("/analytics", MetricsMiddleware(s.analyticsHandler.HandleGetAnalytics, "analytics"))
	mux.HandleFunc("/analytics/", MetricsMiddleware(s.analyticsHandler.HandleGetMemberAnalytics, "analytics_member"))
	mux.HandleFunc("/fees", MetricsMiddleware(s.feesHandler.HandleGetFees, "fees"))
}

// recordRequest is the envelope for POST /records. Exactly one payload field
// must be set, matching kind.
type recordRequest struct {
	RecordID string           `json:"record_id"`
	Kind     model.RecordKind `json:"kind"`

	Member       *model.Member       `json:"member,omitempty"`
	Event        *model.Event        `json:"event,omitempty"`
	Attendance   *model.Attendance   `json:"attendance,omitempty"`
	Contribution *model.Contribution `json:"contribution,omitempty"`
	FeePayment   *model.FeePayment   `json:"fee_payment,omitempty"`
}

func (r recordRequest) validate() error {
	if !r.Kind.Valid() {
		return fmt.Errorf("invalid kind %q", r.Kind)
	}
	switch r.Kind {
	case model.KindMember:
		if r.Member == nil {
			return errors.New("missing member payload")
		}
		if strings.TrimSpace(r.Member.ID) == "" {
			return errors.New("missing member.id")
		}
		if !r.Member.Position.Valid() {
			return fmt.Errorf("invalid member.position %q", r.Member.Position)
		}
		if !r.Member.Status.Valid() {
			return fmt.Errorf("invalid member.status %q", r.Member.Status)
		}
	case model.KindEvent:
		if r.Event == nil {
			return errors.New("missing event payload")
		}
		if strings.TrimSpace(r.Event.ID) == "" {
			return errors.New("missing event.id")
		}
		if !r.Event.Type.Valid() {
			return fmt.Errorf("invalid event.type %q", r.Event.Type)
		}
	case model.KindAttendance:
		if r.Attendance == nil {
			return errors.New("missing attendance payload")
		}
		if strings.TrimSpace(r.Attendance.ID) == "" {
			return errors.New("missing attendance.id")
		}
		if !r.Attendance.Status.Valid() {
			return fmt.Errorf("invalid attendance.status %q", r.Attendance.Status)
		}
	case model.KindContribution:
		if r.Contribution == nil {
			return errors.New("missing contribution payload")
		}
		if strings.TrimSpace(r.Contribution.ID) == "" {
			return errors.New("missing contribution.id")
		}
		if !r.Contribution.Type.Valid() {
			return fmt.Errorf("invalid contribution.type %q", r.Contribution.Type)
		}
	case model.KindFeePayment:
		if r.FeePayment == nil {
			return errors.New("missing fee_payment payload")
		}
		if strings.TrimSpace(r.FeePayment.ID) == "" {
			return errors.New("missing fee_payment.id")
		}
	}
	return nil
}

// change maps the request envelope onto the internal change type.
func (r recordRequest) change() model.Change {
	return model.Change{
		ID:           r.RecordID,
		Kind:         r.Kind,
		Member:       r.Member,
		Event:        r.Event,
		Attendance:   r.Attendance,
		Contribution: r.Contribution,
		FeePayment:   r.FeePayment,
	}
}

type ackResponse struct {
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
