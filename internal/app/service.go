// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	changequeue "github.com/fieldside/clubmetrics/internal/adapters/mq/queue"
	workerpool "github.com/fieldside/clubmetrics/internal/adapters/mq/worker"
	"github.com/fieldside/clubmetrics/internal/adapters/repository"
	"github.com/fieldside/clubmetrics/internal/domain/analytics"
	"github.com/fieldside/clubmetrics/internal/domain/dedupe"
	"github.com/fieldside/clubmetrics/internal/domain/fees"
	"github.com/fieldside/clubmetrics/internal/domain/model"
	"github.com/fieldside/clubmetrics/pkg/logger"
	"github.com/fieldside/clubmetrics/pkg/metrics"
)

// ErrMissingPayload reports a change whose payload does not match its kind.
var ErrMissingPayload = errors.New("change payload missing or mismatched")

// Service wires the record store, the ingestion pipeline, and the two
// derivation engines behind the API dependency interfaces.
type Service struct {
	mu sync.RWMutex

	// Core components.
	store     repository.Store
	deduper   dedupe.Deduper
	queue     changequeue.Queue
	pool      *workerpool.Pool
	engine    *analytics.Engine
	feeEngine *fees.Engine

	// Configuration.
	workerCount   int
	queueSize     int
	dedupeSize    int
	analyticsOpts []analytics.Option
	feeOpts       []fees.Option

	// Analytics cache, valid for exactly one store version. Because the
	// pipeline is a pure function of the snapshot, recomputing at the same
	// version would yield identical output; the memo only skips work.
	cacheVersion uint64
	cacheValid   bool
	cacheRecords []model.PlayerAnalytics

	started bool
	logger  logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: 4,
		queueSize:   10_000,
		dedupeSize:  50_000,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting club analytics service...")

	s.store = repository.NewMemStore(ctx)
	s.deduper = dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.dedupeSize))
	s.queue = changequeue.NewInMemoryQueue(changequeue.WithCapacity(s.queueSize))
	s.engine = analytics.NewEngine(s.analyticsOpts...)
	s.feeEngine = fees.NewEngine(s.feeOpts...)

	s.pool = workerpool.NewPool(s.workerCount, s.queue, s)
	s.pool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "club analytics service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("dedupeSize", s.dedupeSize),
	)
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping club analytics service...")

	if s.queue != nil {
		_ = s.queue.Close()
	}
	if s.pool != nil {
		s.pool.Stop()
	}

	s.started = false
	s.logger.Info(ctx, "club analytics service stopped")
}

// SeenAndRecord atomically checks if a record id was seen and records it if
// not. Returns true if the record was already seen.
func (s *Service) SeenAndRecord(ctx context.Context, id string) bool {
	seen := s.deduper.SeenAndRecord(ctx, id)
	if seen {
		metrics.RecordDuplicate()
	}
	return seen
}

// Unrecord removes a record ID from the seen list, allowing a retry.
func (s *Service) Unrecord(ctx context.Context, id string) {
	s.deduper.Unrecord(ctx, id)
}

// Size returns the current number of entries in the deduper.
func (s *Service) Size() int64 {
	if s.deduper == nil {
		return 0
	}
	return s.deduper.Size()
}

// Enqueue submits a record change for asynchronous ingestion. Changes with no
// client-supplied idempotency key get a server-assigned one. Returns false on
// backpressure.
func (s *Service) Enqueue(ctx context.Context, c model.Change) bool {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if ok := s.queue.Enqueue(ctx, c); !ok {
		return false
	}
	metrics.RecordIngested(string(c.Kind))
	return true
}

// Apply persists one change to the record store. Implements worker.Applier.
func (s *Service) Apply(ctx context.Context, c model.Change) error {
	var err error
	switch {
	case c.Kind == model.KindMember && c.Member != nil:
		err = s.store.PutMember(ctx, *c.Member)
	case c.Kind == model.KindEvent && c.Event != nil:
		err = s.store.PutEvent(ctx, *c.Event)
	case c.Kind == model.KindAttendance && c.Attendance != nil:
		err = s.store.PutAttendance(ctx, *c.Attendance)
	case c.Kind == model.KindContribution && c.Contribution != nil:
		err = s.store.PutContribution(ctx, *c.Contribution)
	case c.Kind == model.KindFeePayment && c.FeePayment != nil:
		err = s.store.PutFeePayment(ctx, *c.FeePayment)
	default:
		return fmt.Errorf("%w: kind %q", ErrMissingPayload, c.Kind)
	}
	if err != nil {
		return fmt.Errorf("store write failed: %w", err)
	}
	return nil
}

// Analytics computes the full collection over the latest snapshot and applies
// the caller's filter/sort query as pure post-processing.
func (s *Service) Analytics(ctx context.Context, q analytics.Query) ([]model.PlayerAnalytics, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	records := s.compute(ctx)
	return analytics.Apply(records, q), nil
}

// MemberAnalytics returns the analytics record for one member.
func (s *Service) MemberAnalytics(ctx context.Context, memberID string) (model.PlayerAnalytics, error) {
	for _, rec := range s.compute(ctx) {
		if rec.Member.ID == memberID {
			return rec, nil
		}
	}
	return model.PlayerAnalytics{}, repository.ErrMemberNotFound
}

// FeeStatuses reconstructs the fee standing of every active member as of now.
func (s *Service) FeeStatuses(ctx context.Context, now time.Time) []model.MembershipStatus {
	snap := s.store.Snapshot(ctx)
	return s.feeEngine.ComputeAll(ctx, snap.Members, snap.FeePayments, now)
}

// compute returns the analytics collection for the latest store version,
// recomputing the whole pipeline from scratch when the version moved.
func (s *Service) compute(ctx context.Context) []model.PlayerAnalytics {
	snap := s.store.Snapshot(ctx)

	s.mu.RLock()
	if s.cacheValid && s.cacheVersion == snap.Version {
		cached := s.cacheRecords
		s.mu.RUnlock()
		return cached
	}
	s.mu.RUnlock()

	start := time.Now()
	records := s.engine.ComputeAll(ctx, analytics.Snapshot{
		Members:       snap.Members,
		Events:        snap.Events,
		Attendance:    snap.Attendance,
		Contributions: snap.Contributions,
	})
	metrics.RecordRecompute(float64(time.Since(start).Milliseconds()))
	metrics.UpdateMembersTracked(len(records))

	s.mu.Lock()
	s.cacheVersion = snap.Version
	s.cacheRecords = records
	s.cacheValid = true
	s.mu.Unlock()

	return records
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"dedupeSize":  s.dedupeSize,
	}
	if s.started {
		stats["queueLength"] = s.queue.Len(ctx)
		stats["storeVersion"] = s.store.Version(ctx)
		for collection, n := range s.store.Counts(ctx) {
			stats[collection] = n
		}
	}
	return stats
}
