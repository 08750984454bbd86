// Package worker drains the change queue into the record store.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/fieldside/clubmetrics/internal/domain/model"
	"github.com/fieldside/clubmetrics/pkg/logger"
	"github.com/fieldside/clubmetrics/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerMultiplier = 2 // multiplier for runtime.NumCPU()
	workerShutdownTimeout   = 5 * time.Second
	poolShutdownTimeout     = 30 * time.Second
)

// Change is what workers read off the queue.
type Change = model.Change

// Applier persists one record change. The app layer implements this on top
// of the record store.
type Applier interface {
	Apply(ctx context.Context, c Change) error
}

// Queue defines how workers receive changes.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Change
}

// Worker applies queued changes until stopped.
type Worker struct {
	queue   Queue
	applier Applier
	name    string

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewWorker creates a worker with configuration options.
func NewWorker(queue Queue, applier Applier, opts ...Option) *Worker {
	w := &Worker{
		queue:    queue,
		applier:  applier,
		name:     "worker",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = logger.Get().Named(w.name)
	}
	return w
}

// Run starts the worker loop until ctx is cancelled or the queue closes.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)

	changes := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case c, ok := <-changes:
			if !ok {
				return
			}
			if err := w.process(ctx, c); err != nil {
				w.logger.Error(ctx, "error applying change", logger.Error(err))
			}
		}
	}
}

// Shutdown gracefully stops the worker. Safe to call more than once.
func (w *Worker) Shutdown(ctx context.Context) error {
	w.signalShutdown()

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// process applies a single change and records latency.
func (w *Worker) process(ctx context.Context, c Change) error {
	start := time.Now()
	defer func() {
		metrics.RecordWorkerProcessingLatency(float64(time.Since(start).Milliseconds()))
	}()

	if err := w.applier.Apply(ctx, c); err != nil {
		metrics.RecordWorkerError()
		w.logger.Error(ctx, "apply failed",
			logger.String("changeID", c.ID),
			logger.String("kind", string(c.Kind)),
			logger.Error(err),
		)
		return fmt.Errorf("failed to apply change %s: %w", c.ID, err)
	}

	metrics.RecordChangeApplied(string(c.Kind))
	return nil
}

// Pool manages multiple workers draining the same queue.
type Pool struct {
	workers []*Worker

	logger logger.Logger
}

// NewPool creates a worker pool. A non-positive count defaults to twice the
// CPU count.
func NewPool(workerCount int, queue Queue, applier Applier) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU() * defaultWorkerMultiplier
	}

	p := &Pool{
		workers: make([]*Worker, workerCount),
		logger:  logger.Get().Named("worker-pool"),
	}
	for i := 0; i < workerCount; i++ {
		p.workers[i] = NewWorker(queue, applier, WithName("worker-"+strconv.Itoa(i)))
	}

	metrics.UpdateWorkerCount(workerCount)
	return p
}

// Start launches all workers.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Stop signals all workers and waits briefly for each to finish.
func (p *Pool) Stop() {
	for _, w := range p.workers {
		w.signalShutdown()
	}
	for _, w := range p.workers {
		select {
		case <-w.done:
		case <-time.After(workerShutdownTimeout):
		}
	}
}

// signalShutdown closes the shutdown channel exactly once.
func (w *Worker) signalShutdown() {
	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}
}

// Shutdown closes the queue, then waits for all workers within a bound.
func (p *Pool) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer cancel()

	for i, w := range p.workers {
		if err := w.Shutdown(shutdownCtx); err != nil {
			p.logger.Warn(ctx, "worker shutdown timed out", logger.Int("worker_id", i))
		}
	}
	return nil
}
