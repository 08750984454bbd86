package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/fieldside/clubmetrics/internal/adapters/mq/queue"
	"github.com/fieldside/clubmetrics/internal/adapters/mq/worker"
	"github.com/fieldside/clubmetrics/internal/domain/model"
	"github.com/fieldside/clubmetrics/pkg/logger"
)

// countingApplier records applied changes and can be told to fail.
type countingApplier struct {
	mu      sync.Mutex
	applied []string
	fail    bool
}

func (a *countingApplier) Apply(ctx context.Context, c worker.Change) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.fail {
		return errors.New("apply refused")
	}
	a.applied = append(a.applied, c.ID)
	return nil
}

func (a *countingApplier) setFail(fail bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.fail = fail
}

func (a *countingApplier) count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.applied)
}

func waitFor(cond func() bool) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

func TestWorkerRun(t *testing.T) {
	_ = logger.Init()

	Convey("Given a worker on a live queue", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(16))
		applier := &countingApplier{}
		w := worker.NewWorker(q, applier, worker.WithName("test-worker"))
		ctx := context.Background()

		go w.Run(ctx)

		Convey("When changes are enqueued", func() {
			So(q.Enqueue(ctx, queue.Change{ID: "c1", Kind: model.KindMember}), ShouldBeTrue)
			So(q.Enqueue(ctx, queue.Change{ID: "c2", Kind: model.KindEvent}), ShouldBeTrue)

			Convey("Then the worker applies them", func() {
				So(waitFor(func() bool { return applier.count() == 2 }), ShouldBeTrue)
			})
		})

		Convey("When the applier fails", func() {
			applier.setFail(true)
			So(q.Enqueue(ctx, queue.Change{ID: "c1"}), ShouldBeTrue)

			Convey("Then the worker keeps running and applies nothing", func() {
				So(waitFor(func() bool { return q.Len(ctx) == 0 }), ShouldBeTrue)
				So(applier.count(), ShouldEqual, 0)
			})
		})

		Convey("When the worker is shut down", func() {
			shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()

			Convey("Then shutdown returns promptly", func() {
				So(w.Shutdown(shutdownCtx), ShouldBeNil)
			})

			Convey("And shutting down twice is safe", func() {
				So(w.Shutdown(shutdownCtx), ShouldBeNil)
				So(w.Shutdown(shutdownCtx), ShouldBeNil)
			})
		})

		Reset(func() {
			_ = q.Close()
		})
	})
}

func TestPool(t *testing.T) {
	_ = logger.Init()

	Convey("Given a pool of four workers", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(256))
		applier := &countingApplier{}
		pool := worker.NewPool(4, q, applier)
		ctx := context.Background()

		pool.Start(ctx)

		Convey("When a burst of changes arrives", func() {
			for i := 0; i < 100; i++ {
				So(q.Enqueue(ctx, queue.Change{ID: "c", Kind: model.KindAttendance}), ShouldBeTrue)
			}

			Convey("Then every change is applied exactly once", func() {
				So(waitFor(func() bool { return applier.count() == 100 }), ShouldBeTrue)
			})
		})

		Convey("When the queue closes and the pool shuts down", func() {
			So(q.Close(), ShouldBeNil)

			Convey("Then shutdown completes without error", func() {
				So(pool.Shutdown(ctx), ShouldBeNil)
			})
		})

		Reset(func() {
			_ = q.Close()
			pool.Stop()
		})
	})
}
