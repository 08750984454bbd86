package queue_test

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/fieldside/clubmetrics/internal/adapters/mq/queue"
	"github.com/fieldside/clubmetrics/internal/domain/model"
)

func TestEnqueueDequeue(t *testing.T) {
	Convey("Given a queue with capacity two", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(2))
		ctx := context.Background()

		Convey("When enqueuing within capacity", func() {
			So(q.Enqueue(ctx, queue.Change{ID: "c1", Kind: model.KindMember}), ShouldBeTrue)
			So(q.Enqueue(ctx, queue.Change{ID: "c2", Kind: model.KindEvent}), ShouldBeTrue)
			So(q.Len(ctx), ShouldEqual, 2)

			Convey("Then a third enqueue reports backpressure", func() {
				So(q.Enqueue(ctx, queue.Change{ID: "c3"}), ShouldBeFalse)
			})

			Convey("And dequeue delivers changes in order", func() {
				out := q.Dequeue(ctx)
				first := <-out
				second := <-out
				So(first.ID, ShouldEqual, "c1")
				So(second.ID, ShouldEqual, "c2")
			})
		})

		Convey("When the queue is closed", func() {
			So(q.Enqueue(ctx, queue.Change{ID: "c1"}), ShouldBeTrue)
			So(q.Close(), ShouldBeNil)

			Convey("Then enqueue is refused", func() {
				So(q.IsClosed(), ShouldBeTrue)
				So(q.Enqueue(ctx, queue.Change{ID: "c2"}), ShouldBeFalse)
			})

			Convey("And the dequeue channel drains then closes", func() {
				out := q.Dequeue(ctx)
				c, ok := <-out
				So(ok, ShouldBeTrue)
				So(c.ID, ShouldEqual, "c1")

				select {
				case _, ok := <-out:
					So(ok, ShouldBeFalse)
				case <-time.After(time.Second):
					t.Fatal("dequeue channel did not close")
				}
			})

			Convey("And closing again is a no-op", func() {
				So(q.Close(), ShouldBeNil)
			})
		})

		Convey("When the consumer context is cancelled", func() {
			consumerCtx, cancel := context.WithCancel(ctx)
			out := q.Dequeue(consumerCtx)
			cancel()
			So(q.Enqueue(ctx, queue.Change{ID: "c1"}), ShouldBeTrue)

			Convey("Then the bridge goroutine shuts the channel", func() {
				select {
				case _, ok := <-out:
					So(ok, ShouldBeFalse)
				case <-time.After(time.Second):
					t.Fatal("dequeue channel did not close on cancel")
				}
			})
		})
	})
}
