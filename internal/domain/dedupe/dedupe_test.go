package dedupe_test

import (
	"context"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/fieldside/clubmetrics/internal/domain/dedupe"
)

func TestSeenAndRecord(t *testing.T) {
	Convey("Given a fresh deduper", t, func() {
		d := dedupe.NewInMemoryDeduper()
		ctx := context.Background()

		Convey("When an ID is recorded for the first time", func() {
			seen := d.SeenAndRecord(ctx, "rec-1")

			Convey("Then it reports unseen and tracks it", func() {
				So(seen, ShouldBeFalse)
				So(d.Size(), ShouldEqual, 1)
			})

			Convey("And the second sighting reports seen", func() {
				So(d.SeenAndRecord(ctx, "rec-1"), ShouldBeTrue)
				So(d.Size(), ShouldEqual, 1)
			})
		})

		Convey("When an ID is unrecorded", func() {
			d.SeenAndRecord(ctx, "rec-1")
			d.Unrecord(ctx, "rec-1")

			Convey("Then it can be recorded again", func() {
				So(d.SeenAndRecord(ctx, "rec-1"), ShouldBeFalse)
			})
		})

		Convey("When unrecording an ID that was never seen", func() {
			d.Unrecord(ctx, "ghost")

			Convey("Then nothing changes", func() {
				So(d.Size(), ShouldEqual, 0)
			})
		})
	})
}

func TestEviction(t *testing.T) {
	Convey("Given a deduper bounded to three entries", t, func() {
		d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(3))
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			d.SeenAndRecord(ctx, fmt.Sprintf("rec-%d", i))
		}

		Convey("When a fourth ID arrives", func() {
			d.SeenAndRecord(ctx, "rec-3")

			Convey("Then the size stays bounded", func() {
				So(d.Size(), ShouldEqual, 3)
			})

			Convey("And the oldest ID was evicted", func() {
				So(d.SeenAndRecord(ctx, "rec-0"), ShouldBeFalse)
			})

			Convey("And the newer IDs are still tracked", func() {
				So(d.SeenAndRecord(ctx, "rec-2"), ShouldBeTrue)
				So(d.SeenAndRecord(ctx, "rec-3"), ShouldBeTrue)
			})
		})

		Convey("When many IDs churn through", func() {
			for i := 0; i < 100; i++ {
				d.SeenAndRecord(ctx, fmt.Sprintf("churn-%d", i))
			}

			Convey("Then the bound holds", func() {
				So(d.Size(), ShouldEqual, 3)
			})
		})
	})
}
