package repository_test

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/fieldside/clubmetrics/internal/adapters/repository"
	"github.com/fieldside/clubmetrics/internal/domain/model"
)

func TestMemStorePuts(t *testing.T) {
	Convey("Given an empty store", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore(ctx)

		Convey("When upserting a member twice", func() {
			m := model.Member{ID: "m1", Name: "First", Position: model.PositionStriker, Status: model.StatusActive}
			So(store.PutMember(ctx, m), ShouldBeNil)
			m.Name = "Renamed"
			So(store.PutMember(ctx, m), ShouldBeNil)

			Convey("Then the latest write wins and each write bumps the version", func() {
				snap := store.Snapshot(ctx)
				So(snap.Members, ShouldHaveLength, 1)
				So(snap.Members[0].Name, ShouldEqual, "Renamed")
				So(snap.Version, ShouldEqual, 2)
			})
		})

		Convey("When writing a record without an ID", func() {
			err := store.PutAttendance(ctx, model.Attendance{MemberID: "m1"})

			Convey("Then the write is rejected", func() {
				So(err, ShouldEqual, repository.ErrEmptyID)
				So(store.Version(ctx), ShouldEqual, 0)
			})
		})

		Convey("When writing every record kind", func() {
			So(store.PutMember(ctx, model.Member{ID: "m1"}), ShouldBeNil)
			So(store.PutEvent(ctx, model.Event{ID: "e1", Type: model.EventTraining}), ShouldBeNil)
			So(store.PutAttendance(ctx, model.Attendance{ID: "a1", MemberID: "m1", EventID: "e1"}), ShouldBeNil)
			So(store.PutContribution(ctx, model.Contribution{ID: "c1", MemberID: "m1"}), ShouldBeNil)
			So(store.PutFeePayment(ctx, model.FeePayment{ID: "p1", MemberID: "m1"}), ShouldBeNil)

			Convey("Then the counts reflect each collection", func() {
				counts := store.Counts(ctx)
				So(counts["members"], ShouldEqual, 1)
				So(counts["events"], ShouldEqual, 1)
				So(counts["attendance"], ShouldEqual, 1)
				So(counts["contributions"], ShouldEqual, 1)
				So(counts["fee_payments"], ShouldEqual, 1)
				So(store.Version(ctx), ShouldEqual, 5)
			})
		})
	})
}

func TestMemStoreSnapshot(t *testing.T) {
	Convey("Given a store with several records", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore(ctx, repository.WithInitialCapacity(8))

		_ = store.PutMember(ctx, model.Member{ID: "m2", Name: "B"})
		_ = store.PutMember(ctx, model.Member{ID: "m1", Name: "A"})
		_ = store.PutEvent(ctx, model.Event{
			ID:          "e1",
			Type:        model.EventFriendly,
			Date:        time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			IsCompleted: true,
			MatchDetails: &model.MatchDetails{
				HomeScore:   2,
				GoalScorers: []string{"m1", "m2"},
			},
		})

		Convey("When taking a snapshot", func() {
			snap := store.Snapshot(ctx)

			Convey("Then collections come back sorted by ID", func() {
				So(snap.Members[0].ID, ShouldEqual, "m1")
				So(snap.Members[1].ID, ShouldEqual, "m2")
			})

			Convey("And mutating the snapshot does not touch the store", func() {
				snap.Members[0].Name = "Hacked"
				snap.Events[0].MatchDetails.GoalScorers[0] = "ghost"

				fresh := store.Snapshot(ctx)
				So(fresh.Members[0].Name, ShouldEqual, "A")
				So(fresh.Events[0].MatchDetails.GoalScorers[0], ShouldEqual, "m1")
			})

			Convey("And the version is stable while no writes happen", func() {
				So(store.Snapshot(ctx).Version, ShouldEqual, snap.Version)
			})
		})

		Convey("When writing after a snapshot", func() {
			before := store.Snapshot(ctx)
			_ = store.PutMember(ctx, model.Member{ID: "m3", Name: "C"})

			Convey("Then only the new snapshot sees the write", func() {
				after := store.Snapshot(ctx)
				So(before.Members, ShouldHaveLength, 2)
				So(after.Members, ShouldHaveLength, 3)
				So(after.Version, ShouldEqual, before.Version+1)
			})
		})
	})
}
