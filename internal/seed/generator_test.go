package seed

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/fieldside/clubmetrics/internal/domain/model"
)

func TestGeneratorClub(t *testing.T) {
	Convey("Given a seeded generator", t, func() {
		g := newGenerator(42)

		Convey("When generating a club", func() {
			club := g.Club(20, 30)

			Convey("Then the requested counts are honored", func() {
				So(club.Members, ShouldHaveLength, 20)
				So(club.Events, ShouldHaveLength, 30)
			})

			Convey("And the roster has a keeper and staff", func() {
				So(club.Members[0].Position, ShouldEqual, model.PositionGoalkeeper)
				So(club.Members[1].Position, ShouldEqual, model.PositionCoach)
				So(club.Members[2].Position, ShouldEqual, model.PositionManager)
			})

			Convey("And every record carries valid enum values", func() {
				for _, m := range club.Members {
					So(m.Position.Valid(), ShouldBeTrue)
					So(m.Status.Valid(), ShouldBeTrue)
				}
				for _, e := range club.Events {
					So(e.Type.Valid(), ShouldBeTrue)
				}
				for _, a := range club.Attendance {
					So(a.Status.Valid(), ShouldBeTrue)
				}
				for _, c := range club.Contributions {
					So(c.Type.Valid(), ShouldBeTrue)
				}
			})

			Convey("And attendance references generated members and events", func() {
				memberIDs := make(map[string]struct{})
				for _, m := range club.Members {
					memberIDs[m.ID] = struct{}{}
				}
				eventIDs := make(map[string]struct{})
				for _, e := range club.Events {
					eventIDs[e.ID] = struct{}{}
				}
				for _, a := range club.Attendance {
					_, okM := memberIDs[a.MemberID]
					_, okE := eventIDs[a.EventID]
					So(okM, ShouldBeTrue)
					So(okE, ShouldBeTrue)
				}
			})

			Convey("And match sheets only appear on completed friendlies", func() {
				for _, e := range club.Events {
					if e.MatchDetails == nil {
						continue
					}
					So(e.Type, ShouldEqual, model.EventFriendly)
					So(e.IsCompleted, ShouldBeTrue)
					So(len(e.MatchDetails.GoalScorers), ShouldEqual, e.MatchDetails.HomeScore)
				}
			})

			Convey("And fee payments carry recognizable period keys", func() {
				for _, p := range club.FeePayments {
					So(len(p.PeriodCovered), ShouldEqual, 7)
				}
			})
		})

		Convey("When generating twice with the same seed", func() {
			a := newGenerator(7).Club(10, 10)
			b := newGenerator(7).Club(10, 10)

			Convey("Then the rosters match except for the random IDs", func() {
				So(len(a.Members), ShouldEqual, len(b.Members))
				for i := range a.Members {
					So(a.Members[i].Name, ShouldEqual, b.Members[i].Name)
					So(a.Members[i].Position, ShouldEqual, b.Members[i].Position)
					So(a.Members[i].Status, ShouldEqual, b.Members[i].Status)
				}
			})
		})
	})
}
