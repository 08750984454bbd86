package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/fieldside/clubmetrics/internal/adapters/http/api"
	"github.com/fieldside/clubmetrics/internal/adapters/repository"
	"github.com/fieldside/clubmetrics/internal/domain/analytics"
	"github.com/fieldside/clubmetrics/internal/domain/model"
)

// stubDeps implements api.Dependencies with canned data.
type stubDeps struct {
	seen         map[string]bool
	backpressure bool
	records      []model.PlayerAnalytics
	statuses     []model.MembershipStatus
	enqueued     []model.Change
	unrecorded   []string
}

func newStubDeps() *stubDeps {
	return &stubDeps{seen: make(map[string]bool)}
}

func (s *stubDeps) SeenAndRecord(ctx context.Context, id string) bool {
	if s.seen[id] {
		return true
	}
	s.seen[id] = true
	return false
}

func (s *stubDeps) Unrecord(ctx context.Context, id string) {
	delete(s.seen, id)
	s.unrecorded = append(s.unrecorded, id)
}

func (s *stubDeps) Size() int64 { return int64(len(s.seen)) }

func (s *stubDeps) Enqueue(ctx context.Context, c model.Change) bool {
	if s.backpressure {
		return false
	}
	s.enqueued = append(s.enqueued, c)
	return true
}

func (s *stubDeps) Analytics(ctx context.Context, q analytics.Query) ([]model.PlayerAnalytics, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return analytics.Apply(s.records, q), nil
}

func (s *stubDeps) MemberAnalytics(ctx context.Context, memberID string) (model.PlayerAnalytics, error) {
	for _, r := range s.records {
		if r.Member.ID == memberID {
			return r, nil
		}
	}
	return model.PlayerAnalytics{}, repository.ErrMemberNotFound
}

func (s *stubDeps) FeeStatuses(ctx context.Context, now time.Time) []model.MembershipStatus {
	return s.statuses
}

func (s *stubDeps) GetStats() map[string]interface{} {
	return map[string]interface{}{"started": true}
}

func newMux(deps *stubDeps) *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(deps, deps).Register(context.Background(), mux)
	return mux
}

func postJSON(mux *http.ServeMux, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func get(mux *http.ServeMux, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func memberPayload(recordID string) map[string]any {
	return map[string]any{
		"record_id": recordID,
		"kind":      "member",
		"member": map[string]any{
			"id":          "m1",
			"name":        "Ada",
			"position":    "striker",
			"status":      "active",
			"date_joined": "2026-01-01T00:00:00Z",
		},
	}
}

func TestPostRecord(t *testing.T) {
	Convey("Given the records endpoint", t, func() {
		deps := newStubDeps()
		mux := newMux(deps)

		Convey("When posting a valid member record", func() {
			rec := postJSON(mux, "/records", memberPayload("r1"))

			Convey("Then it is accepted for async processing", func() {
				So(rec.Code, ShouldEqual, http.StatusAccepted)
				So(deps.enqueued, ShouldHaveLength, 1)
				So(deps.enqueued[0].Kind, ShouldEqual, model.KindMember)
				So(deps.enqueued[0].Member.Name, ShouldEqual, "Ada")
			})
		})

		Convey("When posting the same record twice", func() {
			_ = postJSON(mux, "/records", memberPayload("r1"))
			rec := postJSON(mux, "/records", memberPayload("r1"))

			Convey("Then the duplicate is acknowledged without re-enqueueing", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(deps.enqueued, ShouldHaveLength, 1)

				var ack map[string]any
				So(json.Unmarshal(rec.Body.Bytes(), &ack), ShouldBeNil)
				So(ack["duplicate"], ShouldBeTrue)
			})
		})

		Convey("When the queue pushes back", func() {
			deps.backpressure = true
			rec := postJSON(mux, "/records", memberPayload("r1"))

			Convey("Then the client gets 429 and the key is released", func() {
				So(rec.Code, ShouldEqual, http.StatusTooManyRequests)
				So(deps.unrecorded, ShouldContain, "r1")
				So(deps.seen["r1"], ShouldBeFalse)
			})
		})

		Convey("When the payload kind mismatches", func() {
			body := map[string]any{
				"record_id": "r1",
				"kind":      "event",
				"member":    map[string]any{"id": "m1"},
			}
			rec := postJSON(mux, "/records", body)

			Convey("Then it is rejected", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When the kind is unknown", func() {
			rec := postJSON(mux, "/records", map[string]any{"kind": "invoice"})
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the member position is unknown", func() {
			body := memberPayload("r1")
			body["member"].(map[string]any)["position"] = "libero"
			rec := postJSON(mux, "/records", body)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the body is not JSON", func() {
			req := httptest.NewRequest(http.MethodPost, "/records", bytes.NewBufferString("{"))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When using the wrong method", func() {
			rec := get(mux, "/records")
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestGetAnalytics(t *testing.T) {
	Convey("Given the analytics endpoint with two records", t, func() {
		deps := newStubDeps()
		deps.records = []model.PlayerAnalytics{
			{
				Member:        model.Member{ID: "m1", Name: "Ada", Position: model.PositionStriker, Status: model.StatusActive},
				OverallRating: 80,
			},
			{
				Member:        model.Member{ID: "m2", Name: "Ben", Position: model.PositionGoalkeeper, Status: model.StatusActive},
				OverallRating: 60,
			},
		}
		mux := newMux(deps)

		Convey("When fetching the collection", func() {
			rec := get(mux, "/analytics")

			Convey("Then all records return in rating order", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				var out []model.PlayerAnalytics
				So(json.Unmarshal(rec.Body.Bytes(), &out), ShouldBeNil)
				So(out, ShouldHaveLength, 2)
				So(out[0].Member.ID, ShouldEqual, "m1")
			})
		})

		Convey("When filtering by position", func() {
			rec := get(mux, "/analytics?position=goalkeeper")

			var out []model.PlayerAnalytics
			So(json.Unmarshal(rec.Body.Bytes(), &out), ShouldBeNil)
			So(out, ShouldHaveLength, 1)
			So(out[0].Member.ID, ShouldEqual, "m2")
		})

		Convey("When sorting ascending by name", func() {
			rec := get(mux, "/analytics?sort=name&order=asc")

			var out []model.PlayerAnalytics
			So(json.Unmarshal(rec.Body.Bytes(), &out), ShouldBeNil)
			So(out[0].Member.Name, ShouldEqual, "Ada")
		})

		Convey("When the position filter is invalid", func() {
			rec := get(mux, "/analytics?position=libero")
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the order value is invalid", func() {
			rec := get(mux, "/analytics?order=sideways")
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When fetching a single member", func() {
			rec := get(mux, "/analytics/m1")

			Convey("Then the record returns", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				var out model.PlayerAnalytics
				So(json.Unmarshal(rec.Body.Bytes(), &out), ShouldBeNil)
				So(out.Member.Name, ShouldEqual, "Ada")
			})
		})

		Convey("When fetching an unknown member", func() {
			rec := get(mux, "/analytics/ghost")
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestGetFees(t *testing.T) {
	Convey("Given the fees endpoint", t, func() {
		deps := newStubDeps()
		deps.statuses = []model.MembershipStatus{
			{MemberID: "m1", MemberName: "Ada", Standing: model.FeeOverdue, MonthsOwed: 2, TotalOwed: 20000},
		}
		mux := newMux(deps)

		Convey("When fetching fee statuses", func() {
			rec := get(mux, "/fees")

			Convey("Then the derived statuses return", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				var out []model.MembershipStatus
				So(json.Unmarshal(rec.Body.Bytes(), &out), ShouldBeNil)
				So(out, ShouldHaveLength, 1)
				So(out[0].Standing, ShouldEqual, model.FeeOverdue)
			})
		})

		Convey("When using the wrong method", func() {
			rec := postJSON(mux, "/fees", nil)
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestStatsAndHealth(t *testing.T) {
	Convey("Given the operational endpoints", t, func() {
		deps := newStubDeps()
		mux := newMux(deps)

		Convey("When fetching stats", func() {
			rec := get(mux, "/stats")

			Convey("Then the provider's map is served as JSON", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				var out map[string]any
				So(json.Unmarshal(rec.Body.Bytes(), &out), ShouldBeNil)
				So(out["started"], ShouldBeTrue)
			})
		})

		Convey("When scraping healthz", func() {
			rec := get(mux, "/healthz")

			Convey("Then the metrics exposition is served", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Body.Len(), ShouldBeGreaterThan, 0)
			})
		})
	})
}
