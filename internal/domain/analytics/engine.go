package analytics

import (
	"context"
	"math"
	"sort"

	"github.com/fieldside/clubmetrics/internal/domain/model"
)

// Snapshot is the immutable input to one full computation. The engine never
// mutates it and assumes nothing about collection ordering.
type Snapshot struct {
	Members       []model.Member
	Events        []model.Event
	Attendance    []model.Attendance
	Contributions []model.Contribution
}

// Engine computes PlayerAnalytics records. It is stateless apart from its
// configuration; every method is total over its input domain — empty
// collections and zero activity map to defined neutral outputs, never errors.
type Engine struct {
	cfg Config
}

// NewEngine creates an analytics engine with default scoring constants.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the engine's scoring configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// ComputeAll derives one fully populated PlayerAnalytics record per member in
// the snapshot, ordered by overall rating descending (name, then ID, break
// ties). Records referencing unknown member IDs are silently excluded.
func (e *Engine) ComputeAll(ctx context.Context, snap Snapshot) []model.PlayerAnalytics {
	known := make(map[string]struct{}, len(snap.Members))
	for _, m := range snap.Members {
		known[m.ID] = struct{}{}
	}

	marksByMember := make(map[string][]model.Attendance)
	for _, a := range snap.Attendance {
		if _, ok := known[a.MemberID]; !ok {
			continue // orphaned record
		}
		marksByMember[a.MemberID] = append(marksByMember[a.MemberID], a)
	}

	contribsByMember := make(map[string][]model.Contribution)
	for _, c := range snap.Contributions {
		if _, ok := known[c.MemberID]; !ok {
			continue
		}
		contribsByMember[c.MemberID] = append(contribsByMember[c.MemberID], c)
	}

	baseline := e.CohortBaseline(snap.Members, snap.Attendance)

	out := make([]model.PlayerAnalytics, 0, len(snap.Members))
	for _, m := range snap.Members {
		rec := model.PlayerAnalytics{
			Member:       m,
			Attendance:   e.Attendance(m, marksByMember[m.ID], baseline),
			Performance:  e.Performance(m, snap.Events),
			Contribution: e.Contribution(m, contribsByMember[m.ID]),
		}
		rec.AttendanceScore = rec.Attendance.NormalizedRate
		rec.OverallRating = e.rate(rec.AttendanceScore, rec.Performance.Score, rec.Contribution.Score)
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OverallRating != out[j].OverallRating {
			return out[i].OverallRating > out[j].OverallRating
		}
		if out[i].Member.Name != out[j].Member.Name {
			return out[i].Member.Name < out[j].Member.Name
		}
		return out[i].Member.ID < out[j].Member.ID
	})
	return out
}

// rate combines the three sub-scores with the configured weights and rounds
// to the nearest integer.
func (e *Engine) rate(attendance, performance, contribution float64) int {
	weighted := attendance*e.cfg.AttendanceWeight +
		performance*e.cfg.PerformanceWeight +
		contribution*e.cfg.ContributionWeight
	return int(math.Round(weighted))
}

// clamp bounds v into [lo, hi] and maps non-finite values to lo so outputs
// never carry NaN or infinities.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// occurrences counts how many times id appears in ids. Duplicates are
// semantically meaningful (two goals by the same scorer), so this is a
// multiset count, not a set-membership test.
func occurrences(ids []string, id string) int {
	n := 0
	for _, v := range ids {
		if v == id {
			n++
		}
	}
	return n
}
