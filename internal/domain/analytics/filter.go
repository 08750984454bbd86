package analytics

import (
	"errors"
	"fmt"
	"sort"

	"github.com/fieldside/clubmetrics/internal/domain/model"
)

// SortKey selects the field a caller wants the computed collection ordered by.
type SortKey string

// Sort keys accepted by Apply.
const (
	SortByRating        SortKey = "rating"
	SortByAttendance    SortKey = "attendance"
	SortByPerformance   SortKey = "performance"
	SortByContributions SortKey = "contributions"
	SortByName          SortKey = "name"
)

// Valid reports whether k is a known sort key.
func (k SortKey) Valid() bool {
	switch k {
	case SortByRating, SortByAttendance, SortByPerformance, SortByContributions, SortByName:
		return true
	default:
		return false
	}
}

// Sentinel kinds for query validation errors.
var (
	ErrInvalidPosition = errors.New("invalid position filter")
	ErrInvalidStatus   = errors.New("invalid status filter")
	ErrInvalidSortKey  = errors.New("invalid sort key")
)

// Query is a caller's post-processing request. Empty filter fields mean "all";
// an empty Sort means rating order. Queries never alter the underlying
// per-member computation.
type Query struct {
	Position  model.Position
	Status    model.MemberStatus
	Sort      SortKey
	Ascending bool
}

// Validate checks filter and sort values. Empty fields are legitimate.
func (q Query) Validate() error {
	if q.Position != "" && !q.Position.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPosition, q.Position)
	}
	if q.Status != "" && !q.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, q.Status)
	}
	if q.Sort != "" && !q.Sort.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSortKey, q.Sort)
	}
	return nil
}

// Apply filters and reorders a computed collection. The input slice is never
// mutated; the result is a fresh slice sharing the record values.
func Apply(records []model.PlayerAnalytics, q Query) []model.PlayerAnalytics {
	out := make([]model.PlayerAnalytics, 0, len(records))
	for _, r := range records {
		if q.Position != "" && r.Member.Position != q.Position {
			continue
		}
		if q.Status != "" && r.Member.Status != q.Status {
			continue
		}
		out = append(out, r)
	}

	key := q.Sort
	if key == "" {
		key = SortByRating
	}
	sort.SliceStable(out, func(i, j int) bool {
		less, equal := compare(out[i], out[j], key)
		if equal {
			// Deterministic tie-break independent of direction.
			if out[i].Member.Name != out[j].Member.Name {
				return out[i].Member.Name < out[j].Member.Name
			}
			return out[i].Member.ID < out[j].Member.ID
		}
		if q.Ascending {
			return less
		}
		return !less
	})
	return out
}

// compare orders two records by key, reporting (i<j, i==j) on that key.
func compare(a, b model.PlayerAnalytics, key SortKey) (less, equal bool) {
	switch key {
	case SortByAttendance:
		return a.AttendanceScore < b.AttendanceScore, a.AttendanceScore == b.AttendanceScore
	case SortByPerformance:
		return a.Performance.Score < b.Performance.Score, a.Performance.Score == b.Performance.Score
	case SortByContributions:
		return a.Contribution.Score < b.Contribution.Score, a.Contribution.Score == b.Contribution.Score
	case SortByName:
		return a.Member.Name < b.Member.Name, a.Member.Name == b.Member.Name
	default: // SortByRating
		return a.OverallRating < b.OverallRating, a.OverallRating == b.OverallRating
	}
}
