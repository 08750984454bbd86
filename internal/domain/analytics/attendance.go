package analytics

import (
	"github.com/fieldside/clubmetrics/internal/domain/model"
)

// CohortBaseline returns the maximum number of attended (present) sessions
// achieved by any active, non-staff member. Members joined at different times
// and so have different possible session counts; normalizing against peer
// attendance counts rewards consistent attenders instead of penalizing late
// joiners.
func (e *Engine) CohortBaseline(members []model.Member, marks []model.Attendance) int {
	eligible := make(map[string]struct{}, len(members))
	for _, m := range members {
		if m.Status == model.StatusActive && !m.Position.IsStaff() {
			eligible[m.ID] = struct{}{}
		}
	}

	attended := make(map[string]int, len(eligible))
	baseline := 0
	for _, a := range marks {
		if a.Status != model.AttendancePresent {
			continue
		}
		if _, ok := eligible[a.MemberID]; !ok {
			continue
		}
		attended[a.MemberID]++
		if attended[a.MemberID] > baseline {
			baseline = attended[a.MemberID]
		}
	}
	return baseline
}

// Attendance summarizes the member's marks and normalizes the rate against
// the cohort baseline. Staff keep their raw rate (no cross-comparison); all
// other members are measured as attended/max(baseline,1), clamped to 100.
func (e *Engine) Attendance(m model.Member, marks []model.Attendance, baseline int) model.AttendanceBreakdown {
	var b model.AttendanceBreakdown
	for _, a := range marks {
		if a.MemberID != m.ID {
			continue
		}
		b.TotalSessions++
		switch a.Status {
		case model.AttendancePresent:
			b.Attended++
		case model.AttendanceLate:
			b.Late++
		case model.AttendanceExcused:
			b.Excused++
		}
	}

	if b.TotalSessions > 0 {
		b.RawRate = float64(b.Attended) / float64(b.TotalSessions) * 100
	}

	if m.Position.IsStaff() {
		b.NormalizedRate = b.RawRate
		return b
	}

	if baseline < 1 {
		baseline = 1
	}
	b.NormalizedRate = clamp(float64(b.Attended)/float64(baseline)*100, 0, 100)
	return b
}
