package model

import "time"

// AttendanceBreakdown is the per-member attendance summary. RawRate is the
// member's own present/total ratio; NormalizedRate is comparable across the
// cohort (see the analytics package for the baseline rule).
type AttendanceBreakdown struct {
	TotalSessions  int     `json:"total_sessions"`
	Attended       int     `json:"attended"`
	Late           int     `json:"late"`
	Excused        int     `json:"excused"`
	RawRate        float64 `json:"raw_rate"`
	NormalizedRate float64 `json:"normalized_rate"`
}

// MatchAppearance is one match a member was involved in, kept for the
// recent-activity slice of the analytics record.
type MatchAppearance struct {
	EventID       string    `json:"event_id"`
	Title         string    `json:"title"`
	Date          time.Time `json:"date"`
	HomeScore     int       `json:"home_score"`
	AwayScore     int       `json:"away_score"`
	ManOfTheMatch bool      `json:"man_of_the_match"`
}

// PerformanceStats is the per-member match performance summary. The defensive
// accumulators (GoalsConceded, TeamGoalsSupported, TeamAssistsSupported) stay
// zero for non-defensive positions.
type PerformanceStats struct {
	MatchesPlayed        int               `json:"matches_played"`
	Goals                int               `json:"goals"`
	Assists              int               `json:"assists"`
	YellowCards          int               `json:"yellow_cards"`
	RedCards             int               `json:"red_cards"`
	MOTMCount            int               `json:"motm_count"`
	GoalsConceded        int               `json:"goals_conceded"`
	TeamGoalsSupported   int               `json:"team_goals_supported"`
	TeamAssistsSupported int               `json:"team_assists_supported"`
	Score                float64           `json:"score"`
	RecentMatches        []MatchAppearance `json:"recent_matches"`
}

// ContributionSummary is the per-member contribution summary. MonetaryTotal is
// in the smallest whole currency unit.
type ContributionSummary struct {
	Count         int            `json:"count"`
	MonetaryCount int            `json:"monetary_count"`
	InKindCount   int            `json:"in_kind_count"`
	MonetaryTotal int64          `json:"monetary_total"`
	Score         float64        `json:"score"`
	Recent        []Contribution `json:"recent"`
}

// PlayerAnalytics is the full derived record for one member. It is recomputed
// from a snapshot on every invocation and never persisted.
type PlayerAnalytics struct {
	Member          Member              `json:"member"`
	Attendance      AttendanceBreakdown `json:"attendance"`
	Performance     PerformanceStats    `json:"performance"`
	Contribution    ContributionSummary `json:"contribution"`
	AttendanceScore float64             `json:"attendance_score"`
	OverallRating   int                 `json:"overall_rating"`
}

// FeeStanding classifies a member's fee position.
type FeeStanding string

// Fee standings.
const (
	FeeCurrent   FeeStanding = "current"
	FeeOverdue   FeeStanding = "overdue"
	FeePaidAhead FeeStanding = "paid_ahead"
)

// MembershipStatus is the derived fee record for one active member. Owed
// amounts are month-denominated regardless of which payment cadence satisfied
// them; PaidPeriods always holds monthly keys.
type MembershipStatus struct {
	MemberID          string      `json:"member_id"`
	MemberName        string      `json:"member_name"`
	Standing          FeeStanding `json:"standing"`
	MonthsSinceJoined int         `json:"months_since_joined"`
	MonthsPaid        int         `json:"months_paid"`
	MonthsOwed        int         `json:"months_owed"`
	TotalOwed         int64       `json:"total_owed"`
	LastPaymentDate   *time.Time  `json:"last_payment_date,omitempty"`
	LastPeriodCovered string      `json:"last_period_covered,omitempty"`
	PaidPeriods       []string    `json:"paid_periods"`
	NextDueDate       time.Time   `json:"next_due_date"`
}
