package model

import "time"

// AttendanceStatus is the mark recorded for one member at one event.
type AttendanceStatus string

// Attendance statuses.
const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

// Valid reports whether s is a known attendance status.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	default:
		return false
	}
}

// Attendance links one member to one event with a status. One record per
// (member, event) pair is expected but not enforced; the engine aggregates
// whatever set it is given.
type Attendance struct {
	ID       string           `json:"id"`
	MemberID string           `json:"member_id"`
	EventID  string           `json:"event_id"`
	Status   AttendanceStatus `json:"status"`
}

// ContributionType distinguishes cash from in-kind contributions.
type ContributionType string

// Contribution types.
const (
	ContributionMonetary ContributionType = "monetary"
	ContributionInKind   ContributionType = "in_kind"
)

// Valid reports whether t is a known contribution type.
func (t ContributionType) Valid() bool {
	return t == ContributionMonetary || t == ContributionInKind
}

// Contribution is a monetary or in-kind contribution by a member. Amount is
// in the smallest whole currency unit and meaningful only for monetary
// contributions.
type Contribution struct {
	ID          string           `json:"id"`
	MemberID    string           `json:"member_id"`
	Type        ContributionType `json:"type"`
	Amount      int64            `json:"amount,omitempty"`
	Description string           `json:"description"`
	Date        time.Time        `json:"date"`
}

// FeePayment records a membership fee payment. PeriodCovered is a canonical
// period key: YYYY-MM for a monthly payment or YYYY-QN for a quarterly one.
type FeePayment struct {
	ID            string    `json:"id"`
	MemberID      string    `json:"member_id"`
	PaymentDate   time.Time `json:"payment_date"`
	PeriodCovered string    `json:"period_covered"`
	Amount        int64     `json:"amount"`
}
