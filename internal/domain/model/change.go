package model

// RecordKind identifies which collection a change targets.
type RecordKind string

// Record kinds accepted by the ingestion pipeline.
const (
	KindMember       RecordKind = "member"
	KindEvent        RecordKind = "event"
	KindAttendance   RecordKind = "attendance"
	KindContribution RecordKind = "contribution"
	KindFeePayment   RecordKind = "fee_payment"
)

// Valid reports whether k is a known record kind.
func (k RecordKind) Valid() bool {
	switch k {
	case KindMember, KindEvent, KindAttendance, KindContribution, KindFeePayment:
		return true
	default:
		return false
	}
}

// Change is one record mutation flowing through the ingestion queue. ID is
// the idempotency key; exactly one payload pointer matching Kind is set.
type Change struct {
	ID           string
	Kind         RecordKind
	Member       *Member
	Event        *Event
	Attendance   *Attendance
	Contribution *Contribution
	FeePayment   *FeePayment
}
