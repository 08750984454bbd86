// Package fees reconstructs each active member's billing position from an
// unordered set of fee payment records.
package fees

import (
	"context"
	"sort"
	"time"

	"github.com/fieldside/clubmetrics/internal/domain/model"
)

// defaultMonthlyFee is the fee per billing month in the smallest whole
// currency unit.
const defaultMonthlyFee int64 = 10000

// Engine derives MembershipStatus records. Like the analytics engine it is
// pure: collections in, derived records out, no errors on empty input.
type Engine struct {
	monthlyFee int64
}

// NewEngine creates a fee status engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{monthlyFee: defaultMonthlyFee}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MonthlyFee returns the configured fee per billing month.
func (e *Engine) MonthlyFee() int64 {
	return e.monthlyFee
}

// ComputeAll derives one MembershipStatus per active member, ordered by name
// then ID. Inactive, injured, and suspended members are excluded from fee
// tracking entirely, as are payments referencing unknown members.
func (e *Engine) ComputeAll(ctx context.Context, members []model.Member, payments []model.FeePayment, now time.Time) []model.MembershipStatus {
	byMember := make(map[string][]model.FeePayment)
	known := make(map[string]struct{}, len(members))
	for _, m := range members {
		known[m.ID] = struct{}{}
	}
	for _, p := range payments {
		if _, ok := known[p.MemberID]; !ok {
			continue // orphaned record
		}
		byMember[p.MemberID] = append(byMember[p.MemberID], p)
	}

	out := make([]model.MembershipStatus, 0, len(members))
	for _, m := range members {
		if m.Status != model.StatusActive {
			continue
		}
		out = append(out, e.StatusFor(m, byMember[m.ID], now))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MemberName != out[j].MemberName {
			return out[i].MemberName < out[j].MemberName
		}
		return out[i].MemberID < out[j].MemberID
	})
	return out
}

// StatusFor reconstructs one member's billing position at now. Billing starts
// in the joining month, so a member owes one period the month they join.
// Payments with periods outside any recognizable key credit nothing but never
// fault the computation.
func (e *Engine) StatusFor(m model.Member, payments []model.FeePayment, now time.Time) model.MembershipStatus {
	paid := make(map[string]struct{})
	var lastPayment *time.Time
	lastPeriod := ""
	for _, p := range payments {
		if p.MemberID != m.ID {
			continue
		}
		for _, key := range ExpandPeriod(p.PeriodCovered) {
			paid[key] = struct{}{}
		}
		if lastPayment == nil || p.PaymentDate.After(*lastPayment) {
			t := p.PaymentDate
			lastPayment = &t
			lastPeriod = p.PeriodCovered
		}
	}

	monthsSince := monthsSinceJoining(m.DateJoined, now)
	monthsPaid := len(paid)
	monthsOwed := monthsSince - monthsPaid
	if monthsOwed < 0 {
		monthsOwed = 0
	}

	standing := model.FeeCurrent
	switch {
	case monthsOwed > 0:
		standing = model.FeeOverdue
	case monthsPaid > monthsSince:
		standing = model.FeePaidAhead
	}

	periods := make([]string, 0, len(paid))
	for key := range paid {
		periods = append(periods, key)
	}
	sort.Strings(periods)

	return model.MembershipStatus{
		MemberID:          m.ID,
		MemberName:        m.Name,
		Standing:          standing,
		MonthsSinceJoined: monthsSince,
		MonthsPaid:        monthsPaid,
		MonthsOwed:        monthsOwed,
		TotalOwed:         int64(monthsOwed) * e.monthlyFee,
		LastPaymentDate:   lastPayment,
		LastPeriodCovered: lastPeriod,
		PaidPeriods:       periods,
		NextDueDate:       nextDueDate(m.DateJoined, paid, monthsSince),
	}
}

// monthsSinceJoining counts billing months from the joining month through the
// current month, inclusive. A join date in the future yields zero.
func monthsSinceJoining(joined, now time.Time) int {
	months := (now.Year()-joined.Year())*12 + int(now.Month()) - int(joined.Month()) + 1
	if months < 0 {
		return 0
	}
	return months
}

// nextDueDate is the first day of the earliest month, counted from the
// joining month, that has not been credited. For members paid through every
// month so far it lands just past their latest credited month.
func nextDueDate(joined time.Time, paid map[string]struct{}, monthsSince int) time.Time {
	cursor := time.Date(joined.Year(), joined.Month(), 1, 0, 0, 0, 0, time.UTC)
	// Bounded scan: past monthsSince+len(paid) months there is always a gap.
	for i := 0; i <= monthsSince+len(paid); i++ {
		if _, ok := paid[MonthKey(cursor)]; !ok {
			return cursor
		}
		cursor = cursor.AddDate(0, 1, 0)
	}
	return cursor
}
