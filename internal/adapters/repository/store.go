// Package repository defines the record store interface and errors.
package repository

import (
	"context"

	"github.com/fieldside/clubmetrics/internal/domain/model"
)

// Snapshot is an immutable-per-call copy of every collection, tagged with the
// store version it was taken at. Consumers may hold or mutate it freely
// without affecting the store.
type Snapshot struct {
	Version       uint64
	Members       []model.Member
	Events        []model.Event
	Attendance    []model.Attendance
	Contributions []model.Contribution
	FeePayments   []model.FeePayment
}

// Store provides write access to the raw record collections and snapshot
// reads for the analytics pipeline. Puts are upserts keyed by record ID; the
// version increases monotonically on every successful write.
type Store interface {
	PutMember(ctx context.Context, m model.Member) error
	PutEvent(ctx context.Context, e model.Event) error
	PutAttendance(ctx context.Context, a model.Attendance) error
	PutContribution(ctx context.Context, c model.Contribution) error
	PutFeePayment(ctx context.Context, p model.FeePayment) error

	// Snapshot copies out all collections in deterministic (ID) order.
	Snapshot(ctx context.Context) Snapshot

	// Version returns the current store version without copying.
	Version(ctx context.Context) uint64

	// Counts returns per-collection record counts for monitoring.
	Counts(ctx context.Context) map[string]int
}
