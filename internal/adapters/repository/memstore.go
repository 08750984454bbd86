package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/fieldside/clubmetrics/internal/domain/model"
	"github.com/fieldside/clubmetrics/pkg/metrics"
)

// MemStore implements Store with plain maps behind a RWMutex. Good enough for
// a single-process deployment; the Store interface keeps the door open for an
// external database adapter.
type MemStore struct {
	mu      sync.RWMutex
	version uint64

	members       map[string]model.Member
	events        map[string]model.Event
	attendance    map[string]model.Attendance
	contributions map[string]model.Contribution
	feePayments   map[string]model.FeePayment

	initialCapacity int
}

// NewMemStore creates an empty in-memory record store.
func NewMemStore(ctx context.Context, opts ...Option) *MemStore {
	s := &MemStore{initialCapacity: defaultInitialCapacity}
	for _, opt := range opts {
		opt(s)
	}
	s.members = make(map[string]model.Member, s.initialCapacity)
	s.events = make(map[string]model.Event, s.initialCapacity)
	s.attendance = make(map[string]model.Attendance, s.initialCapacity)
	s.contributions = make(map[string]model.Contribution, s.initialCapacity)
	s.feePayments = make(map[string]model.FeePayment, s.initialCapacity)
	return s
}

// PutMember upserts a member record.
func (s *MemStore) PutMember(ctx context.Context, m model.Member) error {
	if m.ID == "" {
		return ErrEmptyID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members[m.ID] = m
	s.bump()
	return nil
}

// PutEvent upserts an event record. MatchDetails is copied so callers cannot
// alias store state through the pointer.
func (s *MemStore) PutEvent(ctx context.Context, e model.Event) error {
	if e.ID == "" {
		return ErrEmptyID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[e.ID] = copyEvent(e)
	s.bump()
	return nil
}

// PutAttendance upserts an attendance mark.
func (s *MemStore) PutAttendance(ctx context.Context, a model.Attendance) error {
	if a.ID == "" {
		return ErrEmptyID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attendance[a.ID] = a
	s.bump()
	return nil
}

// PutContribution upserts a contribution record.
func (s *MemStore) PutContribution(ctx context.Context, c model.Contribution) error {
	if c.ID == "" {
		return ErrEmptyID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contributions[c.ID] = c
	s.bump()
	return nil
}

// PutFeePayment upserts a fee payment record.
func (s *MemStore) PutFeePayment(ctx context.Context, p model.FeePayment) error {
	if p.ID == "" {
		return ErrEmptyID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feePayments[p.ID] = p
	s.bump()
	return nil
}

// Snapshot copies out every collection sorted by record ID so identical store
// states always produce byte-identical snapshots.
func (s *MemStore) Snapshot(ctx context.Context) Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Version:       s.version,
		Members:       make([]model.Member, 0, len(s.members)),
		Events:        make([]model.Event, 0, len(s.events)),
		Attendance:    make([]model.Attendance, 0, len(s.attendance)),
		Contributions: make([]model.Contribution, 0, len(s.contributions)),
		FeePayments:   make([]model.FeePayment, 0, len(s.feePayments)),
	}
	for _, m := range s.members {
		snap.Members = append(snap.Members, m)
	}
	for _, e := range s.events {
		snap.Events = append(snap.Events, copyEvent(e))
	}
	for _, a := range s.attendance {
		snap.Attendance = append(snap.Attendance, a)
	}
	for _, c := range s.contributions {
		snap.Contributions = append(snap.Contributions, c)
	}
	for _, p := range s.feePayments {
		snap.FeePayments = append(snap.FeePayments, p)
	}

	sort.Slice(snap.Members, func(i, j int) bool { return snap.Members[i].ID < snap.Members[j].ID })
	sort.Slice(snap.Events, func(i, j int) bool { return snap.Events[i].ID < snap.Events[j].ID })
	sort.Slice(snap.Attendance, func(i, j int) bool { return snap.Attendance[i].ID < snap.Attendance[j].ID })
	sort.Slice(snap.Contributions, func(i, j int) bool { return snap.Contributions[i].ID < snap.Contributions[j].ID })
	sort.Slice(snap.FeePayments, func(i, j int) bool { return snap.FeePayments[i].ID < snap.FeePayments[j].ID })
	return snap
}

// Version returns the current store version.
func (s *MemStore) Version(ctx context.Context) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Counts returns per-collection record counts.
func (s *MemStore) Counts(ctx context.Context) map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		"members":       len(s.members),
		"events":        len(s.events),
		"attendance":    len(s.attendance),
		"contributions": len(s.contributions),
		"fee_payments":  len(s.feePayments),
	}
}

// bump must be called with the write lock held.
func (s *MemStore) bump() {
	s.version++
	metrics.UpdateSnapshotVersion(s.version)
}

// copyEvent deep-copies the MatchDetails sub-record.
func copyEvent(e model.Event) model.Event {
	if e.MatchDetails == nil {
		return e
	}
	md := *e.MatchDetails
	md.GoalScorers = append([]string(nil), e.MatchDetails.GoalScorers...)
	md.Assists = append([]string(nil), e.MatchDetails.Assists...)
	md.YellowCards = append([]string(nil), e.MatchDetails.YellowCards...)
	md.RedCards = append([]string(nil), e.MatchDetails.RedCards...)
	e.MatchDetails = &md
	return e
}
