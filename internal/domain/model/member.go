// Package model contains domain records passed between layers.
package model

import "time"

// Position is the closed set of roles a member can hold in the club.
type Position string

// Playing and staff positions.
const (
	PositionGoalkeeper        Position = "goalkeeper"
	PositionCentreBack        Position = "centre_back"
	PositionLeftBack          Position = "left_back"
	PositionRightBack         Position = "right_back"
	PositionSweeper           Position = "sweeper"
	PositionDefensiveMidfield Position = "defensive_midfield"
	PositionCentralMidfield   Position = "central_midfield"
	PositionAttackingMidfield Position = "attacking_midfield"
	PositionLeftWing          Position = "left_wing"
	PositionRightWing         Position = "right_wing"
	PositionStriker           Position = "striker"
	PositionCoach             Position = "coach"
	PositionManager           Position = "manager"
)

// Positions lists every valid position.
var Positions = []Position{
	PositionGoalkeeper,
	PositionCentreBack,
	PositionLeftBack,
	PositionRightBack,
	PositionSweeper,
	PositionDefensiveMidfield,
	PositionCentralMidfield,
	PositionAttackingMidfield,
	PositionLeftWing,
	PositionRightWing,
	PositionStriker,
	PositionCoach,
	PositionManager,
}

// IsDefensive reports whether the position receives the defensive scoring
// adjustments (support bonuses and the conceded-goal penalty). This is the
// single source of truth for the defensive role set.
func (p Position) IsDefensive() bool {
	switch p {
	case PositionGoalkeeper, PositionCentreBack, PositionLeftBack, PositionRightBack, PositionSweeper:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the position is a non-playing staff role. Staff are
// exempt from cohort attendance normalization.
func (p Position) IsStaff() bool {
	return p == PositionCoach || p == PositionManager
}

// Valid reports whether p is one of the known positions.
func (p Position) Valid() bool {
	for _, known := range Positions {
		if p == known {
			return true
		}
	}
	return false
}

// MemberStatus tracks a member's administrative standing.
type MemberStatus string

// Member statuses.
const (
	StatusActive    MemberStatus = "active"
	StatusInactive  MemberStatus = "inactive"
	StatusInjured   MemberStatus = "injured"
	StatusSuspended MemberStatus = "suspended"
)

// Valid reports whether s is one of the known member statuses.
func (s MemberStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusInjured, StatusSuspended:
		return true
	default:
		return false
	}
}

// Member is a club member. Administrative edits happen outside this engine;
// within a single computation the record is immutable.
type Member struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Position   Position     `json:"position"`
	Status     MemberStatus `json:"status"`
	DateJoined time.Time    `json:"date_joined"`
}
