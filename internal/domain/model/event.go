package model

import "time"

// EventType distinguishes training sessions from friendly matches.
type EventType string

// Event types.
const (
	EventTraining EventType = "training"
	EventFriendly EventType = "friendly"
)

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	return t == EventTraining || t == EventFriendly
}

// MatchDetails holds the result sheet of a completed friendly. The club is
// recorded as the home side, so HomeScore is the team's own tally and
// AwayScore the opponent's. The scorer/assist/card lists hold member IDs;
// repetition is meaningful — the same ID twice means two occurrences.
type MatchDetails struct {
	HomeScore     int      `json:"home_score"`
	AwayScore     int      `json:"away_score"`
	GoalScorers   []string `json:"goal_scorers"`
	Assists       []string `json:"assists"`
	YellowCards   []string `json:"yellow_cards"`
	RedCards      []string `json:"red_cards"`
	ManOfTheMatch string   `json:"man_of_the_match"`
}

// Event is a scheduled club activity. MatchDetails is present only for
// completed friendlies.
type Event struct {
	ID           string        `json:"id"`
	Type         EventType     `json:"type"`
	Title        string        `json:"title"`
	Date         time.Time     `json:"date"`
	IsCompleted  bool          `json:"is_completed"`
	MatchDetails *MatchDetails `json:"match_details,omitempty"`
}

// HasMatchDetails reports whether the event carries a usable result sheet.
func (e Event) HasMatchDetails() bool {
	return e.Type == EventFriendly && e.IsCompleted && e.MatchDetails != nil
}
