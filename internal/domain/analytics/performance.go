package analytics

import (
	"sort"

	"github.com/fieldside/clubmetrics/internal/domain/model"
)

// Performance accumulates the member's match events across every completed
// friendly and scores them. The score is centered on NeutralScore so a member
// with no match involvement rates average, not zero. Defensive positions earn
// support bonuses on team goals/assists and pay a penalty per goal conceded,
// compensating for goals and assists being attacker-biased counting stats.
func (e *Engine) Performance(m model.Member, events []model.Event) model.PerformanceStats {
	var s model.PerformanceStats
	defensive := m.Position.IsDefensive()

	var appearances []model.MatchAppearance
	for _, ev := range events {
		if !ev.HasMatchDetails() {
			continue
		}
		md := ev.MatchDetails

		goals := occurrences(md.GoalScorers, m.ID)
		assists := occurrences(md.Assists, m.ID)
		yellows := occurrences(md.YellowCards, m.ID)
		reds := occurrences(md.RedCards, m.ID)
		motm := md.ManOfTheMatch == m.ID && m.ID != ""

		s.Goals += goals
		s.Assists += assists
		s.YellowCards += yellows
		s.RedCards += reds
		if motm {
			s.MOTMCount++
		}

		involved := motm || goals+assists+yellows+reds > 0
		if !involved {
			continue
		}
		s.MatchesPlayed++

		if defensive {
			s.GoalsConceded += md.AwayScore
			s.TeamGoalsSupported += md.HomeScore
			s.TeamAssistsSupported += len(md.Assists)
		}

		appearances = append(appearances, model.MatchAppearance{
			EventID:       ev.ID,
			Title:         ev.Title,
			Date:          ev.Date,
			HomeScore:     md.HomeScore,
			AwayScore:     md.AwayScore,
			ManOfTheMatch: motm,
		})
	}

	sort.SliceStable(appearances, func(i, j int) bool {
		if !appearances[i].Date.Equal(appearances[j].Date) {
			return appearances[i].Date.After(appearances[j].Date)
		}
		return appearances[i].EventID < appearances[j].EventID
	})
	if len(appearances) > e.cfg.RecentMatchLimit {
		appearances = appearances[:e.cfg.RecentMatchLimit]
	}
	s.RecentMatches = appearances

	positive := float64(s.Goals)*e.cfg.GoalPoints +
		float64(s.Assists)*e.cfg.AssistPoints +
		float64(s.MOTMCount)*e.cfg.MOTMPoints
	if defensive {
		positive += float64(s.TeamGoalsSupported)*e.cfg.SupportedGoalBonus +
			float64(s.TeamAssistsSupported)*e.cfg.SupportedAssistBonus
		positive -= float64(s.GoalsConceded) * e.cfg.ConcededPenalty
	}
	negative := float64(s.YellowCards)*e.cfg.YellowCardPenalty +
		float64(s.RedCards)*e.cfg.RedCardPenalty

	net := positive - negative
	s.Score = clamp(e.cfg.NeutralScore+net*e.cfg.NetMultiplier, 0, 100)
	return s
}
