package analytics

import (
	"sort"

	"github.com/fieldside/clubmetrics/internal/domain/model"
)

// Contribution summarizes and scores the member's contributions. The monetary
// divisor converts currency units into scoring units comparable with the
// per-contribution count points.
func (e *Engine) Contribution(m model.Member, contribs []model.Contribution) model.ContributionSummary {
	var s model.ContributionSummary
	var own []model.Contribution
	for _, c := range contribs {
		if c.MemberID != m.ID {
			continue
		}
		own = append(own, c)
		s.Count++
		if c.Type == model.ContributionMonetary {
			s.MonetaryCount++
			if c.Amount > 0 {
				s.MonetaryTotal += c.Amount
			}
		} else {
			s.InKindCount++
		}
	}

	sort.SliceStable(own, func(i, j int) bool {
		if !own[i].Date.Equal(own[j].Date) {
			return own[i].Date.After(own[j].Date)
		}
		return own[i].ID < own[j].ID
	})
	if len(own) > e.cfg.RecentContributionLimit {
		own = own[:e.cfg.RecentContributionLimit]
	}
	s.Recent = own

	score := float64(s.Count)*e.cfg.ContributionCountPoints +
		float64(s.MonetaryTotal)/e.cfg.MonetaryDivisor
	s.Score = clamp(score, 0, 100)
	return s
}
