// Package analytics derives per-member scores, ratings, and recent-activity
// slices from a snapshot of raw club records.
package analytics

// Config holds every scoring constant. Values are injected rather than
// hard-coded so the computation stays pure and the constants independently
// tunable.
type Config struct {
	// Rating weights. They intentionally sum to 0.90, not 1.0: the historical
	// rating rules behave this way and every stored rating depends on it.
	AttendanceWeight   float64
	PerformanceWeight  float64
	ContributionWeight float64

	// Match scoring multipliers.
	GoalPoints           float64
	AssistPoints         float64
	MOTMPoints           float64
	YellowCardPenalty    float64
	RedCardPenalty       float64
	SupportedGoalBonus   float64
	SupportedAssistBonus float64
	ConcededPenalty      float64
	NeutralScore         float64
	NetMultiplier        float64

	// Contribution scoring.
	ContributionCountPoints float64
	MonetaryDivisor         float64

	// Recent-activity slice sizes.
	RecentMatchLimit        int
	RecentContributionLimit int
}

// DefaultConfig returns the production scoring constants.
func DefaultConfig() Config {
	return Config{
		AttendanceWeight:   0.45,
		PerformanceWeight:  0.30,
		ContributionWeight: 0.15,

		GoalPoints:           3,
		AssistPoints:         2,
		MOTMPoints:           5,
		YellowCardPenalty:    1,
		RedCardPenalty:       3,
		SupportedGoalBonus:   0.5,
		SupportedAssistBonus: 0.3,
		ConcededPenalty:      1.5,
		NeutralScore:         50,
		NetMultiplier:        2,

		ContributionCountPoints: 10,
		MonetaryDivisor:         10000,

		RecentMatchLimit:        5,
		RecentContributionLimit: 10,
	}
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithConfig replaces the entire scoring configuration.
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// WithRatingWeights overrides the three aggregation weights.
func WithRatingWeights(attendance, performance, contribution float64) Option {
	return func(e *Engine) {
		if attendance >= 0 && performance >= 0 && contribution >= 0 {
			e.cfg.AttendanceWeight = attendance
			e.cfg.PerformanceWeight = performance
			e.cfg.ContributionWeight = contribution
		}
	}
}

// WithRecentLimits overrides the recent-activity slice sizes.
func WithRecentLimits(matches, contributions int) Option {
	return func(e *Engine) {
		if matches > 0 {
			e.cfg.RecentMatchLimit = matches
		}
		if contributions > 0 {
			e.cfg.RecentContributionLimit = contributions
		}
	}
}
