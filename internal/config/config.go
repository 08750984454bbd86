// Package config defines service configuration structures and loading hooks.
package config

// Config contains process configuration. Engine constants live here rather
// than as literals so they stay independently tunable and testable.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// QueueSize bounds the in-memory record change queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of ingestion workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize sets the size of the ingestion idempotency cache.
	DedupeSize int `koanf:"dedupe_size"`

	// MonthlyFee is the membership fee per billing month, in the smallest
	// whole currency unit.
	MonthlyFee int64 `koanf:"monthly_fee"`

	// Rating aggregation weights. The defaults sum to 0.90, which is the
	// historical behavior every stored rating depends on.
	AttendanceWeight   float64 `koanf:"attendance_weight"`
	PerformanceWeight  float64 `koanf:"performance_weight"`
	ContributionWeight float64 `koanf:"contribution_weight"`

	// Recent-activity slice sizes on the analytics record.
	RecentMatchLimit        int `koanf:"recent_match_limit"`
	RecentContributionLimit int `koanf:"recent_contribution_limit"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		LogLevel:    "info",
		Addr:        ":8090",
		QueueSize:   10_000,
		WorkerCount: 4,
		DedupeSize:  50_000,
		MonthlyFee:  10_000,

		AttendanceWeight:   0.45,
		PerformanceWeight:  0.30,
		ContributionWeight: 0.15,

		RecentMatchLimit:        5,
		RecentContributionLimit: 10,
	}
}
