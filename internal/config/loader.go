package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if CLUB_CONFIG is set
//  3. env (prefix CLUB_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("CLUB_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: CLUB_ADDR, CLUB_QUEUE_SIZE, ...
	// Map env keys like CLUB_QUEUE_SIZE -> queue_size to match koanf tags.
	envProvider := env.Provider("CLUB_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "club_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the service cannot run with.
func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.MonthlyFee <= 0:
		return fmt.Errorf("%w: monthly_fee must be positive", ErrInvalidConfig)
	case c.AttendanceWeight < 0 || c.PerformanceWeight < 0 || c.ContributionWeight < 0:
		return fmt.Errorf("%w: rating weights must not be negative", ErrInvalidConfig)
	case c.RecentMatchLimit < 1 || c.RecentContributionLimit < 1:
		return fmt.Errorf("%w: recent-activity limits must be positive", ErrInvalidConfig)
	}
	return nil
}
