// Package seed generates a synthetic club and submits it to a running
// service through the public ingestion endpoint.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldside/clubmetrics/pkg/logger"
)

// Config controls the shape of the generated club.
type Config struct {
	// BaseURL of the target service, e.g. http://localhost:8090.
	BaseURL string

	// Members is the number of club members to generate, staff included.
	Members int

	// Events is the number of events to generate across the season.
	Events int

	// Seed makes generation reproducible.
	Seed int64

	// Timeout bounds each HTTP request.
	Timeout time.Duration
}

// Run generates a club and posts every record, then reports totals.
func Run(ctx context.Context, cfg *Config) error {
	log := logger.Get().Named("seed")

	g := newGenerator(cfg.Seed)
	club := g.Club(cfg.Members, cfg.Events)

	log.Info(ctx, "generated club",
		logger.Int("members", len(club.Members)),
		logger.Int("events", len(club.Events)),
		logger.Int("attendance", len(club.Attendance)),
		logger.Int("contributions", len(club.Contributions)),
		logger.Int("feePayments", len(club.FeePayments)),
	)

	client := newClient(cfg.BaseURL, cfg.Timeout)

	posted, err := client.PostClub(ctx, club)
	if err != nil {
		return fmt.Errorf("posting club records: %w", err)
	}

	log.Info(ctx, "seed complete", logger.Int("recordsPosted", posted))
	return nil
}
