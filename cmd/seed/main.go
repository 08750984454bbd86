package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/fieldside/clubmetrics/internal/seed"
	"github.com/fieldside/clubmetrics/pkg/logger"
)

// Default configuration constants.
const (
	defaultMembers = 30
	defaultEvents  = 60
	defaultTimeout = 30 * time.Second
	defaultRunTime = 10 * time.Minute
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:8090", "Base URL of the service")
		members = flag.Int("members", defaultMembers, "Number of members to generate")
		events  = flag.Int("events", defaultEvents, "Number of events to generate")
		rngSeed = flag.Int64("seed", time.Now().UnixNano(), "Random seed for reproducible data")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTime)
	defer cancel()

	cfg := &seed.Config{
		BaseURL: *baseURL,
		Members: *members,
		Events:  *events,
		Seed:    *rngSeed,
		Timeout: *timeout,
	}

	if err := seed.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("seed failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
