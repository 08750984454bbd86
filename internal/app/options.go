package service

import (
	"github.com/fieldside/clubmetrics/internal/domain/analytics"
	"github.com/fieldside/clubmetrics/internal/domain/fees"
	"github.com/fieldside/clubmetrics/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of ingestion workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the change queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize sets the size of the ingestion idempotency cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAnalyticsOptions forwards options to the analytics engine.
func WithAnalyticsOptions(opts ...analytics.Option) Option {
	return func(s *Service) {
		s.analyticsOpts = append(s.analyticsOpts, opts...)
	}
}

// WithFeeOptions forwards options to the fee status engine.
func WithFeeOptions(opts ...fees.Option) Option {
	return func(s *Service) {
		s.feeOpts = append(s.feeOpts, opts...)
	}
}
