package redisstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/config"
)

func newBreaker(cfg config.CircuitBreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[struct{}] {
	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "redis",
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: isBreakerSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// isBreakerSuccess reports whether err says nothing about Redis health.
// Missing entities, conflicts and caller cancellations are answers, not
// outages.
func isBreakerSuccess(err error) bool {
	switch {
	case err == nil,
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, context.Canceled):
		return true
	default:
		return false
	}
}

// execute waits for the rate limiter, then runs fn through the breaker.
// Rejections by an open breaker are reported as domain.ErrUnavailable.
func (s *Store) execute(ctx context.Context, fn func() error) error {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("redis rate limit: %w", err)
		}
	}

	_, err := s.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("redis: %w: %w", domain.ErrUnavailable, err)
	}
	return err
}

// newLimiter returns nil when cfg disables throttling.
func newLimiter(cfg config.RateLimitConfig) *rate.Limiter {
	if cfg.RequestsPerSecond <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), max(cfg.BurstSize, 1))
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
