package redisstore

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/go-todo-lists/internal/platform/config"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// watchWithRetry runs an optimistic WATCH/MULTI transaction over watched,
// retrying with exponential backoff when another client changed a watched
// key first.
func (s *Store) watchWithRetry(ctx context.Context, op string, fn func(*redis.Tx) error, watched ...string) error {
	attempts := s.retry.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := range attempts {
		if attempt > 0 {
			if werr := s.waitForRetry(ctx, op, attempt, attempts, err); werr != nil {
				return werr
			}
		}

		err = s.client.Watch(ctx, fn, watched...)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return err
}

// waitForRetry logs the retry attempt at WARN level and waits for the
// backoff delay or context cancellation.
func (s *Store) waitForRetry(ctx context.Context, op string, attempt, maxAttempts int, lastErr error) error {
	delay := backoff(attempt, s.retry)

	s.logger.WarnContext(ctx, "retrying redis transaction",
		slog.String("operation", op),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// backoff calculates the delay for a given retry attempt using exponential
// backoff with ±25% jitter. The attempt parameter is 1-indexed (attempt 1 is
// the first retry).
func backoff(attempt int, cfg config.RetryConfig) time.Duration {
	delay := float64(cfg.InitialInterval) * math.Pow(cfg.Multiplier, float64(attempt-1))

	if delay > float64(cfg.MaxInterval) {
		delay = float64(cfg.MaxInterval)
	}

	jitter := delay * jitterFraction
	delay += jitter * (2*secureRandFloat64() - 1)

	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

// IEEE 754 double-precision constants for random float generation.
const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1) using crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}
