package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Storage.validate(),
	)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (s *StorageConfig) validate() error {
	var errs []error

	switch s.DeletePolicy {
	case "cascade", "reject":
		// Valid policies.
	default:
		errs = append(errs, fmt.Errorf("storage.delete_policy must be one of: cascade, reject; got %q", s.DeletePolicy))
	}

	if s.QueueSize < 0 {
		errs = append(errs, fmt.Errorf("storage.queue_size must be >= 0, got %d", s.QueueSize))
	}

	switch s.Driver {
	case DriverSQLite:
		errs = append(errs, s.SQLite.validate())
	case DriverRedis:
		errs = append(errs, s.Redis.validate())
	default:
		errs = append(errs, fmt.Errorf("storage.driver must be one of: sqlite, redis; got %q", s.Driver))
	}

	return errors.Join(errs...)
}

func (s *SQLiteConfig) validate() error {
	if !s.InMemory && s.Path == "" {
		return errors.New("storage.sqlite.path must not be empty unless storage.sqlite.in_memory is set")
	}
	return nil
}

func (r *RedisConfig) validate() error {
	var errs []error

	if r.Addr == "" {
		errs = append(errs, errors.New("storage.redis.addr must not be empty"))
	}
	if r.DB < 0 {
		errs = append(errs, fmt.Errorf("storage.redis.db must be >= 0, got %d", r.DB))
	}
	if r.Timeout <= 0 {
		errs = append(errs, errors.New("storage.redis.timeout must be positive"))
	}
	if r.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("storage.redis.retry.max_attempts must be >= 1, got %d", r.Retry.MaxAttempts))
	}
	if r.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("storage.redis.retry.multiplier must be positive, got %f", r.Retry.Multiplier))
	}
	if r.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("storage.redis.circuit_breaker.max_failures must be >= 1, got %d",
			r.CircuitBreaker.MaxFailures))
	}
	if r.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("storage.redis.rate_limit.requests_per_second must be >= 0, got %f",
			r.RateLimit.RequestsPerSecond))
	}
	if r.RateLimit.RequestsPerSecond > 0 && r.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("storage.redis.rate_limit.burst_size must be >= 1 when rate limiting, got %d",
			r.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}
