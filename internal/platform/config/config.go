// Package config provides configuration loading and validation for the todo
// CLI. Configuration is loaded from YAML files with environment variable
// overrides using a layered system:
// defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Config holds all configuration for the application.
type Config struct {
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Storage   StorageConfig   `koanf:"storage"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// StorageConfig selects and tunes the storage backend.
type StorageConfig struct {
	// Driver is DriverSQLite or DriverRedis.
	Driver string `koanf:"driver"`
	// DeletePolicy is "cascade" or "reject".
	DeletePolicy string `koanf:"delete_policy"`
	// QueueSize is how many submissions may wait for the storage worker.
	QueueSize int          `koanf:"queue_size"`
	SQLite    SQLiteConfig `koanf:"sqlite"`
	Redis     RedisConfig  `koanf:"redis"`
}

// SQLiteConfig holds embedded database settings.
type SQLiteConfig struct {
	Path     string `koanf:"path"`
	InMemory bool   `koanf:"in_memory"`
}

// RedisConfig holds Redis backend settings.
type RedisConfig struct {
	Addr           string               `koanf:"addr"`
	Password       string               `koanf:"password"`
	DB             int                  `koanf:"db"`
	KeyPrefix      string               `koanf:"key_prefix"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds the retry policy for optimistic transactions that lose a
// race, with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// RateLimitConfig throttles commands sent to a remote backend. A zero
// RequestsPerSecond disables throttling.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}
