package config

const (
	defaultQueueSize = 64

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo",

		"storage.driver":        DriverSQLite,
		"storage.delete_policy": "cascade",
		"storage.queue_size":    defaultQueueSize,

		"storage.sqlite.path":      "todo.db",
		"storage.sqlite.in_memory": false,

		"storage.redis.addr":                            "localhost:6379",
		"storage.redis.password":                        "",
		"storage.redis.db":                              0,
		"storage.redis.key_prefix":                      "todo:",
		"storage.redis.timeout":                         "3s",
		"storage.redis.retry.max_attempts":              defaultRetryMaxAttempts,
		"storage.redis.retry.initial_interval":          "10ms",
		"storage.redis.retry.max_interval":              "200ms",
		"storage.redis.retry.multiplier":                defaultRetryMultiplier,
		"storage.redis.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"storage.redis.circuit_breaker.timeout":         "30s",
		"storage.redis.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"storage.redis.rate_limit.requests_per_second":  0.0,
		"storage.redis.rate_limit.burst_size":           defaultRateLimitBurst,
	}
}
