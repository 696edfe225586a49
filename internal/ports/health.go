package ports

import (
	"context"
	"time"
)

// HealthChecker is implemented by any component that can report its health.
// Storage backends implement it so the CLI can report whether the configured
// store is reachable.
type HealthChecker interface {
	// Name returns a human-readable identifier for this component
	// (e.g., "sqlite", "redis", "storage-engine").
	Name() string

	// HealthCheck performs the health check and returns nil if healthy,
	// or an error describing the failure.
	// Implementations should respect context cancellation and deadlines.
	HealthCheck(ctx context.Context) error
}

// HealthStatus is the outcome of one health check.
type HealthStatus struct {
	Name    string
	Err     error
	Elapsed time.Duration
}

// Healthy reports whether the check passed.
func (s HealthStatus) Healthy() bool {
	return s.Err == nil
}

// HealthRegistry manages registration and execution of health checkers.
type HealthRegistry interface {
	// Register adds a HealthChecker to the registry.
	Register(checker HealthChecker)

	// Report executes all registered health checks and returns one status
	// per checker, sorted by name.
	Report(ctx context.Context) []HealthStatus
}
