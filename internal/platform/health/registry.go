// Package health provides a thread-safe registry of health checkers. The CLI
// registers the storage engine and its backend at startup and reports their
// state through the health command.
package health

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Option configures a Registry.
type Option func(*Registry)

// WithTimeout bounds every individual check. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(r *Registry) {
		r.timeout = d
	}
}

// Registry is a thread-safe implementation of [ports.HealthRegistry].
type Registry struct {
	timeout time.Duration

	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty health check registry.
func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// Report runs every check in registration order and returns the statuses
// sorted by name, keeping registration order among equal names. Checks run
// without holding the registry lock.
func (r *Registry) Report(ctx context.Context) []ports.HealthStatus {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	statuses := make([]ports.HealthStatus, 0, len(checkers))
	for _, c := range checkers {
		statuses = append(statuses, r.check(ctx, c))
	}
	slices.SortStableFunc(statuses, func(a, b ports.HealthStatus) int {
		return strings.Compare(a.Name, b.Name)
	})
	return statuses
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) ports.HealthStatus {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	err := c.HealthCheck(ctx)
	return ports.HealthStatus{Name: c.Name(), Err: err, Elapsed: time.Since(start)}
}
