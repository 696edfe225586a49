package engine

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain/list"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

const defaultQueueSize = 64

// Option configures an Engine.
type Option func(*options)

type options struct {
	queue     ports.Queue
	policy    list.DeletePolicy
	logger    *slog.Logger
	metrics   *telemetry.Metrics
	tracer    trace.Tracer
	now       func() time.Time
	queueSize int
}

// WithQueue sets the default completion queue. Views created with On
// override it.
func WithQueue(q ports.Queue) Option {
	return func(o *options) {
		o.queue = q
	}
}

// WithDeletePolicy selects what DeleteList does with a List's Tasks.
// Defaults to list.DeleteCascade.
func WithDeletePolicy(p list.DeletePolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithLogger sets the logger used for failed operations.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics records operation counts, durations and queue depth.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithTracer sets the tracer for per-operation spans.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) {
		o.tracer = t
	}
}

// WithClock sets the time source used to stamp new Tasks.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithQueueSize sets how many submissions may wait for the worker before
// submitters block.
func WithQueueSize(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.queueSize = n
		}
	}
}
