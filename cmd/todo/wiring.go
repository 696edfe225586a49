package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/storage/redisstore"
	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/storage/sqlstore"
	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/table"
	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/terminal"
	"github.com/jsamuelsen11/go-todo-lists/internal/app"
	"github.com/jsamuelsen11/go-todo-lists/internal/app/engine"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/list"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/config"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/dispatch"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/health"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/logging"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

const (
	otelShutdownTimeout = 5 * time.Second
	healthCheckTimeout  = 3 * time.Second
)

// bootstrap loads configuration and builds the dependency graph. It stores
// the logger, tagged with the command path, in the command context.
func (c *cli) bootstrap(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := config.Load(c.profile, config.WithConfigDir(c.configDir))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, c.stderr)
	c.logger = logger

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	c.otel = otel

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger, c.stdout, c.stderr)
	c.injector = injector

	// Resolve the store and engine eagerly so a broken backend fails before
	// any command runs.
	store, err := do.Invoke[ports.Store](injector)
	if err != nil {
		return fmt.Errorf("resolving store: %w", err)
	}
	c.store = store

	eng, err := do.Invoke[*engine.Engine](injector)
	if err != nil {
		return fmt.Errorf("resolving storage engine: %w", err)
	}
	c.engine = eng

	ctx = logging.WithLogger(ctx, logger)
	cmd.SetContext(logging.With(ctx, slog.String("command", cmd.CommandPath())))
	return nil
}

// close stops the engine, then the store, then flushes telemetry. Safe to
// call when bootstrap failed or never ran.
func (c *cli) close() {
	if c.engine != nil {
		_ = c.engine.Close()
	}
	if c.store != nil {
		if err := c.store.Close(); err != nil {
			c.logger.Error("store close error", slog.Any("error", err))
		}
	}
	if c.otel != nil {
		ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := c.otel.Shutdown(ctx); err != nil {
			c.logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, engine.TracerName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// newStore opens the backend selected by storage.driver.
func newStore(cfg *config.StorageConfig, logger *slog.Logger) (ports.Store, error) {
	switch cfg.Driver {
	case config.DriverRedis:
		return redisstore.New(&cfg.Redis, logger.With(slog.String("component", "redisstore"))), nil
	case config.DriverSQLite:
		store, err := sqlstore.New(sqlstore.Config{
			Path:     cfg.SQLite.Path,
			InMemory: cfg.SQLite.InMemory,
		})
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger, stdout, stderr io.Writer) {
	do.Provide(injector, func(_ do.Injector) (ports.Store, error) {
		return newStore(&cfg.Storage, logger)
	})

	do.Provide(injector, func(i do.Injector) (*engine.Engine, error) {
		store := do.MustInvoke[ports.Store](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return engine.New(store,
			engine.WithDeletePolicy(list.DeletePolicy(cfg.Storage.DeletePolicy)),
			engine.WithQueueSize(cfg.Storage.QueueSize),
			engine.WithLogger(logger.With(slog.String("component", "engine"))),
			engine.WithMetrics(metrics),
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (*dispatch.MainLoop, error) {
		return dispatch.NewMainLoop(dispatch.WithLogger(logger)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New(health.WithTimeout(healthCheckTimeout))
		registry.Register(do.MustInvoke[*engine.Engine](i))
		registry.Register(do.MustInvoke[ports.Store](i))
		return registry, nil
	})

	do.Provide(injector, func(_ do.Injector) (*terminal.Renderer, error) {
		return terminal.New(stdout, stderr), nil
	})

	do.Provide(injector, func(i do.Injector) (*table.Director, error) {
		return table.NewDirector(do.MustInvoke[*terminal.Renderer](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.ListService, error) {
		eng := do.MustInvoke[*engine.Engine](i)
		loop := do.MustInvoke[*dispatch.MainLoop](i)
		return app.NewListService(
			eng.On(loop),
			do.MustInvoke[*table.Director](i),
			do.MustInvoke[*terminal.Renderer](i),
			nil,
		), nil
	})
}
