package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-todo-lists/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
	if cfg.Storage.Driver != config.DriverSQLite {
		t.Errorf("Storage.Driver = %q, want %q", cfg.Storage.Driver, config.DriverSQLite)
	}
	if cfg.Storage.SQLite.Path != ".local/todo.db" {
		t.Errorf("Storage.SQLite.Path = %q, want \".local/todo.db\"", cfg.Storage.SQLite.Path)
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Storage.Driver != config.DriverRedis {
		t.Errorf("Storage.Driver = %q, want %q", cfg.Storage.Driver, config.DriverRedis)
	}
	if cfg.Storage.Redis.Addr != "redis:6379" {
		t.Errorf("Storage.Redis.Addr = %q, want \"redis:6379\"", cfg.Storage.Redis.Addr)
	}
}

func TestLoad_TestProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("test")
	if err != nil {
		t.Fatalf("Load(\"test\") error: %v", err)
	}

	if !cfg.Storage.SQLite.InMemory {
		t.Error("Storage.SQLite.InMemory = false, want true for test")
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Storage.DeletePolicy != "cascade" {
		t.Errorf("Storage.DeletePolicy = %q, want \"cascade\" (from base)", cfg.Storage.DeletePolicy)
	}
	if cfg.Storage.Redis.Retry.MaxAttempts != 3 {
		t.Errorf("Storage.Redis.Retry.MaxAttempts = %d, want 3 (from base)", cfg.Storage.Redis.Retry.MaxAttempts)
	}
	if cfg.Storage.Redis.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Storage.Redis.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Storage.Redis.CircuitBreaker.MaxFailures)
	}
	if cfg.Storage.Redis.KeyPrefix != "todo:" {
		t.Errorf("Storage.Redis.KeyPrefix = %q, want \"todo:\" (from base)", cfg.Storage.Redis.KeyPrefix)
	}
}

func TestLoad_DefaultsWithoutBaseFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mini.yaml"), []byte("log:\n  level: warn\n"), 0o600); err != nil {
		t.Fatalf("writing profile: %v", err)
	}

	cfg, err := config.Load("mini", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\" (from profile)", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\" (default)", cfg.Log.Format)
	}
	if cfg.Storage.QueueSize != 64 {
		t.Errorf("Storage.QueueSize = %d, want 64 (default)", cfg.Storage.QueueSize)
	}
	if cfg.Storage.Redis.Timeout != 3*time.Second {
		t.Errorf("Storage.Redis.Timeout = %v, want 3s (default)", cfg.Storage.Redis.Timeout)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_STORAGE_DRIVER", "redis")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Storage.Driver != config.DriverRedis {
		t.Errorf("Storage.Driver = %q, want \"redis\" (env override)", cfg.Storage.Driver)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_STORAGE_DELETE_POLICY", "reject")
	t.Setenv("APP_STORAGE_SQLITE_IN_MEMORY", "true")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Storage.DeletePolicy != "reject" {
		t.Errorf("Storage.DeletePolicy = %q, want \"reject\" (env override)", cfg.Storage.DeletePolicy)
	}
	if !cfg.Storage.SQLite.InMemory {
		t.Error("Storage.SQLite.InMemory = false, want true (env override)")
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_STORAGE_REDIS_CIRCUIT_BREAKER_HALF_OPEN_LIMIT", "4")
	t.Setenv("APP_STORAGE_REDIS_RETRY_INITIAL_INTERVAL", "25ms")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Storage.Redis.CircuitBreaker.HalfOpenLimit != 4 {
		t.Errorf("Storage.Redis.CircuitBreaker.HalfOpenLimit = %d, want 4 (env override)",
			cfg.Storage.Redis.CircuitBreaker.HalfOpenLimit)
	}
	if want := 25 * time.Millisecond; cfg.Storage.Redis.Retry.InitialInterval != want {
		t.Errorf("Storage.Redis.Retry.InitialInterval = %v, want %v (env override)",
			cfg.Storage.Redis.Retry.InitialInterval, want)
	}
}

func TestLoad_EnvInvalidValueFailsValidation(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_STORAGE_DRIVER", "postgres")

	if _, err := config.Load("local"); err == nil {
		t.Fatal("Load() returned nil error, want validation error for unknown driver")
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_InvalidProfileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		profile string
	}{
		{name: "empty", profile: ""},
		{name: "blank", profile: "   "},
		{name: "separator", profile: "configs/local"},
		{name: "traversal", profile: "..local"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := config.Load(tt.profile); err == nil {
				t.Errorf("Load(%q) returned nil error, want error", tt.profile)
			}
		})
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_Storage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{name: "valid sqlite", mutate: func(*config.Config) {}, wantErr: false},
		{
			name: "valid redis",
			mutate: func(c *config.Config) {
				c.Storage.Driver = config.DriverRedis
			},
			wantErr: false,
		},
		{
			name: "unknown driver",
			mutate: func(c *config.Config) {
				c.Storage.Driver = "bolt"
			},
			wantErr: true,
		},
		{
			name: "unknown delete policy",
			mutate: func(c *config.Config) {
				c.Storage.DeletePolicy = "orphan"
			},
			wantErr: true,
		},
		{
			name: "negative queue size",
			mutate: func(c *config.Config) {
				c.Storage.QueueSize = -1
			},
			wantErr: true,
		},
		{
			name: "sqlite without path",
			mutate: func(c *config.Config) {
				c.Storage.SQLite.Path = ""
			},
			wantErr: true,
		},
		{
			name: "sqlite in memory without path",
			mutate: func(c *config.Config) {
				c.Storage.SQLite.Path = ""
				c.Storage.SQLite.InMemory = true
			},
			wantErr: false,
		},
		{
			name: "redis without addr",
			mutate: func(c *config.Config) {
				c.Storage.Driver = config.DriverRedis
				c.Storage.Redis.Addr = ""
			},
			wantErr: true,
		},
		{
			name: "redis zero retry attempts",
			mutate: func(c *config.Config) {
				c.Storage.Driver = config.DriverRedis
				c.Storage.Redis.Retry.MaxAttempts = 0
			},
			wantErr: true,
		},
		{
			name: "redis rate limit without burst",
			mutate: func(c *config.Config) {
				c.Storage.Driver = config.DriverRedis
				c.Storage.Redis.RateLimit = config.RateLimitConfig{RequestsPerSecond: 50}
			},
			wantErr: true,
		},
		{
			name: "redis negative rate limit",
			mutate: func(c *config.Config) {
				c.Storage.Driver = config.DriverRedis
				c.Storage.Redis.RateLimit.RequestsPerSecond = -1
			},
			wantErr: true,
		},
		{
			name: "redis rate limit with burst",
			mutate: func(c *config.Config) {
				c.Storage.Driver = config.DriverRedis
				c.Storage.Redis.RateLimit = config.RateLimitConfig{RequestsPerSecond: 50, BurstSize: 5}
			},
			wantErr: false,
		},
		{
			name: "redis settings ignored for sqlite",
			mutate: func(c *config.Config) {
				c.Storage.Redis.Addr = ""
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_AggregatesErrors(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "loud"
	cfg.Storage.Driver = "bolt"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() returned nil, want aggregated error")
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("Validate() error type = %T, want joined errors", err)
	}
	if got := len(joined.Unwrap()); got < 2 {
		t.Errorf("Validate() joined %d errors, want at least 2", got)
	}
}

func validBaseConfig() *config.Config {
	return &config.Config{
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
		Storage: config.StorageConfig{
			Driver:       config.DriverSQLite,
			DeletePolicy: "cascade",
			QueueSize:    16,
			SQLite: config.SQLiteConfig{
				Path: "todo.db",
			},
			Redis: config.RedisConfig{
				Addr:      "localhost:6379",
				KeyPrefix: "todo:",
				Timeout:   time.Second,
				Retry: config.RetryConfig{
					MaxAttempts:     3,
					InitialInterval: 10 * time.Millisecond,
					MaxInterval:     100 * time.Millisecond,
					Multiplier:      2.0,
				},
				CircuitBreaker: config.CircuitBreakerConfig{
					MaxFailures:   5,
					Timeout:       30 * time.Second,
					HalfOpenLimit: 1,
				},
			},
		},
	}
}
