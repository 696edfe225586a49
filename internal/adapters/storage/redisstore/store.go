// Package redisstore is the Redis backend of the storage engine. Lists and
// Tasks are hashes indexed by sorted sets; every mutation is one optimistic
// WATCH/MULTI transaction, and every call passes through a circuit breaker
// whose state backs the health check.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/list"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/task"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/config"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

// Compile-time check that Store implements ports.Store.
var _ ports.Store = (*Store)(nil)

const defaultKeyPrefix = "todo:"

// Store implements ports.Store on Redis.
type Store struct {
	client  *redis.Client
	keys    keys
	breaker *gobreaker.CircuitBreaker[struct{}]
	limiter *rate.Limiter
	retry   config.RetryConfig
	logger  *slog.Logger
}

// Option configures a Store.
type Option func(*storeOptions)

type storeOptions struct {
	prefix  string
	breaker config.CircuitBreakerConfig
	limit   config.RateLimitConfig
	retry   config.RetryConfig
	logger  *slog.Logger
}

// WithKeyPrefix namespaces every key. Defaults to "todo:".
func WithKeyPrefix(prefix string) Option {
	return func(o *storeOptions) {
		o.prefix = prefix
	}
}

// WithCircuitBreaker overrides the circuit breaker settings.
func WithCircuitBreaker(cfg config.CircuitBreakerConfig) Option {
	return func(o *storeOptions) {
		o.breaker = cfg
	}
}

// WithRetry overrides the retry policy for transactions that lose a WATCH race.
func WithRetry(cfg config.RetryConfig) Option {
	return func(o *storeOptions) {
		o.retry = cfg
	}
}

// WithRateLimit throttles commands to cfg.RequestsPerSecond. A zero rate
// leaves the store unthrottled.
func WithRateLimit(cfg config.RateLimitConfig) Option {
	return func(o *storeOptions) {
		o.limit = cfg
	}
}

// WithLogger sets the logger for breaker transitions and retries.
func WithLogger(l *slog.Logger) Option {
	return func(o *storeOptions) {
		o.logger = l
	}
}

// New creates a Store with its own client built from cfg. No connection is
// made until the first call.
func New(cfg *config.RedisConfig, logger *slog.Logger) *Store {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.Timeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	return NewFromClient(client,
		WithKeyPrefix(cfg.KeyPrefix),
		WithCircuitBreaker(cfg.CircuitBreaker),
		WithRetry(cfg.Retry),
		WithRateLimit(cfg.RateLimit),
		WithLogger(logger),
	)
}

// NewFromClient creates a Store over an existing client. The Store takes
// ownership of client and closes it on Close.
func NewFromClient(client *redis.Client, opts ...Option) *Store {
	o := storeOptions{
		prefix: defaultKeyPrefix,
		breaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
		retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     200 * time.Millisecond,
			Multiplier:      2,
		},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	return &Store{
		client:  client,
		keys:    keys{prefix: o.prefix},
		breaker: newBreaker(o.breaker, o.logger),
		limiter: newLimiter(o.limit),
		retry:   o.retry,
		logger:  o.logger,
	}
}

// FetchLists implements ports.Store.
func (s *Store) FetchLists(ctx context.Context) ([]list.List, error) {
	var out []list.List
	err := s.execute(ctx, func() error {
		ids, err := s.client.ZRange(ctx, s.keys.lists(), 0, -1).Result()
		if err != nil {
			return fmt.Errorf("reading list index: %w", err)
		}

		out = make([]list.List, 0, len(ids))
		for _, id := range ids {
			l, err := s.readList(ctx, s.client, id)
			if err != nil {
				return err
			}
			out = append(out, l)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InsertList implements ports.Store.
func (s *Store) InsertList(ctx context.Context, l list.List) error {
	id := l.Identifier.String()
	watched := []string{s.keys.list(id), s.keys.owners(), s.keys.ids()}
	claimed := make([]any, 0, len(l.Tasks)+1)
	claimed = append(claimed, id)
	for i := range l.Tasks {
		claimed = append(claimed, l.Tasks[i].Identifier.String())
	}

	return s.execute(ctx, func() error {
		return s.watchWithRetry(ctx, "InsertList", func(tx *redis.Tx) error {
			if err := s.ensureUnclaimed(ctx, tx, "list", l.Identifier); err != nil {
				return err
			}
			seen := map[domain.Identifier]bool{l.Identifier: true}
			for i := range l.Tasks {
				tid := l.Tasks[i].Identifier
				if seen[tid] {
					return fmt.Errorf("task %s: identifier already used: %w", tid, domain.ErrConflict)
				}
				seen[tid] = true
				if err := s.ensureUnclaimed(ctx, tx, "task", tid); err != nil {
					return err
				}
			}

			last, err := tx.IncrBy(ctx, s.keys.seq(), int64(len(l.Tasks)+1)).Result()
			if err != nil {
				return fmt.Errorf("allocating sequence: %w", err)
			}
			first := last - int64(len(l.Tasks))

			_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
				p.SAdd(ctx, s.keys.ids(), claimed...)
				p.HSet(ctx, s.keys.list(id), fieldName, l.Name)
				p.ZAdd(ctx, s.keys.lists(), redis.Z{Score: float64(first), Member: id})
				for i := range l.Tasks {
					s.queueTaskInsert(ctx, p, id, &l.Tasks[i], first+int64(i)+1)
				}
				return nil
			})
			if err != nil {
				return fmt.Errorf("inserting list %s: %w", id, err)
			}
			return nil
		}, watched...)
	})
}

// UpdateList implements ports.Store.
func (s *Store) UpdateList(ctx context.Context, l list.List) error {
	id := l.Identifier.String()

	return s.execute(ctx, func() error {
		return s.watchWithRetry(ctx, "UpdateList", func(tx *redis.Tx) error {
			if err := s.ensureListExists(ctx, tx, id); err != nil {
				return err
			}
			_, err := tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
				p.HSet(ctx, s.keys.list(id), fieldName, l.Name)
				return nil
			})
			if err != nil {
				return fmt.Errorf("renaming list %s: %w", id, err)
			}
			return nil
		}, s.keys.list(id))
	})
}

// DeleteList implements ports.Store.
func (s *Store) DeleteList(ctx context.Context, listID domain.Identifier, policy list.DeletePolicy) error {
	id := listID.String()
	watched := []string{s.keys.list(id), s.keys.listTasks(id)}

	return s.execute(ctx, func() error {
		return s.watchWithRetry(ctx, "DeleteList", func(tx *redis.Tx) error {
			if err := s.ensureListExists(ctx, tx, id); err != nil {
				return err
			}
			taskIDs, err := tx.ZRange(ctx, s.keys.listTasks(id), 0, -1).Result()
			if err != nil {
				return fmt.Errorf("reading tasks of list %s: %w", id, err)
			}
			if len(taskIDs) > 0 && policy == list.DeleteReject {
				return fmt.Errorf("list %s owns %d tasks: %w", id, len(taskIDs), domain.ErrConflict)
			}

			_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
				for _, tid := range taskIDs {
					p.Del(ctx, s.keys.task(tid))
				}
				if len(taskIDs) > 0 {
					p.HDel(ctx, s.keys.owners(), taskIDs...)
				}
				p.Del(ctx, s.keys.listTasks(id), s.keys.list(id))
				p.ZRem(ctx, s.keys.lists(), id)
				return nil
			})
			if err != nil {
				return fmt.Errorf("deleting list %s: %w", id, err)
			}
			return nil
		}, watched...)
	})
}

// FetchTasks implements ports.Store.
func (s *Store) FetchTasks(ctx context.Context, listID domain.Identifier) ([]task.Task, error) {
	id := listID.String()

	var out []task.Task
	err := s.execute(ctx, func() error {
		if err := s.ensureListExists(ctx, s.client, id); err != nil {
			return err
		}
		tasks, err := s.readTasks(ctx, s.client, id)
		if err != nil {
			return err
		}
		out = tasks
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TaskOwner implements ports.Store.
func (s *Store) TaskOwner(ctx context.Context, taskID domain.Identifier) (domain.Identifier, error) {
	var owner string
	err := s.execute(ctx, func() error {
		v, err := s.client.HGet(ctx, s.keys.owners(), taskID.String()).Result()
		if errors.Is(err, redis.Nil) {
			return fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("reading owner of task %s: %w", taskID, err)
		}
		owner = v
		return nil
	})
	if err != nil {
		return "", err
	}
	return domain.Identifier(owner), nil
}

// InsertTask implements ports.Store.
func (s *Store) InsertTask(ctx context.Context, listID domain.Identifier, t task.Task) error {
	id := listID.String()
	watched := []string{s.keys.list(id), s.keys.owners(), s.keys.ids()}

	return s.execute(ctx, func() error {
		return s.watchWithRetry(ctx, "InsertTask", func(tx *redis.Tx) error {
			if err := s.ensureListExists(ctx, tx, id); err != nil {
				return err
			}
			if err := s.ensureUnclaimed(ctx, tx, "task", t.Identifier); err != nil {
				return err
			}
			seq, err := tx.Incr(ctx, s.keys.seq()).Result()
			if err != nil {
				return fmt.Errorf("allocating sequence: %w", err)
			}

			_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
				p.SAdd(ctx, s.keys.ids(), t.Identifier.String())
				s.queueTaskInsert(ctx, p, id, &t, seq)
				return nil
			})
			if err != nil {
				return fmt.Errorf("inserting task %s: %w", t.Identifier, err)
			}
			return nil
		}, watched...)
	})
}

// DeleteTask implements ports.Store.
func (s *Store) DeleteTask(ctx context.Context, taskID domain.Identifier) error {
	tid := taskID.String()

	return s.execute(ctx, func() error {
		return s.watchWithRetry(ctx, "DeleteTask", func(tx *redis.Tx) error {
			owner, err := tx.HGet(ctx, s.keys.owners(), tid).Result()
			if errors.Is(err, redis.Nil) {
				return fmt.Errorf("task %s: %w", tid, domain.ErrNotFound)
			}
			if err != nil {
				return fmt.Errorf("reading owner of task %s: %w", tid, err)
			}

			_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
				p.Del(ctx, s.keys.task(tid))
				p.ZRem(ctx, s.keys.listTasks(owner), tid)
				p.HDel(ctx, s.keys.owners(), tid)
				return nil
			})
			if err != nil {
				return fmt.Errorf("deleting task %s: %w", tid, err)
			}
			return nil
		}, s.keys.owners(), s.keys.task(tid))
	})
}

// RenameTask implements ports.Store.
func (s *Store) RenameTask(ctx context.Context, taskID domain.Identifier, name string) error {
	return s.updateTaskField(ctx, "RenameTask", taskID, fieldName, name)
}

// SetTaskStatus implements ports.Store.
func (s *Store) SetTaskStatus(ctx context.Context, taskID domain.Identifier, status task.Status) error {
	return s.updateTaskField(ctx, "SetTaskStatus", taskID, fieldStatus, status.String())
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "redis"
}

// HealthCheck reports the breaker state and, while the breaker is closed,
// pings the server.
//
// State mapping:
//   - "closed"    -- healthy if PING succeeds.
//   - "half-open" -- probing recovery; reported as degraded.
//   - "open"      -- Redis is failing and calls are being rejected.
func (s *Store) HealthCheck(ctx context.Context) error {
	state := s.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		if err := s.client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		return nil
	case gobreaker.StateHalfOpen:
		return errors.New("redis: degraded (circuit breaker half-open)")
	case gobreaker.StateOpen:
		return errors.New("redis: failing (circuit breaker open)")
	default:
		return fmt.Errorf("redis: unknown circuit breaker state %v", state)
	}
}

// Close closes the client.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) updateTaskField(ctx context.Context, op string, taskID domain.Identifier, field, value string) error {
	tid := taskID.String()

	return s.execute(ctx, func() error {
		return s.watchWithRetry(ctx, op, func(tx *redis.Tx) error {
			n, err := tx.Exists(ctx, s.keys.task(tid)).Result()
			if err != nil {
				return fmt.Errorf("checking task %s: %w", tid, err)
			}
			if n == 0 {
				return fmt.Errorf("task %s: %w", tid, domain.ErrNotFound)
			}

			_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
				p.HSet(ctx, s.keys.task(tid), field, value)
				return nil
			})
			if err != nil {
				return fmt.Errorf("updating %s of task %s: %w", field, tid, err)
			}
			return nil
		}, s.keys.task(tid))
	})
}

func (s *Store) queueTaskInsert(ctx context.Context, p redis.Pipeliner, listID string, t *task.Task, seq int64) {
	tid := t.Identifier.String()
	p.HSet(ctx, s.keys.task(tid), taskFields(t))
	p.ZAdd(ctx, s.keys.listTasks(listID), redis.Z{Score: float64(seq), Member: tid})
	p.HSet(ctx, s.keys.owners(), tid, listID)
}

func (s *Store) ensureListExists(ctx context.Context, c redis.Cmdable, id string) error {
	n, err := c.Exists(ctx, s.keys.list(id)).Result()
	if err != nil {
		return fmt.Errorf("checking list %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("list %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ensureUnclaimed fails with domain.ErrConflict when id was ever assigned to
// a List or a Task, including deleted ones.
func (s *Store) ensureUnclaimed(ctx context.Context, c redis.Cmdable, kind string, id domain.Identifier) error {
	taken, err := c.SIsMember(ctx, s.keys.ids(), id.String()).Result()
	if err != nil {
		return fmt.Errorf("checking %s %s: %w", kind, id, err)
	}
	if taken {
		return fmt.Errorf("%s %s: identifier already used: %w", kind, id, domain.ErrConflict)
	}
	return nil
}

func (s *Store) readList(ctx context.Context, c redis.Cmdable, id string) (list.List, error) {
	name, err := c.HGet(ctx, s.keys.list(id), fieldName).Result()
	if err != nil {
		return list.List{}, fmt.Errorf("reading list %s: %w", id, err)
	}
	tasks, err := s.readTasks(ctx, c, id)
	if err != nil {
		return list.List{}, err
	}
	return list.List{Identifier: domain.Identifier(id), Name: name, Tasks: tasks}, nil
}

// readTasks loads a List's Tasks in insertion order with one pipelined round
// trip for the task hashes.
func (s *Store) readTasks(ctx context.Context, c redis.Cmdable, listID string) ([]task.Task, error) {
	ids, err := c.ZRange(ctx, s.keys.listTasks(listID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("reading tasks of list %s: %w", listID, err)
	}
	if len(ids) == 0 {
		return []task.Task{}, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(ids))
	_, err = c.Pipelined(ctx, func(p redis.Pipeliner) error {
		for i, tid := range ids {
			cmds[i] = p.HGetAll(ctx, s.keys.task(tid))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading tasks of list %s: %w", listID, err)
	}

	tasks := make([]task.Task, len(ids))
	for i, cmd := range cmds {
		t, err := toDomainTask(ids[i], cmd.Val())
		if err != nil {
			return nil, err
		}
		tasks[i] = t
	}
	return tasks, nil
}
