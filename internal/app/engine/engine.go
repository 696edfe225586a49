// Package engine implements the asynchronous storage engine. Every operation
// is submitted to a single worker goroutine that owns the backing store, runs
// as one store transaction, is classified into the storage error taxonomy and
// completes exactly once on a caller-chosen queue.
//
// Usage:
//
//	eng := engine.New(store, engine.WithQueue(mainLoop))
//	defer eng.Close()
//
//	eng.FetchLists(ctx, func(res ports.Result[[]list.List]) {
//	    lists, err := res.Get()
//	    ...
//	})
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/list"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/task"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/dispatch"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

// TracerName is the instrumentation scope of the engine's spans.
const TracerName = "storage-engine"

// ErrClosed is the cause attached to operations submitted after Close.
var ErrClosed = errors.New("storage engine closed")

// errPanic marks a cause recovered from a panicking store call.
var errPanic = errors.New("store panicked")

var (
	attrListID = attribute.Key("list_id")
	attrTaskID = attribute.Key("task_id")
)

// Compile-time checks.
var (
	_ ports.Storage       = (*Engine)(nil)
	_ ports.HealthChecker = (*Engine)(nil)
)

// Engine is the asynchronous storage engine. All Engines derived from one
// New call through On share a single worker, so operations from every view
// run one at a time in submission order.
type Engine struct {
	w     *worker
	queue ports.Queue
}

type worker struct {
	store   ports.Store
	policy  list.DeletePolicy
	logger  *slog.Logger
	metrics *telemetry.Metrics
	tracer  trace.Tracer
	now     func() time.Time

	jobs   chan func()
	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// New starts an engine over store. The engine does not close the store.
func New(store ports.Store, opts ...Option) *Engine {
	o := options{
		queue:     dispatch.Go{},
		policy:    list.DeleteCascade,
		logger:    slog.New(slog.DiscardHandler),
		now:       time.Now,
		queueSize: defaultQueueSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer(TracerName)
	}
	if !o.policy.IsValid() {
		o.logger.Warn("unknown delete policy, using cascade",
			slog.String("delete_policy", o.policy.String()),
		)
		o.policy = list.DeleteCascade
	}

	w := &worker{
		store:   store,
		policy:  o.policy,
		logger:  o.logger,
		metrics: o.metrics,
		tracer:  o.tracer,
		now:     o.now,
		jobs:    make(chan func(), o.queueSize),
		done:    make(chan struct{}),
	}
	go w.run()

	return &Engine{w: w, queue: o.queue}
}

// On returns a view of the engine that delivers completions on q. The view
// shares the worker and the lifecycle of e.
func (e *Engine) On(q ports.Queue) *Engine {
	return &Engine{w: e.w, queue: q}
}

// Close stops accepting work, waits for every submitted operation to run and
// stops the worker. Completions of drained operations are still dispatched.
// Close is idempotent and closes the engine for all views.
func (e *Engine) Close() error {
	w := e.w
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.jobs)
	}
	w.mu.Unlock()

	<-w.done
	return nil
}

// Name implements ports.HealthChecker.
func (e *Engine) Name() string {
	return TracerName
}

// HealthCheck reports the engine unhealthy once closed, and otherwise
// delegates to the store.
func (e *Engine) HealthCheck(ctx context.Context) error {
	e.w.mu.RLock()
	closed := e.w.closed
	e.w.mu.RUnlock()
	if closed {
		return ErrClosed
	}
	if err := e.w.store.HealthCheck(ctx); err != nil {
		return fmt.Errorf("%s: %w", e.w.store.Name(), err)
	}
	return nil
}

// FetchLists implements ports.ListStorage.
func (e *Engine) FetchLists(ctx context.Context, done ports.Done[[]list.List]) {
	submit(ctx, e, fetchOp("FetchLists"), done, func(ctx context.Context) ([]list.List, error) {
		lists, err := e.w.store.FetchLists(ctx)
		if err != nil {
			return nil, err
		}
		if lists == nil {
			lists = []list.List{}
		}
		for i := range lists {
			task.SortNewestFirst(lists[i].Tasks)
		}
		return lists, nil
	})
}

// SaveList implements ports.ListStorage.
func (e *Engine) SaveList(ctx context.Context, l list.List, done ports.Done[struct{}]) {
	l.Tasks = append([]task.Task(nil), l.Tasks...)
	op := mutateOp("SaveList", domain.ErrCannotCreate, attrListID.String(l.Identifier.String()))

	submit(ctx, e, op, done, func(ctx context.Context) (struct{}, error) {
		if err := l.Validate(); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, e.w.store.InsertList(ctx, l)
	})
}

// UpdateList implements ports.ListStorage. Only the name is written.
func (e *Engine) UpdateList(ctx context.Context, l list.List, done ports.Done[struct{}]) {
	op := mutateOp("UpdateList", domain.ErrCannotUpdate, attrListID.String(l.Identifier.String()))
	renamed := list.List{Identifier: l.Identifier, Name: l.Name}

	submit(ctx, e, op, done, func(ctx context.Context) (struct{}, error) {
		if err := renamed.Validate(); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, e.w.store.UpdateList(ctx, renamed)
	})
}

// DeleteList implements ports.ListStorage.
func (e *Engine) DeleteList(ctx context.Context, id domain.Identifier, done ports.Done[struct{}]) {
	op := mutateOp("DeleteList", domain.ErrCannotDelete, attrListID.String(id.String()))

	submit(ctx, e, op, done, func(ctx context.Context) (struct{}, error) {
		if err := requireID("list_id", id); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, e.w.store.DeleteList(ctx, id, e.w.policy)
	})
}

// FetchTasks implements ports.TaskStorage.
func (e *Engine) FetchTasks(ctx context.Context, listID domain.Identifier, done ports.Done[[]task.Task]) {
	op := fetchOp("FetchTasks", attrListID.String(listID.String()))

	submit(ctx, e, op, done, func(ctx context.Context) ([]task.Task, error) {
		if err := requireID("list_id", listID); err != nil {
			return nil, err
		}
		tasks, err := e.w.store.FetchTasks(ctx, listID)
		if err != nil {
			return nil, err
		}
		if tasks == nil {
			tasks = []task.Task{}
		}
		task.SortNewestFirst(tasks)
		return tasks, nil
	})
}

// FetchTaskOwner implements ports.TaskStorage.
func (e *Engine) FetchTaskOwner(ctx context.Context, taskID domain.Identifier, done ports.Done[domain.Identifier]) {
	op := fetchOp("FetchTaskOwner", attrTaskID.String(taskID.String()))

	submit(ctx, e, op, done, func(ctx context.Context) (domain.Identifier, error) {
		if err := requireID("task_id", taskID); err != nil {
			return "", err
		}
		return e.w.store.TaskOwner(ctx, taskID)
	})
}

// CreateTask implements ports.TaskStorage. A zero identifier, creation date or
// status is filled in at submission time.
func (e *Engine) CreateTask(ctx context.Context, listID domain.Identifier, t task.Task, done ports.Done[domain.Identifier]) {
	if t.Identifier.IsZero() {
		t.Identifier = domain.NewIdentifier()
	}
	if t.CreationDate.IsZero() {
		t.CreationDate = e.w.now().Round(0)
	}
	if t.Status == "" {
		t.Status = task.StatusUndone
	}
	op := mutateOp("CreateTask", domain.ErrCannotCreate,
		attrListID.String(listID.String()),
		attrTaskID.String(t.Identifier.String()),
	)

	submit(ctx, e, op, done, func(ctx context.Context) (domain.Identifier, error) {
		if err := requireID("list_id", listID); err != nil {
			return "", err
		}
		if err := t.Validate(); err != nil {
			return "", err
		}
		if err := e.w.store.InsertTask(ctx, listID, t); err != nil {
			return "", err
		}
		return t.Identifier, nil
	})
}

// DeleteTask implements ports.TaskStorage.
func (e *Engine) DeleteTask(ctx context.Context, taskID domain.Identifier, done ports.Done[struct{}]) {
	op := mutateOp("DeleteTask", domain.ErrCannotDelete, attrTaskID.String(taskID.String()))

	submit(ctx, e, op, done, func(ctx context.Context) (struct{}, error) {
		if err := requireID("task_id", taskID); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, e.w.store.DeleteTask(ctx, taskID)
	})
}

// UpdateTaskName implements ports.TaskStorage.
func (e *Engine) UpdateTaskName(ctx context.Context, taskID domain.Identifier, name string, done ports.Done[struct{}]) {
	op := mutateOp("UpdateTaskName", domain.ErrCannotUpdate, attrTaskID.String(taskID.String()))

	submit(ctx, e, op, done, func(ctx context.Context) (struct{}, error) {
		fields := make(map[string]string)
		if taskID.IsZero() {
			fields["task_id"] = domain.MsgRequired
		}
		if strings.TrimSpace(name) == "" {
			fields["name"] = domain.MsgRequired
		}
		if len(fields) > 0 {
			return struct{}{}, &domain.ValidationError{Fields: fields}
		}
		return struct{}{}, e.w.store.RenameTask(ctx, taskID, name)
	})
}

// UpdateTaskDone implements ports.TaskStorage.
func (e *Engine) UpdateTaskDone(ctx context.Context, taskID domain.Identifier, isDone bool, done ports.Done[struct{}]) {
	op := mutateOp("UpdateTaskDone", domain.ErrCannotUpdate, attrTaskID.String(taskID.String()))

	submit(ctx, e, op, done, func(ctx context.Context) (struct{}, error) {
		if err := requireID("task_id", taskID); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, e.w.store.SetTaskStatus(ctx, taskID, task.StatusFromDone(isDone))
	})
}

// Await submits one operation through start and blocks until it completes or
// ctx is done. The completion queue must not be serviced by the calling
// goroutine, or Await never returns.
func Await[T any](ctx context.Context, start func(done ports.Done[T])) (T, error) {
	ch := make(chan ports.Result[T], 1)
	start(func(res ports.Result[T]) {
		ch <- res
	})

	select {
	case res := <-ch:
		return res.Get()
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (w *worker) run() {
	defer close(w.done)
	for job := range w.jobs {
		job()
	}
}

// enqueue hands job to the worker. It reports false once the engine is closed.
func (w *worker) enqueue(job func()) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return false
	}
	w.jobs <- job
	return true
}

func (w *worker) logFailure(ctx context.Context, op operation, err error) {
	attrs := make([]any, 0, len(op.ids)+2)
	attrs = append(attrs, slog.String("operation", op.name))
	for _, kv := range op.ids {
		attrs = append(attrs, slog.String(string(kv.Key), kv.Value.AsString()))
	}
	attrs = append(attrs, slog.Any("error", err))

	if errors.Is(err, domain.ErrInternal) {
		w.logger.ErrorContext(ctx, "storage operation failed", attrs...)
		return
	}
	w.logger.WarnContext(ctx, "storage operation rejected", attrs...)
}

// submit queues work on the engine's worker and arranges for done to be
// called exactly once on the engine's completion queue.
func submit[T any](ctx context.Context, e *Engine, op operation, done ports.Done[T], work func(context.Context) (T, error)) {
	w, q := e.w, e.queue
	deliver := func(res ports.Result[T]) {
		if done == nil {
			return
		}
		q.Dispatch(func() { done(res) })
	}

	w.metrics.QueueDelta(ctx, 1)
	accepted := w.enqueue(func() {
		res := execute(ctx, w, op, work)
		w.metrics.QueueDelta(ctx, -1)
		deliver(res)
	})
	if accepted {
		return
	}

	w.metrics.QueueDelta(ctx, -1)
	err := &domain.StorageError{Op: op.name, Kind: domain.ErrInternal, Err: ErrClosed}
	w.metrics.RecordOperation(ctx, op.name, domain.KindName(err.Kind), 0)
	w.logFailure(ctx, op, err)
	deliver(ports.Result[T]{Err: err})
}

// execute runs one operation on the worker goroutine. Submitted work always
// runs to completion: the caller's cancellation and deadline are dropped, its
// values (trace context, logger) are kept.
func execute[T any](ctx context.Context, w *worker, op operation, work func(context.Context) (T, error)) ports.Result[T] {
	ctx, span := w.tracer.Start(context.WithoutCancel(ctx), "storage."+op.name,
		trace.WithAttributes(telemetry.AttrOperation.String(op.name)),
		trace.WithAttributes(telemetry.AttrBackend.String(w.store.Name())),
		trace.WithAttributes(op.ids...),
	)
	defer span.End()

	start := time.Now()
	value, err := protect(ctx, work)
	err = classify(op, err)
	w.metrics.RecordOperation(ctx, op.name, domain.KindName(domain.KindOf(err)), time.Since(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		w.logFailure(ctx, op, err)
		var zero T
		return ports.Result[T]{Value: zero, Err: err}
	}
	return ports.Result[T]{Value: value}
}

// protect runs work, turning a panic into an error.
func protect[T any](ctx context.Context, work func(context.Context) (T, error)) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			value, err = zero, fmt.Errorf("%w: %v", errPanic, r)
		}
	}()
	return work(ctx)
}

func requireID(field string, id domain.Identifier) error {
	if id.IsZero() {
		return &domain.ValidationError{Fields: map[string]string{field: domain.MsgRequired}}
	}
	return nil
}
