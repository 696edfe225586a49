package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/go-todo-lists/internal/app/bulk"
	"github.com/jsamuelsen11/go-todo-lists/internal/app/engine"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/task"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/logging"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

// DefaultBulkLimit bounds the number of in-flight updates of SetAllDone.
const DefaultBulkLimit = 4

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService for the Tasks of one List.
type TaskService struct {
	listID    domain.Identifier
	storage   ports.TaskStorage
	table     ports.RowTable
	errs      ports.ErrorPresenter
	logger    *slog.Logger
	now       func() time.Time
	bulkLimit int
}

// TaskServiceOption configures a TaskService.
type TaskServiceOption func(*TaskService)

// WithTaskClock sets the clock stamping optimistic rows and new Tasks.
func WithTaskClock(now func() time.Time) TaskServiceOption {
	return func(s *TaskService) {
		s.now = now
	}
}

// WithBulkLimit sets how many updates SetAllDone keeps in flight.
func WithBulkLimit(n int) TaskServiceOption {
	return func(s *TaskService) {
		if n > 0 {
			s.bulkLimit = n
		}
	}
}

// NewTaskService creates a TaskService for the List listID. With a nil logger
// the service logs through the logger carried by each call's context.
func NewTaskService(listID domain.Identifier, storage ports.TaskStorage, table ports.RowTable, errs ports.ErrorPresenter, logger *slog.Logger, opts ...TaskServiceOption) *TaskService {
	s := &TaskService{
		listID:    listID,
		storage:   storage,
		table:     table,
		errs:      errs,
		logger:    logger,
		now:       time.Now,
		bulkLimit: DefaultBulkLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListID returns the List whose Tasks the service shows.
func (s *TaskService) ListID() domain.Identifier {
	return s.listID
}

// Bind connects the table's gestures: editing renames, deleting deletes and
// flipping the switch sets the status.
func (s *TaskService) Bind(ctx context.Context) {
	s.table.SetCallbacks(ports.RowCallbacks{
		OnCellTextCommitted: func(id domain.Identifier, text string) {
			s.Rename(ctx, id, text, nil)
		},
		OnDeleteTap: func(id domain.Identifier) {
			s.Delete(ctx, id, nil)
		},
		OnDoneToggled: func(id domain.Identifier, done bool) {
			s.SetDone(ctx, id, done, nil)
		},
	})
}

// Load implements ports.TaskService.
func (s *TaskService) Load(ctx context.Context, then ports.Then) {
	s.log(ctx).DebugContext(ctx, "loading tasks")
	s.refresh(ctx, "", nil, then)
}

// Create implements ports.TaskService. The new row is shown first, matching
// the newest-first order.
func (s *TaskService) Create(ctx context.Context, name string, then ports.Then) domain.Identifier {
	t := task.New(name, s.now().Round(0))
	s.log(ctx).InfoContext(ctx, "creating task",
		slog.String("task_id", t.Identifier.String()),
		slog.String("name", name),
	)

	s.table.SetItems(append([]ports.Row{taskRow(t)}, s.table.Items()...))
	s.table.FocusOnItem(t.Identifier)

	s.storage.CreateTask(ctx, s.listID, t, func(res ports.Result[domain.Identifier]) {
		id, err := res.Get()
		if err != nil {
			s.fail(ctx, "CreateTask", t.Identifier, err)
			s.refresh(ctx, "", err, then)
			return
		}
		s.refresh(ctx, id, nil, then)
	})
	return t.Identifier
}

// Rename implements ports.TaskService.
func (s *TaskService) Rename(ctx context.Context, id domain.Identifier, name string, then ports.Then) {
	s.log(ctx).InfoContext(ctx, "renaming task", slog.String("task_id", id.String()))

	s.storage.UpdateTaskName(ctx, id, name, s.afterMutation(ctx, "UpdateTaskName", id, then))
}

// SetDone implements ports.TaskService.
func (s *TaskService) SetDone(ctx context.Context, id domain.Identifier, done bool, then ports.Then) {
	s.log(ctx).InfoContext(ctx, "setting task status",
		slog.String("task_id", id.String()),
		slog.Bool("done", done),
	)

	s.storage.UpdateTaskDone(ctx, id, done, s.afterMutation(ctx, "UpdateTaskDone", id, then))
}

// Delete implements ports.TaskService.
func (s *TaskService) Delete(ctx context.Context, id domain.Identifier, then ports.Then) {
	s.log(ctx).InfoContext(ctx, "deleting task", slog.String("task_id", id.String()))

	s.storage.DeleteTask(ctx, id, s.afterMutation(ctx, "DeleteTask", id, then))
}

// SetAllDone implements ports.TaskService. Tasks already in the requested
// state are skipped. The updates are awaited off the completion queue, so
// the queue must keep running while they are in flight.
func (s *TaskService) SetAllDone(ctx context.Context, done bool, then func(ports.BulkResult)) {
	s.log(ctx).InfoContext(ctx, "setting status of all tasks", slog.Bool("done", done))

	s.storage.FetchTasks(ctx, s.listID, func(res ports.Result[[]task.Task]) {
		tasks, err := res.Get()
		if err != nil {
			s.log(ctx).ErrorContext(ctx, "failed to fetch tasks",
				slog.String("operation", "SetAllDone"),
				slog.Any("error", err),
			)
			s.errs.ShowError(err)
			if then != nil {
				then(ports.BulkResult{Err: err})
			}
			return
		}

		ids := make([]domain.Identifier, 0, len(tasks))
		for i := range tasks {
			if tasks[i].IsDone() != done {
				ids = append(ids, tasks[i].Identifier)
			}
		}

		go s.applyAll(ctx, ids, done, then)
	})
}

func (s *TaskService) applyAll(ctx context.Context, ids []domain.Identifier, done bool, then func(ports.BulkResult)) {
	report := bulk.Apply(ctx, s.bulkLimit, ids, func(ctx context.Context, id domain.Identifier) error {
		_, err := engine.Await(ctx, func(cb ports.Done[struct{}]) {
			s.storage.UpdateTaskDone(ctx, id, done, cb)
		})
		return err
	})

	result := ports.BulkResult{Updated: report.Succeeded}
	errs := make([]error, 0, len(report.Failed))
	for _, f := range report.Failed {
		s.log(ctx).ErrorContext(ctx, "task status update failed",
			slog.String("operation", "SetAllDone"),
			slog.String("task_id", f.Item.String()),
			slog.Any("error", f.Err),
		)
		result.Failed = append(result.Failed, ports.BulkFailure{ID: f.Item, Err: f.Err})
		errs = append(errs, f.Err)
	}

	// Back on the completion queue before touching the presenter.
	s.refresh(ctx, "", nil, func(error) {
		if len(errs) > 0 {
			s.errs.ShowError(errors.Join(errs...))
		}
		if then != nil {
			then(result)
		}
	})
}

func (s *TaskService) afterMutation(ctx context.Context, op string, id domain.Identifier, then ports.Then) ports.Done[struct{}] {
	return func(res ports.Result[struct{}]) {
		if res.Err != nil {
			s.fail(ctx, op, id, res.Err)
		}
		s.refresh(ctx, "", res.Err, then)
	}
}

// refresh refetches the List's Tasks, publishes the rows and focuses focus
// when set. then receives cause, or the fetch error when cause is nil.
func (s *TaskService) refresh(ctx context.Context, focus domain.Identifier, cause error, then ports.Then) {
	s.storage.FetchTasks(ctx, s.listID, func(res ports.Result[[]task.Task]) {
		tasks, err := res.Get()
		if err != nil {
			s.log(ctx).ErrorContext(ctx, "failed to fetch tasks",
				slog.String("operation", "FetchTasks"),
				slog.Any("error", err),
			)
			s.errs.ShowError(err)
			finish(then, firstErr(cause, err))
			return
		}

		rows := make([]ports.Row, len(tasks))
		for i := range tasks {
			rows[i] = taskRow(tasks[i])
		}
		s.table.SetItems(rows)
		if !focus.IsZero() {
			s.table.FocusOnItem(focus)
		}
		finish(then, cause)
	})
}

func (s *TaskService) fail(ctx context.Context, op string, id domain.Identifier, err error) {
	s.log(ctx).ErrorContext(ctx, "task operation failed",
		slog.String("operation", op),
		slog.String("task_id", id.String()),
		slog.Any("error", err),
	)
	s.errs.ShowError(err)
}

func taskRow(t task.Task) ports.Row {
	return ports.Row{
		ID:        t.Identifier,
		Text:      t.Name,
		Checkable: true,
		Done:      t.IsDone(),
	}
}

func (s *TaskService) log(ctx context.Context) *slog.Logger {
	logger := s.logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}
	return logger.With(slog.String("list_id", s.listID.String()))
}
