// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
//
// Services follow one cycle for every intent: submit the change to storage,
// refetch, publish the fresh rows to the table and, after a create, focus the
// new row. Failures are shown through the ErrorPresenter and the refetch
// restores the authoritative rows.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/list"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/logging"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

// Compile-time check that ListService implements ports.ListService.
var _ ports.ListService = (*ListService)(nil)

// ListService implements ports.ListService on top of the asynchronous list
// storage. All callbacks run on the storage completion queue.
type ListService struct {
	storage ports.ListStorage
	table   ports.RowTable
	errs    ports.ErrorPresenter
	logger  *slog.Logger
}

// NewListService creates a ListService publishing rows to table and failures
// to errs. With a nil logger the service logs through the logger carried by
// each call's context.
func NewListService(storage ports.ListStorage, table ports.RowTable, errs ports.ErrorPresenter, logger *slog.Logger) *ListService {
	return &ListService{
		storage: storage,
		table:   table,
		errs:    errs,
		logger:  logger,
	}
}

// Bind connects the table's gestures: editing renames, deleting deletes and
// tapping a row calls onOpen, which may be nil.
func (s *ListService) Bind(ctx context.Context, onOpen func(id domain.Identifier)) {
	s.table.SetCallbacks(ports.RowCallbacks{
		OnItemTap: onOpen,
		OnCellTextCommitted: func(id domain.Identifier, text string) {
			s.Rename(ctx, id, text, nil)
		},
		OnDeleteTap: func(id domain.Identifier) {
			s.Delete(ctx, id, nil)
		},
	})
}

// Load implements ports.ListService.
func (s *ListService) Load(ctx context.Context, then ports.Then) {
	s.log(ctx).DebugContext(ctx, "loading lists")
	s.refresh(ctx, "", nil, then)
}

// Create implements ports.ListService.
func (s *ListService) Create(ctx context.Context, name string, then ports.Then) domain.Identifier {
	l := list.New(name)
	s.log(ctx).InfoContext(ctx, "creating list",
		slog.String("list_id", l.Identifier.String()),
		slog.String("name", name),
	)

	s.table.SetItems(append(s.table.Items(), listRow(l)))
	s.table.FocusOnItem(l.Identifier)

	s.storage.SaveList(ctx, l, func(res ports.Result[struct{}]) {
		if res.Err != nil {
			s.fail(ctx, "SaveList", l.Identifier, res.Err)
			s.refresh(ctx, "", res.Err, then)
			return
		}
		s.refresh(ctx, l.Identifier, nil, then)
	})
	return l.Identifier
}

// Rename implements ports.ListService.
func (s *ListService) Rename(ctx context.Context, id domain.Identifier, name string, then ports.Then) {
	s.log(ctx).InfoContext(ctx, "renaming list", slog.String("list_id", id.String()))

	s.storage.UpdateList(ctx, list.List{Identifier: id, Name: name}, s.afterMutation(ctx, "UpdateList", id, then))
}

// Delete implements ports.ListService.
func (s *ListService) Delete(ctx context.Context, id domain.Identifier, then ports.Then) {
	s.log(ctx).InfoContext(ctx, "deleting list", slog.String("list_id", id.String()))

	s.storage.DeleteList(ctx, id, s.afterMutation(ctx, "DeleteList", id, then))
}

func (s *ListService) afterMutation(ctx context.Context, op string, id domain.Identifier, then ports.Then) ports.Done[struct{}] {
	return func(res ports.Result[struct{}]) {
		if res.Err != nil {
			s.fail(ctx, op, id, res.Err)
		}
		s.refresh(ctx, "", res.Err, then)
	}
}

// refresh refetches every List, publishes the rows and focuses focus when
// set. then receives cause, or the fetch error when cause is nil.
func (s *ListService) refresh(ctx context.Context, focus domain.Identifier, cause error, then ports.Then) {
	s.storage.FetchLists(ctx, func(res ports.Result[[]list.List]) {
		lists, err := res.Get()
		if err != nil {
			s.log(ctx).ErrorContext(ctx, "failed to fetch lists",
				slog.String("operation", "FetchLists"),
				slog.Any("error", err),
			)
			s.errs.ShowError(err)
			finish(then, firstErr(cause, err))
			return
		}

		rows := make([]ports.Row, len(lists))
		for i := range lists {
			rows[i] = listRow(lists[i])
		}
		s.table.SetItems(rows)
		if !focus.IsZero() {
			s.table.FocusOnItem(focus)
		}
		finish(then, cause)
	})
}

func (s *ListService) fail(ctx context.Context, op string, id domain.Identifier, err error) {
	s.log(ctx).ErrorContext(ctx, "list operation failed",
		slog.String("operation", op),
		slog.String("list_id", id.String()),
		slog.Any("error", err),
	)
	s.errs.ShowError(err)
}

func listRow(l list.List) ports.Row {
	return ports.Row{ID: l.Identifier, Text: l.Name}
}

func finish(then ports.Then, err error) {
	if then != nil {
		then(err)
	}
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *ListService) log(ctx context.Context) *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return logging.FromContext(ctx)
}
