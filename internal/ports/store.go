package ports

import (
	"context"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/list"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/task"
)

// Store is the driven port for a persistence backend. Every method is
// synchronous and runs as a single transaction: it either applies completely
// or leaves the backend untouched.
//
// Methods return causes, not classifications. Missing entities are reported
// as domain.ErrNotFound, duplicate identifiers and rejected deletes as
// domain.ErrConflict; any other error is a backend fault. The storage engine
// turns causes into the storage taxonomy.
//
// Tasks are returned in insertion order. Callers derive display order.
type Store interface {
	// FetchLists returns every List in insertion order with its Tasks
	// populated. An empty store yields an empty slice and no error.
	FetchLists(ctx context.Context) ([]list.List, error)

	// InsertList persists a new List together with any Tasks it already owns.
	// Returns domain.ErrConflict if the identifier is taken.
	InsertList(ctx context.Context, l list.List) error

	// UpdateList renames an existing List. Owned Tasks are not touched.
	// Returns domain.ErrNotFound if the List does not exist.
	UpdateList(ctx context.Context, l list.List) error

	// DeleteList removes a List. Under list.DeleteCascade its Tasks go with
	// it; under list.DeleteReject a List that owns Tasks is left in place and
	// domain.ErrConflict is returned.
	// Returns domain.ErrNotFound if the List does not exist.
	DeleteList(ctx context.Context, id domain.Identifier, policy list.DeletePolicy) error

	// FetchTasks returns the Tasks owned by the List.
	// Returns domain.ErrNotFound if the List does not exist.
	FetchTasks(ctx context.Context, listID domain.Identifier) ([]task.Task, error)

	// TaskOwner answers the reverse lookup from a Task to its List.
	// Returns domain.ErrNotFound if the Task does not exist.
	TaskOwner(ctx context.Context, taskID domain.Identifier) (domain.Identifier, error)

	// InsertTask appends a Task to the List's owned collection.
	// Returns domain.ErrNotFound if the List does not exist, or
	// domain.ErrConflict if the Task identifier is taken.
	InsertTask(ctx context.Context, listID domain.Identifier, t task.Task) error

	// DeleteTask removes a Task.
	// Returns domain.ErrNotFound if the Task does not exist.
	DeleteTask(ctx context.Context, taskID domain.Identifier) error

	// RenameTask replaces a Task's name and nothing else.
	// Returns domain.ErrNotFound if the Task does not exist.
	RenameTask(ctx context.Context, taskID domain.Identifier, name string) error

	// SetTaskStatus replaces a Task's status and nothing else.
	// Returns domain.ErrNotFound if the Task does not exist.
	SetTaskStatus(ctx context.Context, taskID domain.Identifier, status task.Status) error

	// Close releases the backend's resources.
	Close() error

	HealthChecker
}
