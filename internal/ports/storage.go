package ports

import (
	"context"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/list"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/task"
)

// Result is the outcome of one asynchronous storage operation. Exactly one of
// Value and Err is meaningful: Err is nil on success, and on failure it is a
// *domain.StorageError classified into the storage taxonomy.
type Result[T any] struct {
	Value T
	Err   error
}

// Get unpacks the result in the usual Go (value, error) shape.
func (r Result[T]) Get() (T, error) {
	return r.Value, r.Err
}

// OK reports whether the operation succeeded.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Done is a completion callback. It fires exactly once per submitted
// operation, on the Queue chosen by the caller, and never on the goroutine
// that submitted the operation.
type Done[T any] func(Result[T])

// Queue is an execution context that completions are redispatched onto,
// typically the UI's main loop.
type Queue interface {
	Dispatch(fn func())
}

// ListStorage is the asynchronous storage port for Lists.
type ListStorage interface {
	// FetchLists returns all Lists. No Lists is a success with an empty slice.
	// Failure kind: domain.ErrCannotFetch.
	FetchLists(ctx context.Context, done Done[[]list.List])

	// SaveList inserts a new List.
	// Failure kind: domain.ErrCannotCreate, or domain.ErrInternal.
	SaveList(ctx context.Context, l list.List, done Done[struct{}])

	// UpdateList renames an existing List.
	// Failure kind: domain.ErrCannotUpdate when no such List, or domain.ErrInternal.
	UpdateList(ctx context.Context, l list.List, done Done[struct{}])

	// DeleteList removes a List and applies the configured delete policy to
	// its Tasks.
	// Failure kind: domain.ErrCannotDelete when not found or rejected, or
	// domain.ErrInternal.
	DeleteList(ctx context.Context, id domain.Identifier, done Done[struct{}])
}

// TaskStorage is the asynchronous storage port for Tasks.
type TaskStorage interface {
	// FetchTasks returns the List's Tasks ordered by CreationDate descending.
	// A List with no Tasks is a success with an empty slice.
	// Failure kind: domain.ErrCannotFetch.
	FetchTasks(ctx context.Context, listID domain.Identifier, done Done[[]task.Task])

	// FetchTaskOwner returns the identifier of the List owning the Task.
	// Failure kind: domain.ErrCannotFetch.
	FetchTaskOwner(ctx context.Context, taskID domain.Identifier, done Done[domain.Identifier])

	// CreateTask appends a Task to the List and returns its identifier.
	// Failure kind: domain.ErrCannotCreate when the List does not exist, or
	// domain.ErrInternal.
	CreateTask(ctx context.Context, listID domain.Identifier, t task.Task, done Done[domain.Identifier])

	// DeleteTask removes a Task.
	// Failure kind: domain.ErrCannotDelete when not found, or domain.ErrInternal.
	DeleteTask(ctx context.Context, taskID domain.Identifier, done Done[struct{}])

	// UpdateTaskName changes only the Task's name.
	// Failure kind: domain.ErrCannotUpdate when not found, or domain.ErrInternal.
	UpdateTaskName(ctx context.Context, taskID domain.Identifier, name string, done Done[struct{}])

	// UpdateTaskDone changes only the Task's status.
	// Failure kind: domain.ErrCannotUpdate when not found, or domain.ErrInternal.
	UpdateTaskDone(ctx context.Context, taskID domain.Identifier, isDone bool, done Done[struct{}])
}

// Storage is the full asynchronous storage engine surface.
type Storage interface {
	ListStorage
	TaskStorage
}
