package ports

import (
	"context"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
)

// Then is an optional continuation fired on the completion queue once a
// service call has finished updating the view. err is nil on success.
type Then func(err error)

// ListService drives the screen that shows all Lists. Every call is
// asynchronous: it submits storage work and returns immediately.
type ListService interface {
	// Load fetches all Lists and publishes them as rows.
	Load(ctx context.Context, then Then)

	// Create shows a new List row immediately, persists it, then refetches
	// and focuses it. Returns the identifier assigned to the new List.
	Create(ctx context.Context, name string, then Then) domain.Identifier

	// Rename changes a List's name and refetches.
	Rename(ctx context.Context, id domain.Identifier, name string, then Then)

	// Delete removes a List and refetches.
	Delete(ctx context.Context, id domain.Identifier, then Then)
}

// TaskService drives the screen that shows the Tasks of one List.
type TaskService interface {
	// Load fetches the List's Tasks and publishes them as rows.
	Load(ctx context.Context, then Then)

	// Create shows a new Task row immediately, persists it, then refetches
	// and focuses it. Returns the identifier assigned to the new Task.
	Create(ctx context.Context, name string, then Then) domain.Identifier

	// Rename changes a Task's name and refetches.
	Rename(ctx context.Context, id domain.Identifier, name string, then Then)

	// SetDone changes a Task's status and refetches.
	SetDone(ctx context.Context, id domain.Identifier, done bool, then Then)

	// Delete removes a Task and refetches.
	Delete(ctx context.Context, id domain.Identifier, then Then)

	// SetAllDone sets the status of every Task in the List. Individual
	// failures do not stop the others; they are reported in the result.
	SetAllDone(ctx context.Context, done bool, then func(BulkResult))
}

// BulkFailure records one failed item of a bulk operation.
type BulkFailure struct {
	ID  domain.Identifier
	Err error
}

// BulkResult holds the outcome of a bulk operation. Err is set when the
// items could not be listed and nothing was attempted.
type BulkResult struct {
	Updated []domain.Identifier
	Failed  []BulkFailure
	Err     error
}
