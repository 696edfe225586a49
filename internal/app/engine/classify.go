package engine

import (
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
)

// operation describes one engine call for classification, logging and
// tracing.
type operation struct {
	name string
	kind error
	ids  []attribute.KeyValue
}

func fetchOp(name string, ids ...attribute.KeyValue) operation {
	return operation{name: name, kind: domain.ErrCannotFetch, ids: ids}
}

func mutateOp(name string, kind error, ids ...attribute.KeyValue) operation {
	return operation{name: name, kind: kind, ids: ids}
}

// classify maps a store cause onto the storage taxonomy.
//
// Reads fail as ErrCannotFetch whatever the cause. Mutations fail with their
// own kind when the cause is a missing entity, a conflict or invalid input;
// any other cause is a backend fault and becomes ErrInternal. Panics are
// always ErrInternal.
func classify(op operation, err error) error {
	if err == nil {
		return nil
	}

	kind := op.kind
	switch {
	case errors.Is(err, errPanic):
		kind = domain.ErrInternal
	case errors.Is(op.kind, domain.ErrCannotFetch):
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrValidation):
	default:
		kind = domain.ErrInternal
	}

	return &domain.StorageError{Op: op.name, Kind: kind, Err: err}
}
