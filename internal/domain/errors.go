package domain

import (
	"errors"
	"fmt"
	"strings"
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// Sentinel errors describing why a backend call failed. Backends return
// these (wrapped) as causes; they never reach callers unclassified.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)

// Storage taxonomy. Every failed storage operation is classified as exactly
// one of these kinds.
var (
	ErrCannotFetch  = errors.New("cannot fetch")
	ErrCannotCreate = errors.New("cannot create")
	ErrCannotUpdate = errors.New("cannot update")
	ErrCannotDelete = errors.New("cannot delete")
	ErrInternal     = errors.New("internal error")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// StorageError is the failure delivered by the storage engine. Kind is one of
// the taxonomy sentinels; Err is the underlying cause and may be nil.
//
// Both are reachable through errors.Is:
//
//	errors.Is(err, domain.ErrCannotDelete) // classification
//	errors.Is(err, domain.ErrNotFound)     // cause
type StorageError struct {
	Op   string
	Kind error
	Err  error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *StorageError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns the taxonomy sentinel carried by err, or nil when err is not
// a classified storage failure.
func KindOf(err error) error {
	var serr *StorageError
	if errors.As(err, &serr) {
		return serr.Kind
	}
	return nil
}

// KindName returns a short, stable label for a taxonomy kind, suitable for
// metric attributes and log fields.
func KindName(kind error) string {
	switch {
	case kind == nil:
		return "success"
	case errors.Is(kind, ErrCannotFetch):
		return "cannot_fetch"
	case errors.Is(kind, ErrCannotCreate):
		return "cannot_create"
	case errors.Is(kind, ErrCannotUpdate):
		return "cannot_update"
	case errors.Is(kind, ErrCannotDelete):
		return "cannot_delete"
	default:
		return "internal_error"
	}
}
