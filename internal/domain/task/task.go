// Package task defines the Task entity: a named unit of work owned by exactly
// one List. A Task carries no reference to its List; ownership lives on the
// List side and the reverse lookup is answered by the storage engine.
package task

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
)

// Task is a unit of work with a name and a done/undone status.
// Identifier and CreationDate never change once the Task is created.
type Task struct {
	Identifier   domain.Identifier
	Name         string
	Status       Status
	CreationDate time.Time
}

// New returns an undone Task with a fresh identifier created at now.
func New(name string, now time.Time) Task {
	return Task{
		Identifier:   domain.NewIdentifier(),
		Name:         name,
		Status:       StatusUndone,
		CreationDate: now,
	}
}

// IsDone reports whether the task is marked done.
func (t *Task) IsDone() bool {
	return t.Status.IsDone()
}

// Validate checks business rules for the Task entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Task) Validate() error {
	fields := make(map[string]string)

	if t.Identifier.IsZero() {
		fields["identifier"] = domain.MsgRequired
	}
	if strings.TrimSpace(t.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if !t.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", t.Status)
	}
	if t.CreationDate.IsZero() {
		fields["creation_date"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// SortNewestFirst orders tasks by CreationDate descending in place. The sort
// is stable, so tasks created at the same instant keep their insertion order.
func SortNewestFirst(tasks []Task) {
	slices.SortStableFunc(tasks, func(a, b Task) int {
		return b.CreationDate.Compare(a.CreationDate)
	})
}
