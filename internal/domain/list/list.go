// Package list defines the List entity: a named, ordered container that owns
// its Tasks.
package list

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/task"
)

// List is a named collection of Tasks. Tasks are ordered newest first; the
// order is derived on every read and never stored.
type List struct {
	Identifier domain.Identifier
	Name       string
	Tasks      []task.Task
}

// New returns an empty List with a fresh identifier.
func New(name string) List {
	return List{
		Identifier: domain.NewIdentifier(),
		Name:       name,
	}
}

// Validate checks business rules for the List entity and its owned tasks.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (l *List) Validate() error {
	fields := make(map[string]string)

	if l.Identifier.IsZero() {
		fields["identifier"] = domain.MsgRequired
	}
	if strings.TrimSpace(l.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	for i := range l.Tasks {
		if err := l.Tasks[i].Validate(); err != nil {
			fields[fmt.Sprintf("tasks[%d]", i)] = err.Error()
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// DeletePolicy decides what happens to a List's Tasks when the List is deleted.
type DeletePolicy string

const (
	// DeleteCascade removes the owned Tasks in the same transaction.
	DeleteCascade DeletePolicy = "cascade"
	// DeleteReject refuses to delete a List that still owns Tasks.
	DeleteReject DeletePolicy = "reject"
)

// IsValid returns true if the policy is one of the defined constants.
func (p DeletePolicy) IsValid() bool {
	switch p {
	case DeleteCascade, DeleteReject:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (p DeletePolicy) String() string {
	return string(p)
}
