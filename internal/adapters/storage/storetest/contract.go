// Package storetest holds the behavioural contract every ports.Store backend
// must satisfy, as a reusable test suite.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/list"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/task"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

// Factory returns an empty store. The suite closes it.
type Factory func(t *testing.T) ports.Store

var base = time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)

// NewTask returns an undone task created offset after a fixed instant.
func NewTask(name string, offset time.Duration) task.Task {
	return task.New(name, base.Add(offset))
}

// RunStoreContract verifies that the stores produced by newStore honour the
// ports.Store contract.
func RunStoreContract(t *testing.T, newStore Factory) {
	t.Helper()

	open := func(t *testing.T) ports.Store {
		t.Helper()
		s := newStore(t)
		t.Cleanup(func() { _ = s.Close() })
		return s
	}
	ctx := context.Background()

	t.Run("empty store fetches no lists", func(t *testing.T) {
		s := open(t)

		lists, err := s.FetchLists(ctx)
		require.NoError(t, err)
		assert.NotNil(t, lists)
		assert.Empty(t, lists)
	})

	t.Run("lists come back in insertion order with tasks", func(t *testing.T) {
		s := open(t)
		groceries := list.New("Groceries")
		groceries.Tasks = []task.Task{NewTask("milk", 0), NewTask("eggs", time.Minute)}
		work := list.New("Work")

		require.NoError(t, s.InsertList(ctx, groceries))
		require.NoError(t, s.InsertList(ctx, work))

		lists, err := s.FetchLists(ctx)
		require.NoError(t, err)
		require.Len(t, lists, 2)

		assert.Equal(t, groceries.Identifier, lists[0].Identifier)
		assert.Equal(t, "Groceries", lists[0].Name)
		AssertTasks(t, groceries.Tasks, lists[0].Tasks)

		assert.Equal(t, work.Identifier, lists[1].Identifier)
		assert.Empty(t, lists[1].Tasks)
	})

	t.Run("duplicate list identifier conflicts", func(t *testing.T) {
		s := open(t)
		l := list.New("Home")
		require.NoError(t, s.InsertList(ctx, l))

		err := s.InsertList(ctx, list.List{Identifier: l.Identifier, Name: "Other"})
		assert.ErrorIs(t, err, domain.ErrConflict)

		lists, err := s.FetchLists(ctx)
		require.NoError(t, err)
		require.Len(t, lists, 1)
		assert.Equal(t, "Home", lists[0].Name)
	})

	t.Run("insert list with duplicate task leaves nothing behind", func(t *testing.T) {
		s := open(t)
		first := list.New("First")
		shared := NewTask("shared", 0)
		first.Tasks = []task.Task{shared}
		require.NoError(t, s.InsertList(ctx, first))

		second := list.New("Second")
		second.Tasks = []task.Task{NewTask("fresh", 0), shared}
		err := s.InsertList(ctx, second)
		assert.ErrorIs(t, err, domain.ErrConflict)

		lists, err := s.FetchLists(ctx)
		require.NoError(t, err)
		assert.Len(t, lists, 1)
		_, err = s.FetchTasks(ctx, second.Identifier)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("update list renames only", func(t *testing.T) {
		s := open(t)
		l := list.New("Old")
		l.Tasks = []task.Task{NewTask("keep me", 0)}
		require.NoError(t, s.InsertList(ctx, l))

		require.NoError(t, s.UpdateList(ctx, list.List{Identifier: l.Identifier, Name: "New"}))

		lists, err := s.FetchLists(ctx)
		require.NoError(t, err)
		require.Len(t, lists, 1)
		assert.Equal(t, "New", lists[0].Name)
		AssertTasks(t, l.Tasks, lists[0].Tasks)
	})

	t.Run("update missing list is not found", func(t *testing.T) {
		s := open(t)

		err := s.UpdateList(ctx, list.New("ghost"))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("cascade delete removes list and tasks", func(t *testing.T) {
		s := open(t)
		l := list.New("Doomed")
		doomed := NewTask("doomed", 0)
		l.Tasks = []task.Task{doomed}
		keep := list.New("Keep")
		kept := NewTask("kept", 0)
		keep.Tasks = []task.Task{kept}
		require.NoError(t, s.InsertList(ctx, l))
		require.NoError(t, s.InsertList(ctx, keep))

		require.NoError(t, s.DeleteList(ctx, l.Identifier, list.DeleteCascade))

		lists, err := s.FetchLists(ctx)
		require.NoError(t, err)
		require.Len(t, lists, 1)
		assert.Equal(t, keep.Identifier, lists[0].Identifier)

		_, err = s.TaskOwner(ctx, doomed.Identifier)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		owner, err := s.TaskOwner(ctx, kept.Identifier)
		require.NoError(t, err)
		assert.Equal(t, keep.Identifier, owner)
	})

	t.Run("reject delete keeps list that owns tasks", func(t *testing.T) {
		s := open(t)
		l := list.New("Busy")
		l.Tasks = []task.Task{NewTask("pending", 0)}
		require.NoError(t, s.InsertList(ctx, l))

		err := s.DeleteList(ctx, l.Identifier, list.DeleteReject)
		assert.ErrorIs(t, err, domain.ErrConflict)

		tasks, err := s.FetchTasks(ctx, l.Identifier)
		require.NoError(t, err)
		AssertTasks(t, l.Tasks, tasks)
	})

	t.Run("reject delete removes empty list", func(t *testing.T) {
		s := open(t)
		l := list.New("Empty")
		require.NoError(t, s.InsertList(ctx, l))

		require.NoError(t, s.DeleteList(ctx, l.Identifier, list.DeleteReject))

		lists, err := s.FetchLists(ctx)
		require.NoError(t, err)
		assert.Empty(t, lists)
	})

	t.Run("delete missing list is not found", func(t *testing.T) {
		s := open(t)

		for _, policy := range []list.DeletePolicy{list.DeleteCascade, list.DeleteReject} {
			err := s.DeleteList(ctx, domain.NewIdentifier(), policy)
			assert.ErrorIs(t, err, domain.ErrNotFound, "policy %s", policy)
		}
	})

	t.Run("fetch tasks of missing list is not found", func(t *testing.T) {
		s := open(t)

		_, err := s.FetchTasks(ctx, domain.NewIdentifier())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("fetch tasks of empty list succeeds", func(t *testing.T) {
		s := open(t)
		l := list.New("Nothing yet")
		require.NoError(t, s.InsertList(ctx, l))

		tasks, err := s.FetchTasks(ctx, l.Identifier)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("insert task appends in insertion order", func(t *testing.T) {
		s := open(t)
		l := list.New("Chores")
		require.NoError(t, s.InsertList(ctx, l))

		later := NewTask("later", time.Hour)
		earlier := NewTask("earlier", 0)
		require.NoError(t, s.InsertTask(ctx, l.Identifier, later))
		require.NoError(t, s.InsertTask(ctx, l.Identifier, earlier))

		tasks, err := s.FetchTasks(ctx, l.Identifier)
		require.NoError(t, err)
		AssertTasks(t, []task.Task{later, earlier}, tasks)

		owner, err := s.TaskOwner(ctx, earlier.Identifier)
		require.NoError(t, err)
		assert.Equal(t, l.Identifier, owner)
	})

	t.Run("insert task into missing list is not found", func(t *testing.T) {
		s := open(t)

		err := s.InsertTask(ctx, domain.NewIdentifier(), NewTask("orphan", 0))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("duplicate task identifier conflicts", func(t *testing.T) {
		s := open(t)
		l := list.New("Dupes")
		require.NoError(t, s.InsertList(ctx, l))
		tk := NewTask("once", 0)
		require.NoError(t, s.InsertTask(ctx, l.Identifier, tk))

		err := s.InsertTask(ctx, l.Identifier, tk)
		assert.ErrorIs(t, err, domain.ErrConflict)

		tasks, err := s.FetchTasks(ctx, l.Identifier)
		require.NoError(t, err)
		assert.Len(t, tasks, 1)
	})

	t.Run("deleted task identifier is never reused", func(t *testing.T) {
		s := open(t)
		l := list.New("Reuse")
		require.NoError(t, s.InsertList(ctx, l))
		tk := NewTask("first life", 0)
		require.NoError(t, s.InsertTask(ctx, l.Identifier, tk))
		require.NoError(t, s.DeleteTask(ctx, tk.Identifier))

		again := NewTask("second life", time.Second)
		again.Identifier = tk.Identifier
		err := s.InsertTask(ctx, l.Identifier, again)
		assert.ErrorIs(t, err, domain.ErrConflict)

		tasks, err := s.FetchTasks(ctx, l.Identifier)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("deleted list identifier is never reused", func(t *testing.T) {
		s := open(t)
		l := list.New("Gone")
		l.Tasks = []task.Task{NewTask("with it", 0)}
		require.NoError(t, s.InsertList(ctx, l))
		require.NoError(t, s.DeleteList(ctx, l.Identifier, list.DeleteCascade))

		err := s.InsertList(ctx, list.List{Identifier: l.Identifier, Name: "Back"})
		assert.ErrorIs(t, err, domain.ErrConflict)

		lists, err := s.FetchLists(ctx)
		require.NoError(t, err)
		assert.Empty(t, lists)
	})

	t.Run("lists and tasks share one identifier space", func(t *testing.T) {
		s := open(t)
		l := list.New("Owner")
		tk := NewTask("owned", 0)
		l.Tasks = []task.Task{tk}
		require.NoError(t, s.InsertList(ctx, l))

		err := s.InsertList(ctx, list.List{Identifier: tk.Identifier, Name: "Impostor"})
		assert.ErrorIs(t, err, domain.ErrConflict)

		clash := NewTask("clash", time.Second)
		clash.Identifier = l.Identifier
		err = s.InsertTask(ctx, l.Identifier, clash)
		assert.ErrorIs(t, err, domain.ErrConflict)

		lists, err := s.FetchLists(ctx)
		require.NoError(t, err)
		require.Len(t, lists, 1)
		AssertTasks(t, []task.Task{tk}, lists[0].Tasks)
	})

	t.Run("task owner of missing task is not found", func(t *testing.T) {
		s := open(t)

		_, err := s.TaskOwner(ctx, domain.NewIdentifier())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete task", func(t *testing.T) {
		s := open(t)
		l := list.New("Errands")
		gone := NewTask("gone", 0)
		stay := NewTask("stay", time.Second)
		l.Tasks = []task.Task{gone, stay}
		require.NoError(t, s.InsertList(ctx, l))

		require.NoError(t, s.DeleteTask(ctx, gone.Identifier))

		tasks, err := s.FetchTasks(ctx, l.Identifier)
		require.NoError(t, err)
		AssertTasks(t, []task.Task{stay}, tasks)

		_, err = s.TaskOwner(ctx, gone.Identifier)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		err = s.DeleteTask(ctx, gone.Identifier)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("rename task changes only the name", func(t *testing.T) {
		s := open(t)
		l := list.New("Edits")
		tk := NewTask("draft", 0)
		tk.Status = task.StatusDone
		l.Tasks = []task.Task{tk}
		require.NoError(t, s.InsertList(ctx, l))

		require.NoError(t, s.RenameTask(ctx, tk.Identifier, "final"))

		tasks, err := s.FetchTasks(ctx, l.Identifier)
		require.NoError(t, err)
		want := tk
		want.Name = "final"
		AssertTasks(t, []task.Task{want}, tasks)
	})

	t.Run("set task status changes only the status", func(t *testing.T) {
		s := open(t)
		l := list.New("Toggles")
		tk := NewTask("flip", 0)
		l.Tasks = []task.Task{tk}
		require.NoError(t, s.InsertList(ctx, l))

		require.NoError(t, s.SetTaskStatus(ctx, tk.Identifier, task.StatusDone))

		tasks, err := s.FetchTasks(ctx, l.Identifier)
		require.NoError(t, err)
		want := tk
		want.Status = task.StatusDone
		AssertTasks(t, []task.Task{want}, tasks)

		require.NoError(t, s.SetTaskStatus(ctx, tk.Identifier, task.StatusUndone))
		tasks, err = s.FetchTasks(ctx, l.Identifier)
		require.NoError(t, err)
		AssertTasks(t, []task.Task{tk}, tasks)
	})

	t.Run("updates to missing task are not found", func(t *testing.T) {
		s := open(t)
		missing := domain.NewIdentifier()

		assert.ErrorIs(t, s.RenameTask(ctx, missing, "x"), domain.ErrNotFound)
		assert.ErrorIs(t, s.SetTaskStatus(ctx, missing, task.StatusDone), domain.ErrNotFound)
	})

	t.Run("health", func(t *testing.T) {
		s := open(t)

		assert.NotEmpty(t, s.Name())
		assert.NoError(t, s.HealthCheck(ctx))
	})
}

// AssertTasks compares tasks field by field, comparing creation dates as
// instants.
func AssertTasks(t *testing.T, want, got []task.Task) {
	t.Helper()

	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Identifier, got[i].Identifier, "tasks[%d].Identifier", i)
		assert.Equal(t, want[i].Name, got[i].Name, "tasks[%d].Name", i)
		assert.Equal(t, want[i].Status, got[i].Status, "tasks[%d].Status", i)
		assert.True(t, want[i].CreationDate.Equal(got[i].CreationDate),
			"tasks[%d].CreationDate = %v, want %v", i, got[i].CreationDate, want[i].CreationDate)
	}
}
