package app

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/storage/sqlstore"
	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/table"
	"github.com/jsamuelsen11/go-todo-lists/internal/app/engine"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/dispatch"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
	"github.com/jsamuelsen11/go-todo-lists/mocks"
)

var errDisk = errors.New("disk I/O error")

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// trackedQueue is a serial queue that knows when it is running a callback.
type trackedQueue struct {
	serial  *dispatch.Serial
	running atomic.Bool
}

func (q *trackedQueue) Dispatch(fn func()) {
	q.serial.Dispatch(func() {
		q.running.Store(true)
		defer q.running.Store(false)
		fn()
	})
}

// onQueue reports whether the caller runs inside a queued callback.
func (q *trackedQueue) onQueue() bool {
	return q.running.Load()
}

// fixture is one screen: an engine delivering on a serial queue, a director
// drawing through a permissive renderer mock, and an error presenter mock.
type fixture struct {
	eng      *engine.Engine
	queue    *trackedQueue
	director *table.Director
	renderer *mocks.MockRowRenderer
	errs     *mocks.MockErrorPresenter
}

func newFixture(t *testing.T, store ports.Store) *fixture {
	t.Helper()

	queue := &trackedQueue{serial: dispatch.NewSerial()}
	eng := engine.New(store, engine.WithQueue(queue))
	t.Cleanup(func() {
		_ = eng.Close()
		queue.serial.Close()
	})

	renderer := mocks.NewMockRowRenderer(t)
	renderer.EXPECT().Reload(mock.Anything).Return().Maybe()
	renderer.EXPECT().Focus(mock.Anything).Return().Maybe()
	renderer.EXPECT().Deselect(mock.Anything).Return().Maybe()

	return &fixture{
		eng:      eng,
		queue:    queue,
		director: table.NewDirector(renderer),
		renderer: renderer,
		errs:     mocks.NewMockErrorPresenter(t),
	}
}

func newSQLFixture(t *testing.T) *fixture {
	t.Helper()

	store, err := sqlstore.New(sqlstore.Config{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return newFixture(t, store)
}

func newMockFixture(t *testing.T) (*fixture, *mocks.MockStore) {
	t.Helper()

	store := mocks.NewMockStore(t)
	store.EXPECT().Name().Return("mock").Maybe()
	return newFixture(t, store), store
}

// wait runs start and blocks until its continuation fires.
func wait(t *testing.T, start func(then ports.Then)) error {
	t.Helper()

	ch := make(chan error, 1)
	start(func(err error) { ch <- err })
	select {
	case err := <-ch:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("continuation never fired")
		return nil
	}
}

func rowTexts(rows []ports.Row) []string {
	texts := make([]string, len(rows))
	for i := range rows {
		texts[i] = rows[i].Text
	}
	return texts
}

func awaitOp[T any](t *testing.T, start func(done ports.Done[T])) T {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	v, err := engine.Await(ctx, start)
	require.NoError(t, err)
	return v
}
