package dispatch_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-todo-lists/internal/platform/dispatch"
)

func TestMainLoop_RunsWorkOnRunGoroutineInOrder(t *testing.T) {
	t.Parallel()

	loop := dispatch.NewMainLoop()
	var got []int

	for i := range 5 {
		loop.Dispatch(func() { got = append(got, i) })
	}
	loop.Dispatch(loop.Stop)

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}

	want := []int{0, 1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("ran %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestMainLoop_DispatchFromOtherGoroutine(t *testing.T) {
	t.Parallel()

	loop := dispatch.NewMainLoop()
	ran := false

	go func() {
		time.Sleep(10 * time.Millisecond)
		loop.Dispatch(func() {
			ran = true
			loop.Stop()
		})
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := loop.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	if !ran {
		t.Error("dispatched work did not run")
	}
}

func TestMainLoop_StopDrainsWorkQueuedByWork(t *testing.T) {
	t.Parallel()

	loop := dispatch.NewMainLoop()
	var order []string

	loop.Dispatch(func() {
		order = append(order, "first")
		loop.Stop()
		loop.Dispatch(func() { order = append(order, "second") })
	})

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(order) != 2 || order[1] != "second" {
		t.Errorf("order = %v, want [first second]", order)
	}
}

func TestMainLoop_ContextCancel(t *testing.T) {
	t.Parallel()

	loop := dispatch.NewMainLoop()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := loop.Run(ctx); err != context.Canceled {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestMainLoop_RecoversPanics(t *testing.T) {
	t.Parallel()

	loop := dispatch.NewMainLoop()
	after := false

	loop.Dispatch(func() { panic("boom") })
	loop.Dispatch(func() { after = true })
	loop.Dispatch(loop.Stop)

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !after {
		t.Error("work after a panicking item did not run")
	}
}

func TestMainLoop_Rerun(t *testing.T) {
	t.Parallel()

	loop := dispatch.NewMainLoop()
	count := 0

	for range 2 {
		loop.Dispatch(func() { count++ })
		loop.Dispatch(loop.Stop)
		if err := loop.Run(context.Background()); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestSerial_OrderAndSingleGoroutine(t *testing.T) {
	t.Parallel()

	q := dispatch.NewSerial()
	defer q.Close()

	var (
		mu      sync.Mutex
		got     []int
		wg      sync.WaitGroup
		running int
		maxRun  int
	)

	for i := range 50 {
		wg.Add(1)
		q.Dispatch(func() {
			defer wg.Done()
			mu.Lock()
			running++
			if running > maxRun {
				maxRun = running
			}
			got = append(got, i)
			mu.Unlock()

			mu.Lock()
			running--
			mu.Unlock()
		})
	}
	wg.Wait()

	if maxRun != 1 {
		t.Errorf("max concurrent items = %d, want 1", maxRun)
	}
	for i := range got {
		if got[i] != i {
			t.Fatalf("got[%d] = %d, want submission order", i, got[i])
		}
	}
}

func TestSerial_DispatchAfterCloseStillRuns(t *testing.T) {
	t.Parallel()

	q := dispatch.NewSerial()
	q.Close()
	q.Close()

	done := make(chan struct{})
	q.Dispatch(func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("work dispatched after Close never ran")
	}
}

func TestGo_Dispatch(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	dispatch.Go{}.Dispatch(func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Go.Dispatch work never ran")
	}
}
