// Package dispatch provides the execution contexts that storage completions
// are redispatched onto.
//
// MainLoop runs queued work on whichever goroutine calls Run, the same way a
// UI toolkit runs callbacks on its main thread:
//
//	loop := dispatch.NewMainLoop()
//	engine.On(loop).FetchLists(ctx, func(r ports.Result[[]list.List]) {
//	    render(r)
//	    loop.Stop()
//	})
//	err := loop.Run(ctx)
//
// Serial owns a background goroutine and runs queued work one item at a time
// in submission order. Go runs each item on a fresh goroutine.
//
// Dispatch never blocks and never runs work on the calling goroutine.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Queue = (*MainLoop)(nil)
	_ ports.Queue = (*Serial)(nil)
	_ ports.Queue = Go{}
)

// Option configures a MainLoop or Serial queue.
type Option func(*MainLoop)

// WithLogger sets the logger used to report panics raised by queued work.
func WithLogger(logger *slog.Logger) Option {
	return func(l *MainLoop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// MainLoop is a FIFO of work executed by Run on the caller's goroutine.
type MainLoop struct {
	mu       sync.Mutex
	pending  []func()
	stopping bool
	wake     chan struct{}
	logger   *slog.Logger
}

// NewMainLoop creates an idle loop. Work dispatched before Run is kept.
func NewMainLoop(opts ...Option) *MainLoop {
	l := &MainLoop{
		wake:   make(chan struct{}, 1),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Dispatch queues fn for the next Run iteration.
func (l *MainLoop) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.pending = append(l.pending, fn)
	l.mu.Unlock()
	l.signal()
}

// Stop asks Run to return once everything already queued has run.
// Safe to call from queued work.
func (l *MainLoop) Stop() {
	l.mu.Lock()
	l.stopping = true
	l.mu.Unlock()
	l.signal()
}

// Run executes queued work on the calling goroutine until Stop is called or
// ctx is done. It returns nil after Stop, or ctx.Err().
// A loop may be run again after Run returns.
func (l *MainLoop) Run(ctx context.Context) error {
	for {
		batch, stop := l.take()
		for _, fn := range batch {
			l.invoke(fn)
		}
		if stop && len(batch) == 0 {
			return nil
		}
		if len(batch) > 0 {
			continue
		}

		select {
		case <-l.wake:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// take removes the queued work. When the queue is empty and a stop was
// requested it also clears the request, so the loop can be run again.
func (l *MainLoop) take() ([]func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	batch := l.pending
	l.pending = nil
	stop := l.stopping
	if stop && len(batch) == 0 {
		l.stopping = false
	}
	return batch, stop
}

func (l *MainLoop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// invoke runs fn, converting a panic into an error log so one broken
// callback cannot take down the loop.
func (l *MainLoop) invoke(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("panic in dispatched work",
				slog.String("operation", "dispatch.invoke"),
				slog.Any("error", fmt.Errorf("panic: %v", r)),
			)
		}
	}()
	fn()
}

// Serial runs dispatched work on one background goroutine in submission order.
type Serial struct {
	loop   *MainLoop
	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// NewSerial starts the background goroutine. Call Close to stop it.
func NewSerial(opts ...Option) *Serial {
	s := &Serial{
		loop: NewMainLoop(opts...),
		done: make(chan struct{}),
	}
	go func() {
		defer close(s.done)
		_ = s.loop.Run(context.Background())
	}()
	return s
}

// Dispatch queues fn. After Close, fn runs on its own goroutine so no
// completion is ever dropped.
func (s *Serial) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		go s.loop.invoke(fn)
		return
	}
	s.loop.Dispatch(fn)
}

// Close runs the work already queued, then stops the goroutine.
// Close is idempotent.
func (s *Serial) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		<-s.done
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.loop.Stop()
	<-s.done
}

// Go runs each dispatched function on a new goroutine.
type Go struct{}

// Dispatch starts fn on a new goroutine.
func (Go) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	go fn()
}
