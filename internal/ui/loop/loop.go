// Package loop serialises presenter state changes onto one goroutine.
//
// Background work (gateway and store calls) hands its single result back
// through a Poster; the function it posts runs on the goroutine that owns
// the screen. Nothing else touches presenter state, so presenters need no
// locks.
package loop

import (
	"context"
	"sync"
)

// Poster schedules fn to run on the UI goroutine. Post never blocks and
// may be called from any goroutine, including the UI goroutine itself.
type Poster interface {
	Post(fn func())
}

// PostFunc adapts a function to Poster.
type PostFunc func(fn func())

// Post implements Poster.
func (f PostFunc) Post(fn func()) { f(fn) }

// Loop is a Poster backed by an unbounded FIFO queue. One goroutine drives
// it with Run, Step or RunUntil.
type Loop struct {
	mu      sync.Mutex
	pending []func()
	closed  bool
	wake    chan struct{}
}

// New creates an empty Loop.
func New() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post implements Poster. Functions posted after Close are dropped.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.pending = append(l.pending, fn)
	l.mu.Unlock()
	l.signal()
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Close stops the loop. Pending functions are discarded and Run returns nil.
func (l *Loop) Close() {
	l.mu.Lock()
	l.closed = true
	l.pending = nil
	l.mu.Unlock()
	l.signal()
}

// take removes and returns the queued functions.
func (l *Loop) take() ([]func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fns := l.pending
	l.pending = nil
	return fns, l.closed
}

// Drain runs every queued function without waiting and reports how many ran.
// Functions posted while draining run in the same call.
func (l *Loop) Drain() int {
	n := 0
	for {
		fns, closed := l.take()
		if closed || len(fns) == 0 {
			return n
		}
		for _, fn := range fns {
			fn()
		}
		n += len(fns)
	}
}

// Step waits until at least one function is queued, then drains the queue.
// It returns the number of functions run, or ctx's error.
func (l *Loop) Step(ctx context.Context) (int, error) {
	for {
		if n := l.Drain(); n > 0 {
			return n, nil
		}
		if l.isClosed() {
			return 0, nil
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-l.wake:
		}
	}
}

// Run processes posted functions in order until ctx is done or Close is
// called.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if _, err := l.Step(ctx); err != nil {
			return err
		}
		if l.isClosed() {
			return nil
		}
	}
}

// RunUntil processes posted functions until cond reports true. cond is
// evaluated on the calling goroutine after every batch.
func (l *Loop) RunUntil(ctx context.Context, cond func() bool) error {
	l.Drain()
	for !cond() {
		if l.isClosed() {
			return context.Canceled
		}
		if _, err := l.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loop) isClosed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}
