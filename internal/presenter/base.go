package presenter

import (
	"context"

	"github.com/openmf/fieldops/internal/ui/loop"
)

// binding is the one-to-one link between a presenter and its view. gen
// advances on every attach and detach, so a result stamped with an older
// generation can never reach a view.
type binding[V any] struct {
	view     V
	attached bool
	gen      uint64
}

func (b *binding[V]) attach(v V) error {
	if any(v) == nil {
		return ErrNoView
	}
	if b.attached {
		return ErrViewAttached
	}
	b.view = v
	b.attached = true
	b.gen++
	return nil
}

// detach reports whether a view was attached.
func (b *binding[V]) detach() bool {
	if !b.attached {
		return false
	}
	var zero V
	b.view = zero
	b.attached = false
	b.gen++
	return true
}

func (b *binding[V]) current() (V, bool) {
	return b.view, b.attached
}

// at returns the view only if it is still the one attached at generation gen.
func (b *binding[V]) at(gen uint64) (V, bool) {
	if !b.attached || gen != b.gen {
		var zero V
		return zero, false
	}
	return b.view, true
}

// sequence numbers requests in issue order. Only the latest is current.
type sequence struct {
	last uint64
}

func (s *sequence) next() uint64 { s.last++; return s.last }

func (s *sequence) current(id uint64) bool { return id == s.last }

// busyCounter keeps the progress indicator on while any request is out.
type busyCounter struct {
	n int
}

func (c *busyCounter) start(v StatusView) {
	c.n++
	if c.n == 1 {
		v.PresentBusy(true)
	}
}

func (c *busyCounter) done(v StatusView) {
	if c.n == 0 {
		return
	}
	c.n--
	if c.n == 0 {
		v.PresentBusy(false)
	}
}

// dispatch runs work on a new goroutine and posts deliver with its result
// back to the UI goroutine.
func dispatch[R any](p loop.Poster, ctx context.Context, work func(context.Context) (R, error), deliver func(R, error)) {
	go func() {
		r, err := work(ctx)
		p.Post(func() { deliver(r, err) })
	}()
}
