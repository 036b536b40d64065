// Package tui renders the field operations screens with Bubble Tea.
//
// Presenter results are queued on a loop.Loop and drained from Update, so
// every view callback runs on the program goroutine.
package tui

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/openmf/fieldops/internal/ui/loop"
)

// drainMsg asks Update to run the queued presenter results.
type drainMsg struct{}

// Poster is a loop.Poster that wakes a Bubble Tea program.
type Poster struct {
	queue *loop.Loop
	send  atomic.Pointer[func(tea.Msg)]
	woken atomic.Bool
}

var _ loop.Poster = (*Poster)(nil)

// NewPoster creates a Poster with no program bound. Posts queue up until
// Bind is called.
func NewPoster() *Poster {
	return &Poster{queue: loop.New()}
}

// Bind routes wake-ups to p, usually (*tea.Program).Send.
func (p *Poster) Bind(send func(tea.Msg)) {
	p.send.Store(&send)
	p.wake()
}

// Post implements loop.Poster.
func (p *Poster) Post(fn func()) {
	p.queue.Post(fn)
	p.wake()
}

func (p *Poster) wake() {
	send := p.send.Load()
	if send == nil {
		return
	}
	if p.woken.CompareAndSwap(false, true) {
		go (*send)(drainMsg{})
	}
}

// Drain runs queued results on the caller's goroutine.
func (p *Poster) Drain() int {
	p.woken.Store(false)
	return p.queue.Drain()
}

// Close drops queued results and ignores later posts.
func (p *Poster) Close() { p.queue.Close() }
