package presenter_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openmf/fieldops/internal/domain/model"
	"github.com/openmf/fieldops/internal/ui/loop"
)

const testTimeout = 2 * time.Second

// harness is a Poster that counts delivered results so a test can run the
// loop until a known number of them has been applied or dropped.
type harness struct {
	loop *loop.Loop
	ran  int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{loop: loop.New()}
	t.Cleanup(h.loop.Close)
	return h
}

func (h *harness) Post(fn func()) {
	h.loop.Post(func() {
		fn()
		h.ran++
	})
}

// settle runs the loop until n results in total have been delivered.
func (h *harness) settle(t *testing.T, n int) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()
	require.NoError(t, h.loop.RunUntil(ctx, func() bool { return h.ran >= n }), "waiting for %d deliveries, got %d", n, h.ran)
}

type event struct {
	kind string
	ids  []int64
	msg  string
	busy bool
}

// listView records every callback in order.
type listView[T model.Entity] struct {
	events []event
}

func (v *listView[T]) PresentList(items []T) {
	v.events = append(v.events, event{kind: "list", ids: model.IDs(items)})
}

func (v *listView[T]) PresentAppended(items []T) {
	v.events = append(v.events, event{kind: "appended", ids: model.IDs(items)})
}

func (v *listView[T]) PresentEmpty(msg string) {
	v.events = append(v.events, event{kind: "empty", msg: msg})
}

func (v *listView[T]) PresentError(msg string) {
	v.events = append(v.events, event{kind: "error", msg: msg})
}

func (v *listView[T]) PresentBusy(busy bool) {
	v.events = append(v.events, event{kind: "busy", busy: busy})
}

func (v *listView[T]) kinds() []string {
	out := make([]string, 0, len(v.events))
	for _, e := range v.events {
		out = append(out, e.kind)
	}
	return out
}

// displayed replays list callbacks into the IDs a screen would show.
func (v *listView[T]) displayed() []int64 {
	var shown []int64
	for _, e := range v.events {
		switch e.kind {
		case "list":
			shown = append([]int64(nil), e.ids...)
		case "appended":
			shown = append(shown, e.ids...)
		case "empty":
			shown = nil
		}
	}
	return shown
}

func (v *listView[T]) last(kind string) (event, bool) {
	for i := len(v.events) - 1; i >= 0; i-- {
		if v.events[i].kind == kind {
			return v.events[i], true
		}
	}
	return event{}, false
}

// messageListView adds the transient message capability.
type messageListView[T model.Entity] struct {
	listView[T]
	messages []string
}

func (v *messageListView[T]) ShowMessage(msg string) {
	v.messages = append(v.messages, msg)
}

type pageResult[T any] struct {
	page model.Page[T]
	err  error
}

// pageCall is one request made to a fakePages source.
type pageCall[T any] struct {
	req   model.PageRequest
	reply chan pageResult[T]
}

func (c pageCall[T]) resolve(page model.Page[T], err error) {
	c.reply <- pageResult[T]{page: page, err: err}
}

// fakePages blocks every fetch until the test resolves it.
type fakePages[T any] struct {
	calls chan pageCall[T]
}

func newFakePages[T any]() *fakePages[T] {
	return &fakePages[T]{calls: make(chan pageCall[T], 16)}
}

func (f *fakePages[T]) Fetch(ctx context.Context, req model.PageRequest) (model.Page[T], error) {
	c := pageCall[T]{req: req, reply: make(chan pageResult[T], 1)}
	f.calls <- c
	select {
	case r := <-c.reply:
		return r.page, r.err
	case <-ctx.Done():
		return model.Page[T]{}, ctx.Err()
	}
}

func (f *fakePages[T]) next(t *testing.T) pageCall[T] {
	t.Helper()
	select {
	case c := <-f.calls:
		return c
	case <-time.After(testTimeout):
		t.Fatal("no fetch issued")
		return pageCall[T]{}
	}
}

func (f *fakePages[T]) none(t *testing.T) {
	t.Helper()
	select {
	case c := <-f.calls:
		t.Fatalf("unexpected fetch at offset %d", c.req.Offset)
	case <-time.After(20 * time.Millisecond):
	}
}

// fakeSnapshot blocks every store read until the test resolves it.
type fakeSnapshot[T any] struct {
	calls chan chan snapshotResult[T]
}

type snapshotResult[T any] struct {
	items []T
	err   error
}

func newFakeSnapshot[T any]() *fakeSnapshot[T] {
	return &fakeSnapshot[T]{calls: make(chan chan snapshotResult[T], 4)}
}

func (f *fakeSnapshot[T]) ListAll(ctx context.Context) ([]T, error) {
	reply := make(chan snapshotResult[T], 1)
	f.calls <- reply
	select {
	case r := <-reply:
		return r.items, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (f *fakeSnapshot[T]) resolve(t *testing.T, items []T, err error) {
	t.Helper()
	select {
	case reply := <-f.calls:
		reply <- snapshotResult[T]{items: items, err: err}
	case <-time.After(testTimeout):
		t.Fatal("no snapshot read issued")
	}
}
