package presenter_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmf/fieldops/internal/domain/model"
	apperrors "github.com/openmf/fieldops/internal/errors"
	"github.com/openmf/fieldops/internal/observability/statsd"
	"github.com/openmf/fieldops/internal/presenter"
	"github.com/openmf/fieldops/internal/testutil"
)

const testPageSize = 3

type centersFixture struct {
	h       *harness
	pages   *fakePages[model.Center]
	store   *fakeSnapshot[model.Center]
	metrics *statsd.Recorder
	p       *presenter.ListPresenter[model.Center]
}

func newCentersFixture(t *testing.T) *centersFixture {
	t.Helper()
	f := &centersFixture{
		h:       newHarness(t),
		pages:   newFakePages[model.Center](),
		store:   newFakeSnapshot[model.Center](),
		metrics: statsd.NewRecorder(),
	}
	f.p = presenter.NewListPresenter(presenter.ListPresenterOptions[model.Center]{
		Source: presenter.ListSource[model.Center]{
			Fetch:    f.pages.Fetch,
			Snapshot: f.store.ListAll,
		},
		Poster:  f.h,
		Config:  presenter.ListConfig{Screen: "centers", PageSize: testPageSize, EmptyMessage: "No centers found"},
		Metrics: f.metrics,
	})
	return f
}

func (f *centersFixture) attach(t *testing.T) *listView[model.Center] {
	t.Helper()
	v := &listView[model.Center]{}
	require.NoError(t, f.p.AttachView(v))
	return v
}

// loadFirst issues the first page and applies it.
func (f *centersFixture) loadFirst(t *testing.T, page model.Page[model.Center]) {
	t.Helper()
	require.True(t, f.p.LoadFirstPage(t.Context()))
	f.pages.next(t).resolve(page, nil)
	f.h.settle(t, f.h.ran+1)
}

func TestNewListPresenterRequiresDependencies(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		presenter.NewListPresenter(presenter.ListPresenterOptions[model.Center]{Poster: newHarness(t)})
	})
	assert.Panics(t, func() {
		presenter.NewListPresenter(presenter.ListPresenterOptions[model.Center]{
			Source: presenter.ListSource[model.Center]{Fetch: newFakePages[model.Center]().Fetch},
		})
	})
}

func TestListPresenterAttachView(t *testing.T) {
	t.Parallel()
	f := newCentersFixture(t)

	assert.ErrorIs(t, f.p.AttachView(nil), presenter.ErrNoView)
	f.attach(t)
	assert.ErrorIs(t, f.p.AttachView(&listView[model.Center]{}), presenter.ErrViewAttached)

	f.p.DetachView()
	f.p.DetachView()
	assert.NoError(t, f.p.AttachView(&listView[model.Center]{}))
}

func TestListPresenterRequiresView(t *testing.T) {
	t.Parallel()
	f := newCentersFixture(t)

	assert.False(t, f.p.LoadFirstPage(t.Context()))
	assert.False(t, f.p.LoadNextPage(t.Context(), 3))
	assert.False(t, f.p.LoadLocalSnapshot(t.Context()))
	f.pages.none(t)
}

func TestListPresenterFirstPage(t *testing.T) {
	t.Parallel()
	f := newCentersFixture(t)
	v := f.attach(t)

	require.True(t, f.p.LoadFirstPage(t.Context()))
	assert.Equal(t, presenter.StateLoading, f.p.State())
	assert.True(t, f.p.Loading())

	call := f.pages.next(t)
	assert.Equal(t, 0, call.req.Offset)
	assert.Equal(t, testPageSize, call.req.Limit)

	call.resolve(testutil.PageOf(7, testutil.Centers(1, 3)...), nil)
	f.h.settle(t, 1)

	assert.Equal(t, []string{"busy", "busy", "list"}, v.kinds())
	assert.True(t, v.events[0].busy)
	assert.False(t, v.events[1].busy)
	assert.Equal(t, []int64{1, 2, 3}, v.displayed())
	assert.Equal(t, presenter.StateLoaded, f.p.State())
	assert.False(t, f.p.Loading())
	assert.False(t, f.p.Exhausted())
	assert.Equal(t, 3, f.p.Len())
}

func TestListPresenterAppendsPagesInServerOrder(t *testing.T) {
	t.Parallel()
	f := newCentersFixture(t)
	v := f.attach(t)
	all := testutil.Centers(1, 8)

	f.loadFirst(t, testutil.PageOf(len(all), all[0:3]...))

	for _, next := range []struct {
		offset int
		items  []model.Center
	}{
		{offset: 3, items: all[3:6]},
		{offset: 6, items: all[6:8]},
	} {
		require.True(t, f.p.LoadNextPage(t.Context(), f.p.Len()))
		call := f.pages.next(t)
		require.Equal(t, next.offset, call.req.Offset)
		call.resolve(testutil.PageOf(len(all), next.items...), nil)
		f.h.settle(t, f.h.ran+1)
	}

	assert.Equal(t, model.IDs(all), v.displayed())
	assert.Equal(t, model.IDs(all), model.IDs(f.p.Items()))
	assert.True(t, f.p.Exhausted())
	assert.False(t, f.p.LoadNextPage(t.Context(), f.p.Len()), "no request past the last page")
	f.pages.none(t)
}

func TestListPresenterSuppressesConcurrentLoadMore(t *testing.T) {
	t.Parallel()
	f := newCentersFixture(t)
	v := f.attach(t)
	f.loadFirst(t, testutil.PageOf(9, testutil.Centers(1, 3)...))

	require.True(t, f.p.LoadNextPage(t.Context(), 3))
	assert.False(t, f.p.LoadNextPage(t.Context(), 3), "same page while in flight")
	assert.False(t, f.p.LoadNextPage(t.Context(), 6), "any page while in flight")

	call := f.pages.next(t)
	f.pages.none(t)
	call.resolve(testutil.PageOf(9, testutil.Centers(4, 6)...), nil)
	f.h.settle(t, f.h.ran+1)

	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, v.displayed())
	assert.True(t, f.p.LoadNextPage(t.Context(), 6), "accepted again once resolved")
}

func TestListPresenterRefreshSupersedesLoadMore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		refreshFirst bool
	}{
		{name: "load more completes first", refreshFirst: false},
		{name: "refresh completes first", refreshFirst: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newCentersFixture(t)
			v := f.attach(t)
			f.loadFirst(t, testutil.PageOf(9, testutil.Centers(1, 3)...))
			before := len(v.events)

			require.True(t, f.p.LoadNextPage(t.Context(), 3))
			more := f.pages.next(t)
			require.True(t, f.p.LoadFirstPage(t.Context()))
			refresh := f.pages.next(t)
			require.Equal(t, 0, refresh.req.Offset)

			morePage := testutil.PageOf(9, testutil.Centers(4, 6)...)
			refreshPage := testutil.PageOf(3, testutil.Centers(10, 12)...)
			if tt.refreshFirst {
				refresh.resolve(refreshPage, nil)
				f.h.settle(t, f.h.ran+1)
				more.resolve(morePage, nil)
			} else {
				more.resolve(morePage, nil)
				f.h.settle(t, f.h.ran+1)
				refresh.resolve(refreshPage, nil)
			}
			f.h.settle(t, f.h.ran+1)

			assert.Equal(t, []int64{10, 11, 12}, v.displayed())
			assert.Equal(t, []int64{10, 11, 12}, model.IDs(f.p.Items()))
			assert.Equal(t, []string{"busy", "busy", "list"}, v.kinds()[before:],
				"one busy cycle, then only the refresh result")
			assert.Contains(t, f.metrics.Lines(), "list.load:1|c|#page:next,result:stale,screen:centers")
		})
	}
}

func TestListPresenterFirstPageEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		page model.Page[model.Center]
		err  error
	}{
		{name: "zero entities", page: testutil.PageOf[model.Center](0)},
		{name: "empty result error", err: apperrors.Empty("nothing here")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newCentersFixture(t)
			v := f.attach(t)

			require.True(t, f.p.LoadFirstPage(t.Context()))
			f.pages.next(t).resolve(tt.page, tt.err)
			f.h.settle(t, 1)

			assert.Equal(t, []string{"busy", "busy", "empty"}, v.kinds())
			e, _ := v.last("empty")
			assert.Equal(t, "No centers found", e.msg)
			assert.Equal(t, presenter.StateEmpty, f.p.State())
			assert.False(t, f.p.LoadNextPage(t.Context(), 1))
		})
	}
}

func TestListPresenterFirstPageFailure(t *testing.T) {
	t.Parallel()

	t.Run("first load", func(t *testing.T) {
		t.Parallel()
		f := newCentersFixture(t)
		v := f.attach(t)

		require.True(t, f.p.LoadFirstPage(t.Context()))
		f.pages.next(t).resolve(model.Page[model.Center]{}, &apperrors.TransportError{
			Op: "list_centers", Status: http.StatusInternalServerError, Message: "Database unavailable",
		})
		f.h.settle(t, 1)

		assert.Equal(t, []string{"busy", "busy", "error"}, v.kinds())
		e, _ := v.last("error")
		assert.Equal(t, "Database unavailable", e.msg)
		assert.Equal(t, presenter.StateFailed, f.p.State())
		assert.Empty(t, v.displayed())
		assert.False(t, f.p.LoadNextPage(t.Context(), 1), "failed list does not page")

		f.loadFirst(t, testutil.PageOf(2, testutil.Centers(1, 2)...))
		assert.Equal(t, presenter.StateLoaded, f.p.State())
		assert.Equal(t, []int64{1, 2}, v.displayed())
	})

	t.Run("refresh keeps the list", func(t *testing.T) {
		t.Parallel()
		f := newCentersFixture(t)
		v := f.attach(t)
		f.loadFirst(t, testutil.PageOf(2, testutil.Centers(1, 2)...))

		require.True(t, f.p.LoadFirstPage(t.Context()))
		f.pages.next(t).resolve(model.Page[model.Center]{}, &apperrors.TransportError{Op: "list_centers"})
		f.h.settle(t, 2)

		e, _ := v.last("error")
		assert.Equal(t, apperrors.DefaultTransportMessage, e.msg)
		assert.Equal(t, []int64{1, 2}, v.displayed())
		assert.Equal(t, []int64{1, 2}, model.IDs(f.p.Items()))
	})
}

func TestListPresenterLoadMoreFailure(t *testing.T) {
	t.Parallel()
	failure := &apperrors.TransportError{Op: "list_centers", Status: http.StatusBadGateway, Message: "Gateway timeout"}

	t.Run("message view", func(t *testing.T) {
		t.Parallel()
		f := newCentersFixture(t)
		v := &messageListView[model.Center]{}
		require.NoError(t, f.p.AttachView(v))
		f.loadFirst(t, testutil.PageOf(9, testutil.Centers(1, 3)...))

		require.True(t, f.p.LoadNextPage(t.Context(), 3))
		f.pages.next(t).resolve(model.Page[model.Center]{}, failure)
		f.h.settle(t, 2)

		assert.Equal(t, []string{"Gateway timeout"}, v.messages)
		_, sawError := v.last("error")
		assert.False(t, sawError)
		assert.Equal(t, presenter.StateLoaded, f.p.State())
		assert.Equal(t, []int64{1, 2, 3}, v.displayed())
		assert.True(t, f.p.LoadNextPage(t.Context(), 3), "load more can be retried")
	})

	t.Run("plain view", func(t *testing.T) {
		t.Parallel()
		f := newCentersFixture(t)
		v := f.attach(t)
		f.loadFirst(t, testutil.PageOf(9, testutil.Centers(1, 3)...))

		require.True(t, f.p.LoadNextPage(t.Context(), 3))
		f.pages.next(t).resolve(model.Page[model.Center]{}, failure)
		f.h.settle(t, 2)

		e, ok := v.last("error")
		require.True(t, ok)
		assert.Equal(t, "Gateway timeout", e.msg)
		assert.Equal(t, []int64{1, 2, 3}, v.displayed())
	})
}

func TestListPresenterLoadMoreSkipsDuplicates(t *testing.T) {
	t.Parallel()
	f := newCentersFixture(t)
	v := f.attach(t)
	f.loadFirst(t, testutil.PageOf(9, testutil.Centers(1, 3)...))

	require.True(t, f.p.LoadNextPage(t.Context(), 3))
	f.pages.next(t).resolve(testutil.PageOf(9, testutil.Centers(3, 5)...), nil)
	f.h.settle(t, 2)

	e, _ := v.last("appended")
	assert.Equal(t, []int64{4, 5}, e.ids)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, v.displayed())
}

func TestListPresenterEmptyNextPageExhausts(t *testing.T) {
	t.Parallel()
	f := newCentersFixture(t)
	v := f.attach(t)
	f.loadFirst(t, testutil.PageOf(0, testutil.Centers(1, 3)...))
	before := len(v.events)

	require.True(t, f.p.LoadNextPage(t.Context(), 3))
	f.pages.next(t).resolve(testutil.PageOf[model.Center](3), nil)
	f.h.settle(t, 2)

	assert.Equal(t, []string{"busy", "busy"}, v.kinds()[before:])
	assert.True(t, f.p.Exhausted())
	assert.Equal(t, presenter.StateLoaded, f.p.State())
}

func TestListPresenterDetachSilencesView(t *testing.T) {
	t.Parallel()
	f := newCentersFixture(t)
	v := f.attach(t)
	f.loadFirst(t, testutil.PageOf(9, testutil.Centers(1, 3)...))

	require.True(t, f.p.LoadNextPage(t.Context(), 3))
	more := f.pages.next(t)
	require.True(t, f.p.LoadLocalSnapshot(t.Context()))
	before := len(v.events)

	f.p.DetachView()
	assert.Equal(t, presenter.StateIdle, f.p.State())
	assert.Zero(t, f.p.Len())

	more.resolve(testutil.PageOf(9, testutil.Centers(4, 6)...), nil)
	f.store.resolve(t, testutil.Centers(1, 2), nil)
	f.h.settle(t, 3)

	assert.Len(t, v.events, before, "no callbacks after detach")
	assert.False(t, f.p.LoadFirstPage(t.Context()))

	next := f.attach(t)
	f.loadFirst(t, testutil.PageOf(1, testutil.Centers(20, 20)...))
	assert.Equal(t, []int64{20}, next.displayed())
	assert.Len(t, v.events, before)
}

func TestListPresenterSnapshotBeforeNetwork(t *testing.T) {
	t.Parallel()
	f := newCentersFixture(t)
	v := f.attach(t)

	require.True(t, f.p.LoadLocalSnapshot(t.Context()))
	require.True(t, f.p.LoadFirstPage(t.Context()))
	network := f.pages.next(t)

	f.store.resolve(t, testutil.Centers(1, 2), nil)
	f.h.settle(t, 1)
	assert.Equal(t, []int64{1, 2}, v.displayed(), "snapshot fills the screen while the network loads")
	assert.Equal(t, presenter.StateLoading, f.p.State())

	network.resolve(testutil.PageOf(3, testutil.Centers(1, 3)...), nil)
	f.h.settle(t, 2)

	assert.Equal(t, []int64{1, 2, 3}, v.displayed())
	synced := map[int64]bool{}
	for _, c := range f.p.Items() {
		synced[c.ID] = c.Synced
	}
	assert.Equal(t, map[int64]bool{1: true, 2: true, 3: false}, synced)
}

func TestListPresenterSnapshotNeverReplacesNetwork(t *testing.T) {
	t.Parallel()
	f := newCentersFixture(t)
	v := f.attach(t)

	require.True(t, f.p.LoadLocalSnapshot(t.Context()))
	f.loadFirst(t, testutil.PageOf(3, testutil.Centers(5, 7)...))

	f.store.resolve(t, []model.Center{testutil.NewCenter(6).Build(), testutil.NewCenter(99).Build()}, nil)
	f.h.settle(t, 2)

	assert.Equal(t, []int64{5, 6, 7}, v.displayed())
	items := f.p.Items()
	assert.False(t, items[0].Synced)
	assert.True(t, items[1].Synced)
	assert.False(t, items[2].Synced)
	assert.Equal(t, presenter.StateLoaded, f.p.State())
}

func TestListPresenterSnapshotOnly(t *testing.T) {
	t.Parallel()
	f := newCentersFixture(t)
	v := f.attach(t)

	require.True(t, f.p.LoadLocalSnapshot(t.Context()))
	f.store.resolve(t, testutil.Centers(1, 4), nil)
	f.h.settle(t, 1)

	assert.Equal(t, []int64{1, 2, 3, 4}, v.displayed())
	assert.Equal(t, presenter.StateLoaded, f.p.State())
	assert.False(t, f.p.LoadNextPage(t.Context(), 4), "snapshot offsets are not server offsets")
	for _, c := range f.p.Items() {
		assert.True(t, c.Synced)
	}
}

func TestListPresenterSnapshotFailure(t *testing.T) {
	t.Parallel()
	f := newCentersFixture(t)
	v := &messageListView[model.Center]{}
	require.NoError(t, f.p.AttachView(v))

	require.True(t, f.p.LoadLocalSnapshot(t.Context()))
	f.store.resolve(t, nil, apperrors.Internal("store is locked"))
	f.h.settle(t, 1)

	assert.Equal(t, []string{"store is locked"}, v.messages)
	assert.Empty(t, v.events)
}

func TestListPresenterShowItems(t *testing.T) {
	t.Parallel()
	f := newCentersFixture(t)
	v := f.attach(t)

	require.True(t, f.p.LoadFirstPage(t.Context()))
	pending := f.pages.next(t)

	require.True(t, f.p.ShowItems(testutil.Centers(30, 31)))
	pending.resolve(testutil.PageOf(3, testutil.Centers(1, 3)...), nil)
	f.h.settle(t, 1)

	assert.Equal(t, []int64{30, 31}, v.displayed())
	assert.False(t, f.p.LoadFirstPage(t.Context()))
	assert.False(t, f.p.LoadNextPage(t.Context(), 2))
	f.pages.none(t)

	require.True(t, f.p.ShowItems(nil))
	assert.Equal(t, presenter.StateEmpty, f.p.State())
	e, _ := v.last("empty")
	assert.Equal(t, "No centers found", e.msg)
}

func TestStateString(t *testing.T) {
	t.Parallel()
	tests := map[presenter.State]string{
		presenter.StateIdle:    "idle",
		presenter.StateLoading: "loading",
		presenter.StateLoaded:  "loaded",
		presenter.StateEmpty:   "empty",
		presenter.StateFailed:  "failed",
		presenter.State(42):    "unknown",
	}
	for state, want := range tests {
		assert.Equal(t, want, state.String())
	}
}
