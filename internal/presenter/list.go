package presenter

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/openmf/fieldops/config"
	"github.com/openmf/fieldops/internal/domain/model"
	apperrors "github.com/openmf/fieldops/internal/errors"
	"github.com/openmf/fieldops/internal/observability/metrics"
	"github.com/openmf/fieldops/internal/observability/statsd"
	"github.com/openmf/fieldops/internal/ui/loop"
)

// State is the pagination state of a ListPresenter.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateEmpty
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateEmpty:
		return "empty"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Fetcher loads one page of entities from the remote gateway.
type Fetcher[T model.Entity] func(ctx context.Context, req model.PageRequest) (model.Page[T], error)

// Snapshotter lists the entities held in the local store.
type Snapshotter[T model.Entity] func(ctx context.Context) ([]T, error)

// ListSource bundles the data access of a ListPresenter.
type ListSource[T model.Entity] struct {
	Fetch    Fetcher[T]     // Required
	Snapshot Snapshotter[T] // Optional: enables LoadLocalSnapshot
	// Params are sent with every page request.
	Params map[string]string
}

// ListConfig holds presentation settings of a list screen.
type ListConfig struct {
	// Screen tags logs and metrics.
	Screen string
	// PageSize defaults to config.DefaultPageSize.
	PageSize int
	// EmptyMessage is shown when the first page has no entities.
	EmptyMessage string
}

// ListPresenterOptions groups dependencies for ListPresenter.
type ListPresenterOptions[T model.Entity] struct {
	Source  ListSource[T] // Required: Source.Fetch must be set
	Poster  loop.Poster   // Required: delivers results on the UI goroutine
	Config  ListConfig
	Logger  *slog.Logger // Optional
	Metrics statsd.Sink  // Optional
}

// ListPresenter drives a paged entity list. It owns the pagination state of
// one screen: the accumulated entities, the next offset and the request in
// flight.
//
// At most one page request is outstanding. LoadNextPage is refused while a
// request is in flight, so rapid scroll triggers never append a page twice.
// LoadFirstPage always goes out and supersedes whatever was in flight.
//
// The local snapshot never replaces a list that came from the network. It
// only fills the screen while no network page has been applied, and
// afterwards only updates the synced flags.
type ListPresenter[T model.Entity] struct {
	source  ListSource[T]
	poster  loop.Poster
	cfg     ListConfig
	logger  *slog.Logger
	metrics statsd.Sink

	binding binding[ListView[T]]

	state     State
	items     []T
	total     int
	exhausted bool
	// fixed is set when the list was supplied by the caller; paging is off.
	fixed       bool
	fromNetwork bool

	pages    sequence
	inFlight uint64

	snapshots sequence
	synced    map[int64]struct{}
}

// NewListPresenter creates a new ListPresenter.
func NewListPresenter[T model.Entity](opts ListPresenterOptions[T]) *ListPresenter[T] {
	if opts.Source.Fetch == nil {
		panic("ListPresenter requires a Fetcher")
	}
	if opts.Poster == nil {
		panic("ListPresenter requires a Poster")
	}
	cfg := opts.Config
	if cfg.PageSize <= 0 {
		cfg.PageSize = config.DefaultPageSize
	}
	if cfg.EmptyMessage == "" {
		cfg.EmptyMessage = "Nothing to show"
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ListPresenter[T]{
		source:  opts.Source,
		poster:  opts.Poster,
		cfg:     cfg,
		logger:  logger.With("component", "list_presenter", "screen", cfg.Screen),
		metrics: opts.Metrics,
	}
}

// AttachView binds v to the presenter. Only one view may be attached at a time.
func (p *ListPresenter[T]) AttachView(v ListView[T]) error {
	return p.binding.attach(v)
}

// DetachView unbinds the view and discards the pagination state. Requests
// still in flight complete in the background; their results are dropped.
func (p *ListPresenter[T]) DetachView() {
	if !p.binding.detach() {
		return
	}
	p.state = StateIdle
	p.items = nil
	p.total = 0
	p.exhausted = false
	p.fixed = false
	p.fromNetwork = false
	p.inFlight = 0
	p.synced = nil
}

// State returns the current pagination state.
func (p *ListPresenter[T]) State() State { return p.state }

// Items returns a copy of the accumulated entities.
func (p *ListPresenter[T]) Items() []T { return slices.Clone(p.items) }

// Len returns the number of accumulated entities.
func (p *ListPresenter[T]) Len() int { return len(p.items) }

// Exhausted reports whether the server has no further pages.
func (p *ListPresenter[T]) Exhausted() bool { return p.exhausted }

// Loading reports whether a page request is in flight.
func (p *ListPresenter[T]) Loading() bool { return p.inFlight != 0 }

// LoadFirstPage requests offset 0 and replaces the list with the result. It
// reports false when no view is attached or the list was supplied by the
// caller.
func (p *ListPresenter[T]) LoadFirstPage(ctx context.Context) bool {
	view, ok := p.binding.current()
	if !ok || p.fixed {
		return false
	}
	p.issue(ctx, view, 0)
	return true
}

// LoadNextPage requests the page at offset currentCount and appends the
// result. It reports false, issuing nothing, while a request is in flight,
// before the first page has loaded and once the server is exhausted.
func (p *ListPresenter[T]) LoadNextPage(ctx context.Context, currentCount int) bool {
	view, ok := p.binding.current()
	switch {
	case !ok:
		return false
	case p.inFlight != 0:
		p.logger.Debug("load more suppressed, request in flight", "offset", currentCount)
		return false
	case p.state != StateLoaded || p.exhausted || p.fixed || currentCount <= 0:
		return false
	}
	p.issue(ctx, view, currentCount)
	return true
}

func (p *ListPresenter[T]) issue(ctx context.Context, view ListView[T], offset int) {
	if p.inFlight == 0 {
		view.PresentBusy(true)
	}
	id := p.pages.next()
	p.inFlight = id
	p.state = StateLoading
	gen := p.binding.gen
	req := model.PageRequest{Offset: offset, Limit: p.cfg.PageSize, Params: maps.Clone(p.source.Params)}
	dispatch(p.poster, ctx,
		func(ctx context.Context) (model.Page[T], error) { return p.source.Fetch(ctx, req) },
		func(page model.Page[T], err error) { p.applyPage(gen, id, offset, page, err) },
	)
}

func (p *ListPresenter[T]) applyPage(gen, id uint64, offset int, page model.Page[T], err error) {
	view, ok := p.binding.at(gen)
	if !ok {
		p.discard(offset, apperrors.Stale("page at offset %d returned after detach", offset))
		return
	}
	if id != p.inFlight {
		p.discard(offset, apperrors.Stale("page at offset %d superseded by request %d", offset, p.pages.last))
		return
	}
	p.inFlight = 0
	view.PresentBusy(false)
	if offset == 0 {
		p.applyFirst(view, page, err)
		return
	}
	p.applyNext(view, offset, page, err)
}

func (p *ListPresenter[T]) applyFirst(view ListView[T], page model.Page[T], err error) {
	if err == nil && page.Len() == 0 {
		err = apperrors.Empty(p.cfg.EmptyMessage)
	}
	switch {
	case apperrors.IsEmpty(err):
		p.items = nil
		p.total = 0
		p.exhausted = true
		p.fromNetwork = true
		p.state = StateEmpty
		p.emit(0, 0, metrics.ResultEmpty)
		view.PresentEmpty(p.cfg.EmptyMessage)
	case err != nil:
		p.state = StateFailed
		p.emit(0, 0, metrics.ResultError)
		p.logger.Warn("first page failed", "error", err)
		view.PresentError(apperrors.UserMessage(err))
	default:
		p.items = p.annotate(dedupe(nil, page.PageItems))
		p.total = page.TotalFilteredRecords
		p.exhausted = p.reachedEnd(page.Len())
		p.fromNetwork = true
		p.state = StateLoaded
		p.emit(0, page.Len(), metrics.ResultSuccess)
		view.PresentList(slices.Clone(p.items))
	}
}

func (p *ListPresenter[T]) applyNext(view ListView[T], offset int, page model.Page[T], err error) {
	p.state = StateLoaded
	if err == nil && page.Len() == 0 {
		err = apperrors.Empty("no more entities")
	}
	switch {
	case apperrors.IsEmpty(err):
		p.exhausted = true
		p.emit(offset, 0, metrics.ResultEmpty)
	case err != nil:
		p.emit(offset, 0, metrics.ResultError)
		p.logger.Warn("load more failed", "offset", offset, "error", err)
		showMessage(view, apperrors.UserMessage(err))
	default:
		fresh := p.annotate(dedupe(p.items, page.PageItems))
		p.items = append(p.items, fresh...)
		if page.TotalFilteredRecords > 0 {
			p.total = page.TotalFilteredRecords
		}
		p.exhausted = p.reachedEnd(page.Len())
		p.emit(offset, page.Len(), metrics.ResultSuccess)
		if len(fresh) > 0 {
			view.PresentAppended(slices.Clone(fresh))
		}
	}
}

// reachedEnd treats a short page, or an accumulated list covering the
// server's total, as the last page.
func (p *ListPresenter[T]) reachedEnd(pageLen int) bool {
	if pageLen < p.cfg.PageSize {
		return true
	}
	return p.total > 0 && len(p.items) >= p.total
}

// LoadLocalSnapshot reads the local store. It reports false when the
// presenter has no snapshot source or no view is attached.
func (p *ListPresenter[T]) LoadLocalSnapshot(ctx context.Context) bool {
	if p.source.Snapshot == nil {
		return false
	}
	if _, ok := p.binding.current(); !ok {
		return false
	}
	id := p.snapshots.next()
	gen := p.binding.gen
	dispatch(p.poster, ctx,
		func(ctx context.Context) ([]T, error) { return p.source.Snapshot(ctx) },
		func(items []T, err error) { p.applySnapshot(gen, id, items, err) },
	)
	return true
}

func (p *ListPresenter[T]) applySnapshot(gen, id uint64, items []T, err error) {
	view, ok := p.binding.at(gen)
	if !ok || !p.snapshots.current(id) {
		p.logger.Debug("snapshot result discarded",
			"error", apperrors.Stale("snapshot %d superseded", id))
		return
	}
	if err != nil {
		p.logger.Warn("local snapshot failed", "error", err)
		if len(p.items) == 0 && p.inFlight == 0 {
			showMessage(view, apperrors.UserMessage(err))
		}
		return
	}

	p.synced = make(map[int64]struct{}, len(items))
	for _, it := range items {
		p.synced[it.EntityID()] = struct{}{}
	}

	if p.fromNetwork || p.fixed {
		if p.remark() {
			view.PresentList(slices.Clone(p.items))
		}
		return
	}
	if len(items) == 0 {
		return
	}
	p.items = p.annotate(dedupe(nil, items))
	if p.inFlight == 0 {
		// Offsets of a snapshot do not line up with server pages.
		p.state = StateLoaded
		p.exhausted = true
	}
	view.PresentList(slices.Clone(p.items))
}

// ShowItems displays a list supplied by the caller instead of loading it.
// Any page request in flight is superseded and paging stays off until the
// view detaches.
func (p *ListPresenter[T]) ShowItems(items []T) bool {
	view, ok := p.binding.current()
	if !ok {
		return false
	}
	if p.inFlight != 0 {
		p.pages.next()
		p.inFlight = 0
		view.PresentBusy(false)
	}
	p.fixed = true
	p.exhausted = true
	p.items = p.annotate(dedupe(nil, items))
	if len(p.items) == 0 {
		p.state = StateEmpty
		view.PresentEmpty(p.cfg.EmptyMessage)
		return true
	}
	p.state = StateLoaded
	view.PresentList(slices.Clone(p.items))
	return true
}

// annotate sets synced flags from the latest snapshot. Without a snapshot
// the entities are returned unchanged.
func (p *ListPresenter[T]) annotate(items []T) []T {
	if p.synced == nil {
		return items
	}
	for i, it := range items {
		if s, ok := any(it).(model.Syncable[T]); ok {
			_, held := p.synced[it.EntityID()]
			items[i] = s.WithSynced(held)
		}
	}
	return items
}

// remark re-applies synced flags in place and reports whether any changed.
func (p *ListPresenter[T]) remark() bool {
	changed := false
	for i, it := range p.items {
		s, ok := any(it).(model.Syncable[T])
		if !ok {
			return false
		}
		_, held := p.synced[it.EntityID()]
		if s.IsSynced() != held {
			p.items[i] = s.WithSynced(held)
			changed = true
		}
	}
	return changed
}

func (p *ListPresenter[T]) discard(offset int, err error) {
	p.logger.Debug("page result discarded", "offset", offset, "error", err)
	p.emit(offset, 0, metrics.ResultStale)
}

func (p *ListPresenter[T]) emit(offset, n int, result string) {
	metrics.EmitListLoad(p.metrics, metrics.ListLoad{Screen: p.cfg.Screen, Offset: offset, Items: n, Result: result})
}

// dedupe returns the entities of page whose IDs are neither in have nor
// earlier in page, in page order.
func dedupe[T model.Entity](have, page []T) []T {
	seen := make(map[int64]struct{}, len(have)+len(page))
	for _, it := range have {
		seen[it.EntityID()] = struct{}{}
	}
	out := make([]T, 0, len(page))
	for _, it := range page {
		if _, dup := seen[it.EntityID()]; dup {
			continue
		}
		seen[it.EntityID()] = struct{}{}
		out = append(out, it)
	}
	return out
}
