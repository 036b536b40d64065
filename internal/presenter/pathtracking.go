package presenter

import (
	"context"
	"log/slog"

	"github.com/openmf/fieldops/internal/core"
	"github.com/openmf/fieldops/internal/domain/model"
	apperrors "github.com/openmf/fieldops/internal/errors"
	"github.com/openmf/fieldops/internal/ui/loop"
)

// NoPathMessage is shown when a user has no recorded tracking sessions.
const NoPathMessage = "No path tracking found"

// PathTrackingView is implemented by the path tracking screen.
type PathTrackingView interface {
	StatusView
	PresentLocations(locations []model.UserLocation)
}

// PathTrackingPresenterOptions groups dependencies for PathTrackingPresenter.
type PathTrackingPresenterOptions struct {
	Tracking core.PathTrackingGateway // Required
	Poster   loop.Poster              // Required
	Logger   *slog.Logger
}

// PathTrackingPresenter lists the recorded tracking sessions of a user.
type PathTrackingPresenter struct {
	tracking core.PathTrackingGateway
	poster   loop.Poster
	logger   *slog.Logger

	binding   binding[PathTrackingView]
	loads     sequence
	loading   bool
	locations []model.UserLocation
}

// NewPathTrackingPresenter creates a new PathTrackingPresenter.
func NewPathTrackingPresenter(opts PathTrackingPresenterOptions) *PathTrackingPresenter {
	if opts.Tracking == nil {
		panic("PathTrackingPresenter requires a PathTrackingGateway")
	}
	if opts.Poster == nil {
		panic("PathTrackingPresenter requires a Poster")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &PathTrackingPresenter{
		tracking: opts.Tracking,
		poster:   opts.Poster,
		logger:   logger.With("component", "path_tracking_presenter"),
	}
}

// AttachView binds v to the presenter.
func (p *PathTrackingPresenter) AttachView(v PathTrackingView) error {
	return p.binding.attach(v)
}

// DetachView unbinds the view; pending loads are dropped.
func (p *PathTrackingPresenter) DetachView() {
	if p.binding.detach() {
		p.locations = nil
		p.loading = false
	}
}

// Locations returns the sessions of the last successful load.
func (p *PathTrackingPresenter) Locations() []model.UserLocation {
	return append([]model.UserLocation(nil), p.locations...)
}

// LoadPathTracking fetches the tracking sessions of userID. A newer load
// supersedes an older one.
func (p *PathTrackingPresenter) LoadPathTracking(ctx context.Context, userID int64) bool {
	view, ok := p.binding.current()
	if !ok {
		return false
	}
	id := p.loads.next()
	gen := p.binding.gen
	if !p.loading {
		view.PresentBusy(true)
	}
	p.loading = true
	dispatch(p.poster, ctx,
		func(ctx context.Context) ([]model.UserLocation, error) { return p.tracking.UserLocations(ctx, userID) },
		func(locs []model.UserLocation, err error) {
			view, ok := p.binding.at(gen)
			if !ok {
				return
			}
			if !p.loads.current(id) {
				p.logger.Debug("path tracking result discarded",
					"error", apperrors.Stale("load %d for user %d superseded", id, userID))
				return
			}
			p.loading = false
			view.PresentBusy(false)
			switch {
			case err != nil:
				p.logger.Warn("path tracking failed", "user_id", userID, "error", err)
				view.PresentError(apperrors.UserMessage(err))
			case len(locs) == 0:
				p.locations = nil
				view.PresentEmpty(NoPathMessage)
			default:
				p.locations = locs
				view.PresentLocations(append([]model.UserLocation(nil), locs...))
			}
		},
	)
	return true
}

// Directions returns a driving-directions link from the first to the last
// point of a recorded session.
func Directions(loc model.UserLocation) (string, error) {
	path, err := loc.Path()
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeValidation, "location has an unreadable path")
	}
	url, ok := model.DirectionsURL(path)
	if !ok {
		return "", apperrors.Empty("location has no recorded points")
	}
	return url, nil
}
