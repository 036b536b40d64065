package presenter

import (
	"context"
	"log/slog"

	"github.com/openmf/fieldops/internal/core"
	"github.com/openmf/fieldops/internal/domain/model"
	apperrors "github.com/openmf/fieldops/internal/errors"
	"github.com/openmf/fieldops/internal/observability/statsd"
	"github.com/openmf/fieldops/internal/ui/loop"
)

// NoMeetingMessage is shown when a center has no collection meeting calendar.
const NoMeetingMessage = "No meeting found for this center"

// CenterListView is implemented by the centers screen.
type CenterListView interface {
	ListView[model.Center]
	// PresentCenterGroups shows the groups and meeting calendar of a center
	// that has a collection meeting.
	PresentCenterGroups(center *model.CenterWithAssociations)
	PresentNoMeeting(message string)
}

// CenterListPresenterOptions groups dependencies for CenterListPresenter.
type CenterListPresenterOptions struct {
	Centers core.CenterGateway // Required
	Store   core.CenterStore   // Optional: enables the local snapshot
	Poster  loop.Poster        // Required
	Config  ListConfig
	Logger  *slog.Logger
	Metrics statsd.Sink
}

// CenterListPresenter drives the centers screen.
type CenterListPresenter struct {
	*ListPresenter[model.Center]

	centers core.CenterGateway
	view    CenterListView
	details sequence
	busy    busyCounter
}

// NewCenterListPresenter creates a new CenterListPresenter.
func NewCenterListPresenter(opts CenterListPresenterOptions) *CenterListPresenter {
	if opts.Centers == nil {
		panic("CenterListPresenter requires a CenterGateway")
	}
	src := ListSource[model.Center]{Fetch: opts.Centers.ListCenters}
	if opts.Store != nil {
		src.Snapshot = opts.Store.ListAll
	}
	cfg := opts.Config
	if cfg.Screen == "" {
		cfg.Screen = "centers"
	}
	if cfg.EmptyMessage == "" {
		cfg.EmptyMessage = "No centers found"
	}
	return &CenterListPresenter{
		ListPresenter: NewListPresenter(ListPresenterOptions[model.Center]{
			Source:  src,
			Poster:  opts.Poster,
			Config:  cfg,
			Logger:  opts.Logger,
			Metrics: opts.Metrics,
		}),
		centers: opts.Centers,
	}
}

// AttachView binds v to the presenter.
func (p *CenterListPresenter) AttachView(v CenterListView) error {
	if err := p.ListPresenter.AttachView(v); err != nil {
		return err
	}
	p.view = v
	return nil
}

// DetachView unbinds the view. Pending detail lookups are dropped.
func (p *CenterListPresenter) DetachView() {
	p.ListPresenter.DetachView()
	p.view = nil
	p.busy = busyCounter{}
}

// LoadCenterGroupsAndMeeting fetches a center with its groups and meeting
// calendar. Only the latest lookup is delivered.
func (p *CenterListPresenter) LoadCenterGroupsAndMeeting(ctx context.Context, centerID int64) bool {
	if p.view == nil {
		return false
	}
	id := p.details.next()
	gen := p.binding.gen
	p.busy.start(p.view)
	dispatch(p.poster, ctx,
		func(ctx context.Context) (*model.CenterWithAssociations, error) {
			return p.centers.CenterWithAssociations(ctx, centerID)
		},
		func(center *model.CenterWithAssociations, err error) {
			if _, ok := p.binding.at(gen); !ok {
				return
			}
			p.busy.done(p.view)
			if !p.details.current(id) {
				p.logger.Debug("center details discarded",
					"error", apperrors.Stale("center %d lookup superseded", centerID))
				return
			}
			switch {
			case err != nil:
				p.logger.Warn("center details failed", "center_id", centerID, "error", err)
				showMessage(p.view, apperrors.UserMessage(err))
			case center == nil || !center.HasMeeting():
				p.view.PresentNoMeeting(NoMeetingMessage)
			default:
				p.view.PresentCenterGroups(center)
			}
		},
	)
	return true
}
