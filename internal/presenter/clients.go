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

// ClientListPresenterOptions groups dependencies for ClientListPresenter.
type ClientListPresenterOptions struct {
	Clients core.ClientGateway // Required
	Store   core.ClientStore   // Optional: enables the local snapshot
	Poster  loop.Poster        // Required
	Config  ListConfig
	Logger  *slog.Logger
	Metrics statsd.Sink
}

// ClientListPresenter drives the clients screen, either over the paged
// client list or over the members of a parent group or center.
type ClientListPresenter struct {
	*ListPresenter[model.Client]
}

// NewClientListPresenter creates a new ClientListPresenter.
func NewClientListPresenter(opts ClientListPresenterOptions) *ClientListPresenter {
	if opts.Clients == nil {
		panic("ClientListPresenter requires a ClientGateway")
	}
	src := ListSource[model.Client]{Fetch: opts.Clients.ListClients}
	if opts.Store != nil {
		src.Snapshot = opts.Store.ListAll
	}
	cfg := opts.Config
	if cfg.Screen == "" {
		cfg.Screen = "clients"
	}
	if cfg.EmptyMessage == "" {
		cfg.EmptyMessage = "No clients found"
	}
	return &ClientListPresenter{
		ListPresenter: NewListPresenter(ListPresenterOptions[model.Client]{
			Source:  src,
			Poster:  opts.Poster,
			Config:  cfg,
			Logger:  opts.Logger,
			Metrics: opts.Metrics,
		}),
	}
}

// ShowParentClients displays the client members handed over by a parent
// screen. No network load is made and scroll paging is disabled.
func (p *ClientListPresenter) ShowParentClients(clients []model.Client) bool {
	return p.ShowItems(clients)
}

// ShowGroupMembers loads the client members of a group and shows them as
// a parent-supplied list.
func (p *ClientListPresenter) ShowGroupMembers(ctx context.Context, groups core.GroupGateway, groupID int64) bool {
	view, ok := p.binding.current()
	if !ok {
		return false
	}
	gen := p.binding.gen
	view.PresentBusy(true)
	dispatch(p.poster, ctx,
		func(ctx context.Context) (*model.GroupWithAssociations, error) {
			return groups.GroupWithAssociations(ctx, groupID)
		},
		func(group *model.GroupWithAssociations, err error) {
			view, ok := p.binding.at(gen)
			if !ok {
				return
			}
			view.PresentBusy(false)
			if err != nil {
				p.logger.Warn("group members failed", "group_id", groupID, "error", err)
				view.PresentError(apperrors.UserMessage(err))
				return
			}
			var members []model.Client
			if group != nil {
				for _, c := range group.ClientMembers {
					c.GroupID = groupID
					members = append(members, c)
				}
			}
			p.ShowParentClients(members)
		},
	)
	return true
}
