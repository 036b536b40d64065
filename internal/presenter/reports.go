package presenter

import (
	"context"
	"log/slog"

	"github.com/openmf/fieldops/internal/core"
	"github.com/openmf/fieldops/internal/domain/model"
	apperrors "github.com/openmf/fieldops/internal/errors"
	"github.com/openmf/fieldops/internal/ui/loop"
)

// ReportCategories are the categories offered by the run-reports screen.
var ReportCategories = []string{"Client", "Loan", "Savings", "Fund", "Accounting"}

// ReportListView is implemented by the run-reports screen.
type ReportListView interface {
	StatusView
	PresentReports(category string, reports []model.ReportItem)
}

// ReportListPresenterOptions groups dependencies for ReportListPresenter.
type ReportListPresenterOptions struct {
	Reports core.ReportGateway // Required
	Poster  loop.Poster        // Required
	Logger  *slog.Logger
}

// ReportListPresenter lists the reports of a category.
type ReportListPresenter struct {
	reports core.ReportGateway
	poster  loop.Poster
	logger  *slog.Logger

	binding binding[ReportListView]
	loads   sequence
	busy    busyCounter
}

// NewReportListPresenter creates a new ReportListPresenter.
func NewReportListPresenter(opts ReportListPresenterOptions) *ReportListPresenter {
	if opts.Reports == nil {
		panic("ReportListPresenter requires a ReportGateway")
	}
	if opts.Poster == nil {
		panic("ReportListPresenter requires a Poster")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportListPresenter{
		reports: opts.Reports,
		poster:  opts.Poster,
		logger:  logger.With("component", "report_list_presenter"),
	}
}

// AttachView binds v to the presenter.
func (p *ReportListPresenter) AttachView(v ReportListView) error {
	return p.binding.attach(v)
}

// DetachView unbinds the view.
func (p *ReportListPresenter) DetachView() {
	if p.binding.detach() {
		p.busy = busyCounter{}
	}
}

// LoadReports fetches the reports of category. Switching category before
// the result arrives drops the older result.
func (p *ReportListPresenter) LoadReports(ctx context.Context, category string) bool {
	view, ok := p.binding.current()
	if !ok {
		return false
	}
	id := p.loads.next()
	gen := p.binding.gen
	p.busy.start(view)
	dispatch(p.poster, ctx,
		func(ctx context.Context) ([]model.ReportItem, error) {
			return p.reports.ReportsByCategory(ctx, category)
		},
		func(items []model.ReportItem, err error) {
			view, ok := p.binding.at(gen)
			if !ok {
				return
			}
			p.busy.done(view)
			if !p.loads.current(id) {
				p.logger.Debug("report list discarded", "error", apperrors.Stale("category %q superseded", category))
				return
			}
			switch {
			case err != nil:
				p.logger.Warn("report list failed", "category", category, "error", err)
				view.PresentError(apperrors.UserMessage(err))
			case len(items) == 0:
				view.PresentEmpty("No " + category + " reports found")
			default:
				view.PresentReports(category, items)
			}
		},
	)
	return true
}
