package presenter

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/openmf/fieldops/internal/core"
	"github.com/openmf/fieldops/internal/domain/model"
	apperrors "github.com/openmf/fieldops/internal/errors"
	"github.com/openmf/fieldops/internal/ui/loop"
)

// NoReportDataMessage is shown when a report run returns no rows.
const NoReportDataMessage = "The report returned no data for the selected parameters"

// ReportDetailView is implemented by the report parameter screen.
type ReportDetailView interface {
	StatusView
	// PresentForm shows the parameter form once every select field has its options.
	PresentForm(form *ReportForm)
	// PresentOptions replaces the choices of the field sent under key
	// after a dependent lookup.
	PresentOptions(key string, options []model.SelectOption)
	PresentReport(result *model.FullParameterListResponse)
}

// ReportDetailConfig tunes the parameter fan-out.
type ReportDetailConfig struct {
	// Parallelism caps concurrent parameter lookups. Defaults to 4.
	Parallelism int
}

// ReportDetailPresenterOptions groups dependencies for ReportDetailPresenter.
type ReportDetailPresenterOptions struct {
	Reports core.ReportGateway // Required
	Poster  loop.Poster        // Required
	Config  ReportDetailConfig
	Logger  *slog.Logger
}

// ReportDetailPresenter builds the parameter form of a report, keeps its
// dependent selects current and runs the report.
type ReportDetailPresenter struct {
	reports     core.ReportGateway
	poster      loop.Poster
	logger      *slog.Logger
	parallelism int

	binding binding[ReportDetailView]
	busy    busyCounter
	forms   sequence
	runs    sequence
	lookups map[string]*sequence
	form    *ReportForm
}

// NewReportDetailPresenter creates a new ReportDetailPresenter.
func NewReportDetailPresenter(opts ReportDetailPresenterOptions) *ReportDetailPresenter {
	if opts.Reports == nil {
		panic("ReportDetailPresenter requires a ReportGateway")
	}
	if opts.Poster == nil {
		panic("ReportDetailPresenter requires a Poster")
	}
	parallelism := opts.Config.Parallelism
	if parallelism <= 0 {
		parallelism = 4
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportDetailPresenter{
		reports:     opts.Reports,
		poster:      opts.Poster,
		logger:      logger.With("component", "report_detail_presenter"),
		parallelism: parallelism,
		lookups:     make(map[string]*sequence),
	}
}

// AttachView binds v to the presenter.
func (p *ReportDetailPresenter) AttachView(v ReportDetailView) error {
	return p.binding.attach(v)
}

// DetachView unbinds the view and drops the form.
func (p *ReportDetailPresenter) DetachView() {
	if p.binding.detach() {
		p.form = nil
		p.busy = busyCounter{}
	}
}

// Form returns the current parameter form, or nil before one has loaded.
func (p *ReportDetailPresenter) Form() *ReportForm { return p.form }

// FetchFullParameterList loads the parameters of report and the options of
// every select parameter, then presents the form.
func (p *ReportDetailPresenter) FetchFullParameterList(ctx context.Context, report model.ReportItem) bool {
	view, ok := p.binding.current()
	if !ok {
		return false
	}
	id := p.forms.next()
	gen := p.binding.gen
	p.busy.start(view)
	dispatch(p.poster, ctx,
		func(ctx context.Context) (*ReportForm, error) { return p.buildForm(ctx, report) },
		func(form *ReportForm, err error) {
			view, ok := p.binding.at(gen)
			if !ok {
				return
			}
			p.busy.done(view)
			if !p.forms.current(id) {
				p.logger.Debug("report form discarded",
					"error", apperrors.Stale("form for %q superseded", report.ReportName))
				return
			}
			if err != nil {
				p.logger.Warn("report parameters failed", "report", report.ReportName, "error", err)
				view.PresentError(apperrors.UserMessage(err))
				return
			}
			p.form = form
			view.PresentForm(form)
			p.refreshDependents(ctx, form)
		},
	)
	return true
}

// buildForm runs off the UI goroutine. Each lookup goroutine writes only
// its own field; the form is handed over after Wait.
func (p *ReportDetailPresenter) buildForm(ctx context.Context, report model.ReportItem) (*ReportForm, error) {
	params, err := p.reports.FullParameterList(ctx, report.QuotedName())
	if err != nil {
		return nil, fmt.Errorf("full parameter list: %w", err)
	}
	form := &ReportForm{Report: report}
	var selects []*FormField
	for _, row := range params.Data {
		name := row.Cell(0)
		spec, known := parameterFields[name]
		if !known {
			p.logger.Debug("unsupported report parameter", "report", report.ReportName, "parameter", name)
			continue
		}
		switch name {
		case ParamLoanOfficer:
			form.officersByOffice = true
		case ParamLoanProduct:
			form.productsByCurrency = true
		}
		if form.Field(spec.key) != nil {
			continue
		}
		fld := &FormField{Parameter: name, Key: spec.key, Label: spec.label, Kind: spec.kind}
		form.Fields = append(form.Fields, fld)
		if spec.kind == FieldSelect {
			selects = append(selects, fld)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.parallelism)
	for _, fld := range selects {
		g.Go(func() error {
			resp, err := p.reports.ParameterDetails(gctx, fld.Parameter, nil)
			if err != nil {
				return fmt.Errorf("parameter %s: %w", fld.Parameter, err)
			}
			if resp != nil {
				fld.setOptions(resp.Options())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return form, nil
}

// SelectOption sets a select field and triggers the lookups that depend
// on it: loan officers follow the office, loan products the currency.
func (p *ReportDetailPresenter) SelectOption(ctx context.Context, key, label string) error {
	if p.form == nil {
		return apperrors.Validation("no report form loaded")
	}
	if err := p.form.Set(key, label); err != nil {
		return err
	}
	switch key {
	case KeyOffice, KeyCurrency:
		p.refreshDependents(ctx, p.form)
	}
	return nil
}

// SetText sets a text or date field of the current form.
func (p *ReportDetailPresenter) SetText(key, value string) error {
	if p.form == nil {
		return apperrors.Validation("no report form loaded")
	}
	return p.form.Set(key, value)
}

func (p *ReportDetailPresenter) refreshDependents(ctx context.Context, form *ReportForm) {
	if form.officersByOffice {
		if office := form.Field(KeyOffice); office != nil {
			if v, ok := office.OptionValue(); ok {
				p.FetchOffices(ctx, v)
			}
		}
	}
	if form.productsByCurrency {
		if currency := form.Field(KeyCurrency); currency != nil {
			if v, ok := currency.OptionValue(); ok {
				p.FetchProducts(ctx, v)
			}
		}
	}
}

// FetchOffices reloads the loan officer choices for officeID.
func (p *ReportDetailPresenter) FetchOffices(ctx context.Context, officeID string) bool {
	return p.lookup(ctx, ParamLoanOfficer, KeyLoanOfficer, map[string]string{KeyOffice: officeID})
}

// FetchProducts reloads the loan product choices for currencyID.
func (p *ReportDetailPresenter) FetchProducts(ctx context.Context, currencyID string) bool {
	return p.lookup(ctx, ParamLoanProduct, KeyLoanProduct, map[string]string{KeyCurrency: currencyID})
}

func (p *ReportDetailPresenter) lookup(ctx context.Context, parameter, key string, filter map[string]string) bool {
	view, ok := p.binding.current()
	if !ok || p.form == nil {
		return false
	}
	form := p.form
	if form.Field(key) == nil {
		return false
	}
	seq := p.lookups[key]
	if seq == nil {
		seq = &sequence{}
		p.lookups[key] = seq
	}
	id := seq.next()
	gen := p.binding.gen
	p.busy.start(view)
	dispatch(p.poster, ctx,
		func(ctx context.Context) (*model.FullParameterListResponse, error) {
			return p.reports.ParameterDetails(ctx, parameter, filter)
		},
		func(resp *model.FullParameterListResponse, err error) {
			view, ok := p.binding.at(gen)
			if !ok {
				return
			}
			p.busy.done(view)
			if p.form != form || !seq.current(id) {
				p.logger.Debug("parameter lookup discarded",
					"error", apperrors.Stale("lookup of %s superseded", parameter))
				return
			}
			if err != nil {
				p.logger.Warn("parameter lookup failed", "parameter", parameter, "error", err)
				showMessage(view, apperrors.UserMessage(err))
				return
			}
			fld := form.Field(key)
			var opts []model.SelectOption
			if resp != nil {
				opts = resp.Options()
			}
			fld.setOptions(opts)
			view.PresentOptions(key, append([]model.SelectOption(nil), opts...))
		},
	)
	return true
}

// RunReport runs the report of the current form.
func (p *ReportDetailPresenter) RunReport(ctx context.Context) bool {
	view, ok := p.binding.current()
	if !ok || p.form == nil {
		return false
	}
	query, err := p.form.Query()
	if err != nil {
		showMessage(view, apperrors.UserMessage(err))
		return false
	}
	name := p.form.Report.ReportName
	id := p.runs.next()
	gen := p.binding.gen
	p.busy.start(view)
	dispatch(p.poster, ctx,
		func(ctx context.Context) (*model.FullParameterListResponse, error) {
			return p.reports.RunReport(ctx, name, query)
		},
		func(result *model.FullParameterListResponse, err error) {
			view, ok := p.binding.at(gen)
			if !ok {
				return
			}
			p.busy.done(view)
			if !p.runs.current(id) {
				p.logger.Debug("report result discarded", "error", apperrors.Stale("run of %q superseded", name))
				return
			}
			switch {
			case err != nil:
				p.logger.Warn("report run failed", "report", name, "error", err)
				view.PresentError(apperrors.UserMessage(err))
			case result == nil || len(result.Data) == 0:
				view.PresentEmpty(NoReportDataMessage)
			default:
				view.PresentReport(result)
			}
		},
	)
	return true
}
