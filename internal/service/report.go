package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/openmf/fieldops/internal/core"
	"github.com/openmf/fieldops/internal/domain/model"
	apperrors "github.com/openmf/fieldops/internal/errors"
)

// QueryEvaluator abstracts JMESPath operations for testability.
type QueryEvaluator interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

type jmespathEvaluator struct{}

func (jmespathEvaluator) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err := jmespath.Compile(expr)
	return err
}

func (jmespathEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// ReportRunnerOptions groups dependencies for ReportRunner.
type ReportRunnerOptions struct {
	Reports   core.ReportGateway // Required
	Evaluator QueryEvaluator     // Optional, defaults to JMESPath
	Logger    *slog.Logger       // Optional
}

// ReportRunner runs reports outside the interactive screens and projects
// their rows with an optional JMESPath expression.
type ReportRunner struct {
	reports core.ReportGateway
	eval    QueryEvaluator
	logger  *slog.Logger
}

// NewReportRunner constructs a new ReportRunner.
func NewReportRunner(opts ReportRunnerOptions) *ReportRunner {
	if opts.Reports == nil {
		panic("ReportGateway is required")
	}
	eval := opts.Evaluator
	if eval == nil {
		eval = jmespathEvaluator{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportRunner{reports: opts.Reports, eval: eval, logger: logger.With("component", "report_runner")}
}

// Parameters lists the parameter names a report requires.
func (r *ReportRunner) Parameters(ctx context.Context, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ValidationField("report", "report name is required")
	}
	resp, err := r.reports.FullParameterList(ctx, model.ReportItem{ReportName: name}.QuotedName())
	if err != nil {
		return nil, fmt.Errorf("list parameters of %q: %w", name, err)
	}
	col := resp.Column("parameter_name")
	if col < 0 {
		col = 0
	}
	out := make([]string, 0, len(resp.Data))
	for _, row := range resp.Data {
		if p := row.Cell(col); p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}

// Run executes a report. Without a query the result is the rows as
// records keyed by column name; with one it is the JMESPath projection of
// those records.
func (r *ReportRunner) Run(ctx context.Context, name string, params map[string]string, query string) (any, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ValidationField("report", "report name is required")
	}
	if err := r.eval.Validate(query); err != nil {
		return nil, apperrors.ValidationField("query", fmt.Sprintf("invalid JMESPath expression: %v", err))
	}

	resp, err := r.reports.RunReport(ctx, name, params)
	if err != nil {
		return nil, fmt.Errorf("run report %q: %w", name, err)
	}
	records := Records(resp)
	r.logger.Debug("report ran", "report", name, "params", len(params), "rows", len(records))
	if len(records) == 0 {
		return nil, apperrors.Empty("the report returned no rows")
	}
	if strings.TrimSpace(query) == "" {
		return records, nil
	}

	out, err := r.eval.Evaluate(query, records)
	if err != nil {
		return nil, apperrors.ValidationField("query", fmt.Sprintf("evaluate query: %v", err))
	}
	return out, nil
}

// Records converts a result set into one map per row keyed by column name.
// Columns missing from a short row are nil.
func Records(resp *model.FullParameterListResponse) []any {
	if resp == nil {
		return nil
	}
	out := make([]any, 0, len(resp.Data))
	for _, row := range resp.Data {
		rec := make(map[string]any, len(resp.ColumnHeaders))
		for i, h := range resp.ColumnHeaders {
			var v any
			if i < len(row.Row) {
				v = row.Row[i]
			}
			rec[h.ColumnName] = v
		}
		out = append(out, rec)
	}
	return out
}
