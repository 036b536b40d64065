package fineract

import (
	"context"
	"net/url"
	"strings"

	"github.com/openmf/fieldops/internal/domain/model"
)

// ReportsByCategory implements core.ReportGateway.
func (c *Client) ReportsByCategory(ctx context.Context, category string) ([]model.ReportItem, error) {
	q := url.Values{
		"R_reportCategory": {category},
		"genericResultSet": {"false"},
	}
	var out []model.ReportItem
	err := c.get(ctx, "reports_by_category", "runreports/reportCategoryList", q, &out)
	return out, err
}

// FullParameterList implements core.ReportGateway.
func (c *Client) FullParameterList(ctx context.Context, name string) (*model.FullParameterListResponse, error) {
	if !strings.HasPrefix(name, "'") {
		name = "'" + name + "'"
	}
	q := url.Values{
		"R_reportListing": {name},
		"parameterType":   {"true"},
	}
	var out model.FullParameterListResponse
	if err := c.get(ctx, "report_parameters", "runreports/FullParameterList", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ParameterDetails implements core.ReportGateway.
func (c *Client) ParameterDetails(
	ctx context.Context,
	parameter string,
	params map[string]string,
) (*model.FullParameterListResponse, error) {
	q := paramsQuery(params)
	q.Set("parameterType", "true")
	var out model.FullParameterListResponse
	if err := c.get(ctx, "report_parameter_details", "runreports/"+url.PathEscape(parameter), q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RunReport implements core.ReportGateway.
func (c *Client) RunReport(ctx context.Context, name string, params map[string]string) (*model.FullParameterListResponse, error) {
	q := paramsQuery(params)
	q.Set("genericResultSet", "true")
	var out model.FullParameterListResponse
	if err := c.get(ctx, "run_report", "runreports/"+url.PathEscape(name), q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
