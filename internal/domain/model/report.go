package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ReportItem describes one report available in a report category.
type ReportItem struct {
	ReportID       int64  `json:"report_id"`
	ReportName     string `json:"report_name"`
	ReportType     string `json:"report_type"`
	ReportSubType  string `json:"report_subtype,omitempty"`
	ReportCategory string `json:"report_category"`
	ParameterID    int64  `json:"parameter_id,omitempty"`
	ParameterName  string `json:"parameter_name,omitempty"`
}

// QuotedName is the report name wrapped in single quotes, as expected by
// the FullParameterList lookup.
func (r ReportItem) QuotedName() string {
	return "'" + r.ReportName + "'"
}

// ColumnHeader names one column of a generic result set.
type ColumnHeader struct {
	ColumnName        string `json:"columnName"`
	ColumnType        string `json:"columnType,omitempty"`
	ColumnDisplayType string `json:"columnDisplayType,omitempty"`
	IsColumnNullable  bool   `json:"isColumnNullable,omitempty"`
}

// DataRow is one row of a generic result set.
type DataRow struct {
	Row []any `json:"row"`
}

// Cell renders the i-th value as text, or "" when out of range or null.
func (r DataRow) Cell(i int) string {
	if i < 0 || i >= len(r.Row) || r.Row[i] == nil {
		return ""
	}
	switch v := r.Row[i].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// FullParameterListResponse is the generic result set returned by run-report
// endpoints: parameter lists, parameter option lists and report output.
type FullParameterListResponse struct {
	ColumnHeaders []ColumnHeader `json:"columnHeaders"`
	Data          []DataRow      `json:"data"`
}

// Column returns the index of the named column, or -1.
func (r FullParameterListResponse) Column(name string) int {
	for i, h := range r.ColumnHeaders {
		if strings.EqualFold(h.ColumnName, name) {
			return i
		}
	}
	return -1
}

// SelectOption is one choice of a select parameter.
type SelectOption struct {
	Label string
	Value string
}

// Options builds select choices from (id, name) rows in server order.
// Duplicate labels keep the first id.
func (r FullParameterListResponse) Options() []SelectOption {
	out := make([]SelectOption, 0, len(r.Data))
	seen := make(map[string]struct{}, len(r.Data))
	for _, row := range r.Data {
		label := row.Cell(1)
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, SelectOption{Label: label, Value: row.Cell(0)})
	}
	return out
}
