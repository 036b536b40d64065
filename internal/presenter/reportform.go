package presenter

import (
	"strings"
	"time"

	"github.com/openmf/fieldops/internal/domain/model"
	apperrors "github.com/openmf/fieldops/internal/errors"
)

// Parameter names returned by FullParameterList.
const (
	ParamLoanOfficer     = "loanOfficerIdSelectAll"
	ParamLoanProduct     = "loanProductIdSelectAll"
	ParamLoanPurpose     = "loanPurposeIdSelectAll"
	ParamFund            = "fundIdSelectAll"
	ParamCurrency        = "currencyIdSelectAll"
	ParamOffice          = "OfficeIdSelectOne"
	ParamParType         = "parTypeSelect"
	ParamSavingsSub      = "SavingsAccountSubStatus"
	ParamGLAccount       = "SelectGLAccountNO"
	ParamObligDateType   = "obligDateTypeSelect"
	ParamStartDate       = "startDateSelect"
	ParamEndDate         = "endDateSelect"
	ParamAccountNo       = "selectAccount"
	ParamFromX           = "fromXSelect"
	ParamToY             = "toYSelect"
	ParamOverdueX        = "overdueXSelect"
	ParamOverdueY        = "overdueYSelect"
	selectAllOptionValue = "-1"
)

// Query keys sent with a report run.
const (
	KeyLoanOfficer   = "R_loanOfficerId"
	KeyLoanProduct   = "R_loanProductId"
	KeyLoanPurpose   = "R_loanPurposeId"
	KeyFund          = "R_fundId"
	KeyCurrency      = "R_currencyId"
	KeyOffice        = "R_officeId"
	KeyParType       = "R_parType"
	KeySubStatus     = "R_subStatus"
	KeyAccount       = "R_account"
	KeyObligDateType = "R_obligDateType"
	KeyStartDate     = "R_startDate"
	KeyEndDate       = "R_endDate"
	KeyAccountNo     = "R_accountNo"
	KeyFromX         = "R_fromX"
	KeyToY           = "R_toY"
	KeyOverdueX      = "R_overdueX"
	KeyOverdueY      = "R_overdueY"
)

// FieldKind tells how a report parameter is entered.
type FieldKind int

const (
	FieldSelect FieldKind = iota
	FieldText
	FieldDate
)

type fieldSpec struct {
	key   string
	label string
	kind  FieldKind
}

var parameterFields = map[string]fieldSpec{
	ParamLoanOfficer:   {KeyLoanOfficer, "Loan officer", FieldSelect},
	ParamLoanProduct:   {KeyLoanProduct, "Loan product", FieldSelect},
	ParamLoanPurpose:   {KeyLoanPurpose, "Loan purpose", FieldSelect},
	ParamFund:          {KeyFund, "Fund", FieldSelect},
	ParamCurrency:      {KeyCurrency, "Currency", FieldSelect},
	ParamOffice:        {KeyOffice, "Office", FieldSelect},
	ParamParType:       {KeyParType, "PAR calculation", FieldSelect},
	ParamSavingsSub:    {KeySubStatus, "Savings account deposit", FieldSelect},
	ParamGLAccount:     {KeyAccount, "GL account", FieldSelect},
	ParamObligDateType: {KeyObligDateType, "Obligation date type", FieldSelect},
	ParamStartDate:     {KeyStartDate, "Start date", FieldDate},
	ParamEndDate:       {KeyEndDate, "End date", FieldDate},
	ParamAccountNo:     {KeyAccountNo, "Account number", FieldText},
	ParamFromX:         {KeyFromX, "From X number", FieldText},
	ParamToY:           {KeyToY, "To Y number", FieldText},
	ParamOverdueX:      {KeyOverdueX, "Overdue X number", FieldText},
	ParamOverdueY:      {KeyOverdueY, "Overdue Y number", FieldText},
}

// PickedDateLayout is the layout of dates entered by the user.
const PickedDateLayout = "02-01-2006"

// FormField is one entry of a report parameter form.
type FormField struct {
	Parameter string
	Key       string
	Label     string
	Kind      FieldKind
	// Options holds the choices of a select field in server order.
	Options []model.SelectOption
	// Value is the selected option label of a select field, or the entered
	// text. Dates are held as yyyy-mm-dd.
	Value string
}

// OptionValue returns the query value of the selected option.
func (f *FormField) OptionValue() (string, bool) {
	for _, o := range f.Options {
		if o.Label == f.Value {
			return o.Value, true
		}
	}
	return "", false
}

func (f *FormField) setOptions(opts []model.SelectOption) {
	f.Options = opts
	f.Value = ""
	if len(opts) > 0 {
		f.Value = opts[0].Label
	}
}

// ReportForm is the parameter form of one report. Fields appear in the
// order the server listed the parameters.
type ReportForm struct {
	Report model.ReportItem
	Fields []*FormField

	// Set when the report filters loan officers by office or loan
	// products by currency.
	officersByOffice   bool
	productsByCurrency bool
}

// Field returns the field sent under key, or nil.
func (f *ReportForm) Field(key string) *FormField {
	for _, fld := range f.Fields {
		if fld.Key == key {
			return fld
		}
	}
	return nil
}

// Set changes the value of the field sent under key. Select fields take an
// option label; date fields take dd-mm-yyyy or yyyy-mm-dd.
func (f *ReportForm) Set(key, value string) error {
	fld := f.Field(key)
	if fld == nil {
		return apperrors.ValidationField(key, "unknown report parameter")
	}
	value = strings.TrimSpace(value)
	switch fld.Kind {
	case FieldSelect:
		for _, o := range fld.Options {
			if o.Label == value {
				fld.Value = value
				return nil
			}
		}
		return apperrors.ValidationField(key, "no option "+value)
	case FieldDate:
		d, err := convertDate(value)
		if err != nil {
			return apperrors.ValidationField(key, err.Error())
		}
		fld.Value = d
	default:
		fld.Value = value
	}
	return nil
}

// Query builds the run-report query. Select fields left on "All" are
// omitted, as are blank text fields.
func (f *ReportForm) Query() (map[string]string, error) {
	if len(f.Fields) == 0 {
		return nil, apperrors.Validation("report has no parameters to run with")
	}
	q := make(map[string]string, len(f.Fields))
	for _, fld := range f.Fields {
		if fld.Kind != FieldSelect {
			if fld.Value != "" {
				q[fld.Key] = fld.Value
			}
			continue
		}
		v, ok := fld.OptionValue()
		if !ok || v == "" || v == selectAllOptionValue {
			continue
		}
		q[fld.Key] = v
	}
	return q, nil
}

// convertDate turns a picked dd-mm-yyyy date into yyyy-mm-dd.
func convertDate(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	if t, err := time.Parse(PickedDateLayout, s); err == nil {
		return t.Format(time.DateOnly), nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t.Format(time.DateOnly), nil
	}
	return "", apperrors.Validationf("invalid date %q, want dd-mm-yyyy", s)
}
