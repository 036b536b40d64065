package model

// LoanProduct is a loan product offered by the institution.
type LoanProduct struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	ShortName   string   `json:"shortName,omitempty"`
	Description string   `json:"description,omitempty"`
	Currency    Currency `json:"currency"`
	Principal   float64  `json:"principal,omitempty"`
}

// LoanSummary holds outstanding balances of a loan.
type LoanSummary struct {
	PrincipalDisbursed   float64 `json:"principalDisbursed"`
	TotalOutstanding     float64 `json:"totalOutstanding"`
	TotalOverdue         float64 `json:"totalOverdue"`
	TotalRepayment       float64 `json:"totalRepayment"`
	TotalExpectedRepaymt float64 `json:"totalExpectedRepayment"`
}

// LoanTransaction is one disbursement, repayment or charge posting.
type LoanTransaction struct {
	ID     int64   `json:"id"`
	Type   Status  `json:"type"`
	Date   Date    `json:"date"`
	Amount float64 `json:"amount"`
}

// RepaymentPeriod is one installment of a repayment schedule.
type RepaymentPeriod struct {
	Period               int     `json:"period"`
	DueDate              Date    `json:"dueDate"`
	TotalDueForPeriod    float64 `json:"totalDueForPeriod"`
	TotalPaidForPeriod   float64 `json:"totalPaidForPeriod"`
	TotalOutstandingForP float64 `json:"totalOutstandingForPeriod"`
	Complete             bool    `json:"complete"`
}

// RepaymentSchedule lists the installments of a loan.
type RepaymentSchedule struct {
	Periods []RepaymentPeriod `json:"periods"`
}

// LoanWithAssociations is a loan with transactions and/or its repayment schedule.
type LoanWithAssociations struct {
	ID                int64              `json:"id"`
	AccountNo         string             `json:"accountNo"`
	Status            Status             `json:"status"`
	ClientID          int64              `json:"clientId,omitempty"`
	ClientName        string             `json:"clientName,omitempty"`
	LoanProductID     int64              `json:"loanProductId,omitempty"`
	LoanProductName   string             `json:"loanProductName,omitempty"`
	Principal         float64            `json:"principal"`
	Currency          Currency           `json:"currency"`
	Summary           *LoanSummary       `json:"summary,omitempty"`
	Transactions      []LoanTransaction  `json:"transactions,omitempty"`
	RepaymentSchedule *RepaymentSchedule `json:"repaymentSchedule,omitempty"`
}

// LoanApproval is the payload of the approve command.
type LoanApproval struct {
	ApprovedOnDate     string  `json:"approvedOnDate"`
	ApprovedLoanAmount float64 `json:"approvedLoanAmount,omitempty"`
	Note               string  `json:"note,omitempty"`
	DateFormat         string  `json:"dateFormat"`
	Locale             string  `json:"locale"`
}

// GenericResponse is the command result returned by most write endpoints.
type GenericResponse struct {
	OfficeID   int64          `json:"officeId,omitempty"`
	ClientID   int64          `json:"clientId,omitempty"`
	LoanID     int64          `json:"loanId,omitempty"`
	ResourceID int64          `json:"resourceId,omitempty"`
	Changes    map[string]any `json:"changes,omitempty"`
}

// GroupLoanTemplate holds the defaults and choices for a new group loan.
// Product fields are filled only when a product was requested.
type GroupLoanTemplate struct {
	GroupID               int64         `json:"groupId"`
	GroupName             string        `json:"groupName"`
	GroupOfficeID         int64         `json:"groupOfficeId"`
	LoanProductID         int64         `json:"loanProductId,omitempty"`
	LoanProductName       string        `json:"loanProductName,omitempty"`
	Currency              *Currency     `json:"currency,omitempty"`
	Principal             float64       `json:"principal,omitempty"`
	NumberOfRepayments    int           `json:"numberOfRepayments,omitempty"`
	RepaymentEvery        int           `json:"repaymentEvery,omitempty"`
	InterestRatePerPeriod float64       `json:"interestRatePerPeriod,omitempty"`
	ProductOptions        []LoanProduct `json:"productOptions"`
	LoanOfficerOptions    []Staff       `json:"loanOfficerOptions,omitempty"`
}

// GroupLoanPayload submits a loan application for a group.
type GroupLoanPayload struct {
	GroupID                  int64   `json:"groupId"`
	ProductID                int64   `json:"productId"`
	LoanOfficerID            int64   `json:"loanOfficerId,omitempty"`
	LoanType                 string  `json:"loanType"`
	Principal                float64 `json:"principal"`
	LoanTermFrequency        int     `json:"loanTermFrequency"`
	LoanTermFrequencyType    int     `json:"loanTermFrequencyType"`
	NumberOfRepayments       int     `json:"numberOfRepayments"`
	RepaymentEvery           int     `json:"repaymentEvery"`
	RepaymentFrequencyType   int     `json:"repaymentFrequencyType"`
	InterestRatePerPeriod    float64 `json:"interestRatePerPeriod"`
	AmortizationType         int     `json:"amortizationType"`
	InterestType             int     `json:"interestType"`
	InterestCalculationType  int     `json:"interestCalculationPeriodType"`
	TransactionStrategyID    int64   `json:"transactionProcessingStrategyId"`
	SubmittedOnDate          string  `json:"submittedOnDate"`
	ExpectedDisbursementDate string  `json:"expectedDisbursementDate"`
	DateFormat               string  `json:"dateFormat"`
	Locale                   string  `json:"locale"`
}
