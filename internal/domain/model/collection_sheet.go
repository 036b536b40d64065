package model

// CollectionSheetRequest asks the remote API to generate the sheet for a meeting date.
type CollectionSheetRequest struct {
	CalendarID      int64  `json:"calendarId"`
	TransactionDate string `json:"transactionDate"`
	DateFormat      string `json:"dateFormat"`
	Locale          string `json:"locale"`
}

// CollectionSheet lists what each client in a center owes at a meeting.
type CollectionSheet struct {
	DueDate      Date                   `json:"dueDate"`
	LoanProducts []LoanProduct          `json:"loanProducts,omitempty"`
	Groups       []CollectionSheetGroup `json:"groups"`
}

// CollectionSheetGroup is one group on a collection sheet.
type CollectionSheetGroup struct {
	GroupID   int64                   `json:"groupId"`
	GroupName string                  `json:"groupName"`
	Clients   []CollectionSheetClient `json:"clients"`
}

// CollectionSheetClient is one client on a collection sheet.
type CollectionSheetClient struct {
	ClientID   int64                 `json:"clientId"`
	ClientName string                `json:"clientName"`
	Loans      []CollectionSheetLoan `json:"loans,omitempty"`
}

// CollectionSheetLoan is the amount due on one loan at a meeting.
type CollectionSheetLoan struct {
	LoanID       int64   `json:"loanId"`
	AccountID    string  `json:"accountId,omitempty"`
	ProductName  string  `json:"productShortName,omitempty"`
	TotalDue     float64 `json:"totalDue"`
	ChargesDue   float64 `json:"chargesDue,omitempty"`
	PrincipalDue float64 `json:"principalDue,omitempty"`
}

// TotalDue sums what every client owes on the sheet.
func (s CollectionSheet) TotalDue() float64 {
	var total float64
	for _, g := range s.Groups {
		for _, c := range g.Clients {
			for _, l := range c.Loans {
				total += l.TotalDue
			}
		}
	}
	return total
}

// BulkRepayment records a repayment collected at a meeting.
type BulkRepayment struct {
	LoanID            int64   `json:"loanId"`
	TransactionAmount float64 `json:"transactionAmount"`
}

// ClientAttendance records whether a client attended a meeting.
type ClientAttendance struct {
	ClientID       int64 `json:"clientId"`
	AttendanceType int   `json:"attendanceType"`
}

// CollectionSheetPayload saves the outcome of a meeting.
type CollectionSheetPayload struct {
	CalendarID                int64              `json:"calendarId"`
	TransactionDate           string             `json:"transactionDate"`
	ActualDisbursementDate    string             `json:"actualDisbursementDate,omitempty"`
	DateFormat                string             `json:"dateFormat"`
	Locale                    string             `json:"locale"`
	BulkRepaymentTransactions []BulkRepayment    `json:"bulkRepaymentTransactions"`
	ClientsAttendance         []ClientAttendance `json:"clientsAttendance"`
}

// SaveResponse is returned by write commands on the remote API.
type SaveResponse struct {
	GroupID    int64          `json:"groupId,omitempty"`
	ResourceID int64          `json:"resourceId,omitempty"`
	Changes    map[string]any `json:"changes,omitempty"`
}
