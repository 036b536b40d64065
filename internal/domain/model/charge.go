package model

// Charge is a fee applied to a client or loan.
type Charge struct {
	ID                int64    `json:"id"`
	ClientID          int64    `json:"clientId,omitempty"`
	LoanID            int64    `json:"loanId,omitempty"`
	ChargeID          int64    `json:"chargeId"`
	Name              string   `json:"name"`
	DueDate           Date     `json:"dueDate"`
	Amount            float64  `json:"amount"`
	AmountPaid        float64  `json:"amountPaid"`
	AmountWaived      float64  `json:"amountWaived"`
	AmountOutstanding float64  `json:"amountOutstanding"`
	Currency          Currency `json:"currency"`
	Penalty           bool     `json:"penalty"`
	Paid              bool     `json:"isPaid"`
	Waived            bool     `json:"isWaived"`
}

// ChargesPayload creates a charge on a client or loan.
type ChargesPayload struct {
	ChargeID   int64   `json:"chargeId"`
	Amount     float64 `json:"amount"`
	DueDate    string  `json:"dueDate"`
	DateFormat string  `json:"dateFormat"`
	Locale     string  `json:"locale"`
}

// ChargeCreationResponse is returned after creating a charge.
type ChargeCreationResponse struct {
	ClientID   int64 `json:"clientId,omitempty"`
	LoanID     int64 `json:"loanId,omitempty"`
	ResourceID int64 `json:"resourceId"`
}

// ChargeOption is a charge definition that can be applied.
type ChargeOption struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
	Penalty  bool     `json:"penalty"`
	Active   bool     `json:"active"`
}

// ChargeTemplate lists the charges available to a client or loan.
type ChargeTemplate struct {
	ChargeOptions []ChargeOption `json:"chargeOptions"`
}
