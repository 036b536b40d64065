package fineract

import (
	"context"
	"net/http"
	"net/url"

	"github.com/openmf/fieldops/internal/domain/model"
)

// LoanWithTransactions implements core.LoanGateway.
func (c *Client) LoanWithTransactions(ctx context.Context, loanID int64) (*model.LoanWithAssociations, error) {
	var out model.LoanWithAssociations
	if err := c.get(ctx, "loan_transactions", "loans/"+id(loanID), url.Values{"associations": {"transactions"}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoanRepaymentSchedule implements core.LoanGateway.
func (c *Client) LoanRepaymentSchedule(ctx context.Context, loanID int64) (*model.LoanWithAssociations, error) {
	var out model.LoanWithAssociations
	if err := c.get(ctx, "loan_schedule", "loans/"+id(loanID), url.Values{"associations": {"repaymentSchedule"}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoanProducts implements core.LoanGateway.
func (c *Client) LoanProducts(ctx context.Context) ([]model.LoanProduct, error) {
	var out []model.LoanProduct
	err := c.get(ctx, "loan_products", "loanproducts", nil, &out)
	return out, err
}

// ApproveLoan implements core.LoanGateway.
func (c *Client) ApproveLoan(ctx context.Context, loanID int64, approval model.LoanApproval) (*model.GenericResponse, error) {
	var out model.GenericResponse
	q := url.Values{"command": {"approve"}}
	if err := c.send(ctx, "approve_loan", http.MethodPost, "loans/"+id(loanID), q, approval, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoanCharges implements core.LoanGateway.
func (c *Client) LoanCharges(ctx context.Context, loanID int64) ([]model.Charge, error) {
	var out []model.Charge
	err := c.get(ctx, "loan_charges", "loans/"+id(loanID)+"/charges", nil, &out)
	return out, err
}

// CreateLoanCharge implements core.LoanGateway.
func (c *Client) CreateLoanCharge(
	ctx context.Context,
	loanID int64,
	payload model.ChargesPayload,
) (*model.ChargeCreationResponse, error) {
	var out model.ChargeCreationResponse
	if err := c.send(ctx, "create_loan_charge", http.MethodPost, "loans/"+id(loanID)+"/charges", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoanChargeTemplate implements core.LoanGateway.
func (c *Client) LoanChargeTemplate(ctx context.Context, loanID int64) (*model.ChargeTemplate, error) {
	var out model.ChargeTemplate
	if err := c.get(ctx, "loan_charge_template", "loans/"+id(loanID)+"/charges/template", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GroupLoanTemplate implements core.LoanGateway.
func (c *Client) GroupLoanTemplate(ctx context.Context, groupID, productID int64) (*model.GroupLoanTemplate, error) {
	q := url.Values{"templateType": {"group"}, "groupId": {id(groupID)}}
	if productID > 0 {
		q.Set("productId", id(productID))
	}
	var out model.GroupLoanTemplate
	if err := c.get(ctx, "group_loan_template", "loans/template", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateGroupLoan implements core.LoanGateway. LoanType defaults to "group".
func (c *Client) CreateGroupLoan(ctx context.Context, payload model.GroupLoanPayload) (*model.GenericResponse, error) {
	if payload.LoanType == "" {
		payload.LoanType = "group"
	}
	var out model.GenericResponse
	if err := c.send(ctx, "create_group_loan", http.MethodPost, "loans", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
