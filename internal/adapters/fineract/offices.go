package fineract

import (
	"context"
	"net/url"

	"github.com/openmf/fieldops/internal/domain/model"
)

// Offices implements core.OfficeGateway.
func (c *Client) Offices(ctx context.Context) ([]model.Office, error) {
	var out []model.Office
	err := c.get(ctx, "offices", "offices", nil, &out)
	return out, err
}

// StaffInOffice implements core.OfficeGateway.
func (c *Client) StaffInOffice(ctx context.Context, officeID int64) ([]model.Staff, error) {
	var out []model.Staff
	err := c.get(ctx, "staff_in_office", "staff", url.Values{"officeId": {id(officeID)}}, &out)
	return out, err
}

// AllStaff implements core.OfficeGateway.
func (c *Client) AllStaff(ctx context.Context) ([]model.Staff, error) {
	var out []model.Staff
	err := c.get(ctx, "all_staff", "staff", url.Values{"status": {"all"}}, &out)
	return out, err
}
