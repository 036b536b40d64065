package fineract

import (
	"context"
	"net/http"

	"github.com/openmf/fieldops/internal/domain/model"
)

// ListClients implements core.ClientGateway.
func (c *Client) ListClients(ctx context.Context, req model.PageRequest) (model.Page[model.Client], error) {
	var page model.Page[model.Client]
	err := c.get(ctx, "list_clients", "clients", pageQuery(req), &page)
	return page, err
}

// ClientCharges implements core.ClientGateway.
func (c *Client) ClientCharges(ctx context.Context, clientID int64, req model.PageRequest) (model.Page[model.Charge], error) {
	var page model.Page[model.Charge]
	err := c.get(ctx, "client_charges", "clients/"+id(clientID)+"/charges", pageQuery(req), &page)
	return page, err
}

// CreateClientCharge implements core.ClientGateway.
func (c *Client) CreateClientCharge(
	ctx context.Context,
	clientID int64,
	payload model.ChargesPayload,
) (*model.ChargeCreationResponse, error) {
	var out model.ChargeCreationResponse
	if err := c.send(ctx, "create_client_charge", http.MethodPost, "clients/"+id(clientID)+"/charges", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClientChargeTemplate implements core.ClientGateway.
func (c *Client) ClientChargeTemplate(ctx context.Context, clientID int64) (*model.ChargeTemplate, error) {
	var out model.ChargeTemplate
	if err := c.get(ctx, "client_charge_template", "clients/"+id(clientID)+"/charges/template", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
