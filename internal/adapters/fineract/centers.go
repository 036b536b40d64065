package fineract

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/openmf/fieldops/internal/domain/model"
)

// pageQuery renders offset/limit paging plus endpoint filters.
func pageQuery(req model.PageRequest) url.Values {
	q := url.Values{}
	q.Set("paged", "true")
	q.Set("offset", strconv.Itoa(req.Offset))
	q.Set("limit", strconv.Itoa(req.Limit))
	for k, v := range req.Params {
		q.Set(k, v)
	}
	return q
}

func paramsQuery(params map[string]string) url.Values {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	return q
}

func id(v int64) string { return strconv.FormatInt(v, 10) }

// ListCenters implements core.CenterGateway.
func (c *Client) ListCenters(ctx context.Context, req model.PageRequest) (model.Page[model.Center], error) {
	var page model.Page[model.Center]
	err := c.get(ctx, "list_centers", "centers", pageQuery(req), &page)
	return page, err
}

// CentersInOffice implements core.CenterGateway.
func (c *Client) CentersInOffice(ctx context.Context, officeID int64, params map[string]string) ([]model.Center, error) {
	q := paramsQuery(params)
	q.Set("officeId", id(officeID))
	var out []model.Center
	err := c.get(ctx, "centers_in_office", "centers", q, &out)
	return out, err
}

// CenterWithAssociations implements core.CenterGateway.
func (c *Client) CenterWithAssociations(ctx context.Context, centerID int64) (*model.CenterWithAssociations, error) {
	q := url.Values{"associations": {"groupMembers,collectionMeetingCalendar"}}
	var out model.CenterWithAssociations
	if err := c.get(ctx, "center_associations", "centers/"+id(centerID), q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CollectionSheet implements core.CenterGateway.
func (c *Client) CollectionSheet(
	ctx context.Context,
	centerID int64,
	req model.CollectionSheetRequest,
) (*model.CollectionSheet, error) {
	q := url.Values{"command": {"generateCollectionSheet"}}
	var out model.CollectionSheet
	if err := c.send(ctx, "collection_sheet", http.MethodPost, "centers/"+id(centerID), q, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveCollectionSheet implements core.CenterGateway.
func (c *Client) SaveCollectionSheet(
	ctx context.Context,
	centerID int64,
	payload model.CollectionSheetPayload,
) (*model.SaveResponse, error) {
	if payload.CalendarID == 0 {
		return nil, fmt.Errorf("save collection sheet for center %d: calendar id is required", centerID)
	}
	q := url.Values{"command": {"saveCollectionSheet"}}
	var out model.SaveResponse
	if err := c.send(ctx, "save_collection_sheet", http.MethodPost, "centers/"+id(centerID), q, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
