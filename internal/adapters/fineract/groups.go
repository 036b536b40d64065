package fineract

import (
	"context"
	"net/url"

	"github.com/openmf/fieldops/internal/domain/model"
)

// GroupWithAssociations implements core.GroupGateway.
func (c *Client) GroupWithAssociations(ctx context.Context, groupID int64) (*model.GroupWithAssociations, error) {
	var out model.GroupWithAssociations
	if err := c.get(ctx, "group_associations", "groups/"+id(groupID), url.Values{"associations": {"all"}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GroupsInOffice implements core.GroupGateway.
func (c *Client) GroupsInOffice(ctx context.Context, officeID int64, params map[string]string) ([]model.Group, error) {
	q := paramsQuery(params)
	q.Set("officeId", id(officeID))
	var out []model.Group
	err := c.get(ctx, "groups_in_office", "groups", q, &out)
	return out, err
}
