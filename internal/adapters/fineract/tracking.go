package fineract

import (
	"context"
	"net/http"

	"github.com/openmf/fieldops/internal/domain/model"
)

const userLocationTable = "datatables/user_location/"

// UserLocations implements core.PathTrackingGateway.
func (c *Client) UserLocations(ctx context.Context, userID int64) ([]model.UserLocation, error) {
	var out []model.UserLocation
	err := c.get(ctx, "user_locations", userLocationTable+id(userID), nil, &out)
	return out, err
}

// AddUserLocation implements core.PathTrackingGateway.
func (c *Client) AddUserLocation(ctx context.Context, userID int64, loc model.UserLocation) error {
	loc.UserID = userID
	payload := struct {
		model.UserLocation
		DateFormat string `json:"dateFormat"`
		Locale     string `json:"locale"`
	}{UserLocation: loc, DateFormat: model.DateLayout, Locale: "en"}
	return c.send(ctx, "add_user_location", http.MethodPost, userLocationTable+id(userID), nil, payload, nil)
}
