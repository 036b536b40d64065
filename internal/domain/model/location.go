package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// LatLng is one sampled coordinate.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// UserLocation is one recorded tracking session of a field officer. The
// remote datatable stores the path as a JSON encoded string.
type UserLocation struct {
	ID        int64  `json:"id,omitempty"`
	UserID    int64  `json:"user_id"`
	LatLng    string `json:"latlng"`
	StartTime string `json:"start_time"`
	StopTime  string `json:"stop_time"`
	Date      string `json:"date"`
}

// Path decodes the recorded coordinates.
func (u UserLocation) Path() ([]LatLng, error) {
	if u.LatLng == "" {
		return nil, nil
	}
	var path []LatLng
	if err := json.Unmarshal([]byte(u.LatLng), &path); err != nil {
		return nil, fmt.Errorf("decode latlng for location %d: %w", u.ID, err)
	}
	return path, nil
}

// SetPath encodes coordinates into the LatLng field.
func (u *UserLocation) SetPath(path []LatLng) error {
	if path == nil {
		path = []LatLng{}
	}
	b, err := json.Marshal(path)
	if err != nil {
		return fmt.Errorf("encode latlng: %w", err)
	}
	u.LatLng = string(b)
	return nil
}

const directionsBase = "http://maps.google.com/maps"

// DirectionsURL builds a driving-directions link from the first to the last
// point of a path. ok is false when the path is empty.
func DirectionsURL(path []LatLng) (string, bool) {
	if len(path) == 0 {
		return "", false
	}
	from, to := path[0], path[len(path)-1]
	return fmt.Sprintf("%s?f=d&hl=en&saddr=%s&daddr=%s", directionsBase, formatLatLng(from), formatLatLng(to)), true
}

func formatLatLng(p LatLng) string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lng, 'f', -1, 64)
}
