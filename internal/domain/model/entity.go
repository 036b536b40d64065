// Package model holds the records exchanged with the remote financial API and the local store.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Entity is a domain record identified by an opaque numeric ID.
type Entity interface {
	EntityID() int64
	DisplayName() string
}

// Syncable is an entity that carries a flag telling whether it is also held
// in the local store.
type Syncable[T any] interface {
	Entity
	IsSynced() bool
	WithSynced(synced bool) T
}

// EntityType names the kind of entity kept in the local store.
type EntityType string

const (
	EntityCenter EntityType = "center"
	EntityClient EntityType = "client"
	EntityGroup  EntityType = "group"
)

// Status is the lifecycle status the remote API attaches to centers, groups and clients.
type Status struct {
	ID    int    `json:"id"`
	Code  string `json:"code"`
	Value string `json:"value"`
}

// Label returns the human readable status, falling back to the code.
func (s Status) Label() string {
	if s.Value != "" {
		return s.Value
	}
	return s.Code
}

// Page is one fetched batch of entities plus the server's total-count hint.
type Page[T any] struct {
	TotalFilteredRecords int `json:"totalFilteredRecords"`
	PageItems            []T `json:"pageItems"`
}

// Len returns the number of items in the page.
func (p Page[T]) Len() int {
	return len(p.PageItems)
}

// PageRequest addresses a page by offset and limit.
type PageRequest struct {
	Offset int
	Limit  int
	// Params carries endpoint specific filters (officeId, orderBy, ...).
	Params map[string]string
}

// Date is a calendar date. The remote API encodes dates as [yyyy, mm, dd]
// arrays; the local store and payloads use formatted strings.
type Date struct {
	time.Time
}

// DateLayout is the layout used for dates sent to the remote API.
const DateLayout = "dd MMMM yyyy"

const goDateLayout = "02 January 2006"

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalJSON accepts [y, m, d], "yyyy-mm-dd", "dd MMMM yyyy" or null.
func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}
	if b[0] == '[' {
		var parts []int
		if err := json.Unmarshal(b, &parts); err != nil {
			return fmt.Errorf("decode date array: %w", err)
		}
		if len(parts) < 3 {
			return fmt.Errorf("decode date array: want 3 parts, got %d", len(parts))
		}
		*d = NewDate(parts[0], time.Month(parts[1]), parts[2])
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("decode date: %w", err)
	}
	return d.parse(s)
}

func (d *Date) parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.DateOnly, goDateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognized date %q", s)
}

// MarshalJSON encodes the date as [y, m, d], matching the remote API.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal([]int{d.Year(), int(d.Month()), d.Day()})
}

// String formats the date as yyyy-mm-dd, or "" for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(time.DateOnly)
}

// Formatted renders the date in the layout expected by remote API payloads.
func (d Date) Formatted() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(goDateLayout)
}

// ParseDate parses a yyyy-mm-dd string.
func ParseDate(s string) (Date, error) {
	var d Date
	err := d.parse(s)
	return d, err
}

// IDs collects entity identifiers in order.
func IDs[T Entity](items []T) []int64 {
	out := make([]int64, len(items))
	for i, it := range items {
		out[i] = it.EntityID()
	}
	return out
}
