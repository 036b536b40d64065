package testutil

import (
	"fmt"

	"github.com/openmf/fieldops/internal/domain/model"
)

// CenterBuilder provides a fluent interface for building centers.
type CenterBuilder struct {
	c model.Center
}

// NewCenter creates a CenterBuilder for an active center in office 1.
func NewCenter(id int64) *CenterBuilder {
	return &CenterBuilder{c: model.Center{
		ID:        id,
		AccountNo: fmt.Sprintf("%09d", id),
		Name:      fmt.Sprintf("Center %d", id),
		OfficeID:  1,
		Active:    true,
		Status:    model.Status{ID: 300, Code: "clientStatusType.active", Value: "Active"},
	}}
}

// WithName sets the center name.
func (b *CenterBuilder) WithName(name string) *CenterBuilder {
	b.c.Name = name
	return b
}

// WithOffice sets the office.
func (b *CenterBuilder) WithOffice(id int64) *CenterBuilder {
	b.c.OfficeID = id
	return b
}

// Build returns the center.
func (b *CenterBuilder) Build() model.Center { return b.c }

// NewClient returns an active client belonging to groupID.
func NewClient(id, groupID int64) model.Client {
	return model.Client{
		ID:        id,
		AccountNo: fmt.Sprintf("%09d", id),
		Name:      fmt.Sprintf("Client %d", id),
		OfficeID:  1,
		GroupID:   groupID,
		Active:    true,
	}
}

// NewGroup returns an active group belonging to centerID.
func NewGroup(id, centerID int64) model.Group {
	return model.Group{
		ID:       id,
		Name:     fmt.Sprintf("Group %d", id),
		OfficeID: 1,
		CenterID: centerID,
		Active:   true,
	}
}

// Centers returns centers with IDs from..to inclusive.
func Centers(from, to int64) []model.Center {
	out := make([]model.Center, 0, to-from+1)
	for id := from; id <= to; id++ {
		out = append(out, NewCenter(id).Build())
	}
	return out
}

// Clients returns clients with IDs from..to inclusive, all in group 0.
func Clients(from, to int64) []model.Client {
	out := make([]model.Client, 0, to-from+1)
	for id := from; id <= to; id++ {
		out = append(out, NewClient(id, 0))
	}
	return out
}

// PageOf wraps items in a page whose total is total.
func PageOf[T any](total int, items ...T) model.Page[T] {
	if items == nil {
		items = []T{}
	}
	return model.Page[T]{TotalFilteredRecords: total, PageItems: items}
}
