package data

import (
	"context"
	"database/sql"

	"github.com/openmf/fieldops/internal/core"
	"github.com/openmf/fieldops/internal/domain/model"
)

var (
	_ core.CenterStore = (*CenterRepo)(nil)
	_ core.ClientStore = (*ClientRepo)(nil)
	_ core.GroupStore  = (*GroupRepo)(nil)
)

// CenterRepo stores synchronized centers.
type CenterRepo struct {
	*entityRepo[model.Center]
}

// NewCenterRepo creates a CenterRepo. A nil tp uses the system clock.
func NewCenterRepo(db *sql.DB, tp TimeProvider) *CenterRepo {
	return &CenterRepo{newEntityRepo(db, entityTable[model.Center]{
		name:    "centers",
		office:  func(c model.Center) int64 { return c.OfficeID },
		restore: func(c *model.Center, _ int64) { c.Synced = true },
	}, tp)}
}

// ClientRepo stores synchronized clients keyed by their group.
type ClientRepo struct {
	*entityRepo[model.Client]
}

// NewClientRepo creates a ClientRepo. A nil tp uses the system clock.
func NewClientRepo(db *sql.DB, tp TimeProvider) *ClientRepo {
	return &ClientRepo{newEntityRepo(db, entityTable[model.Client]{
		name:   "clients",
		office: func(c model.Client) int64 { return c.OfficeID },
		parent: func(c model.Client) int64 { return c.GroupID },
		restore: func(c *model.Client, groupID int64) {
			c.GroupID = groupID
			c.Synced = true
		},
	}, tp)}
}

// ListByGroup returns the stored clients of a group ordered by ID.
func (r *ClientRepo) ListByGroup(ctx context.Context, groupID int64) ([]model.Client, error) {
	return r.listByParent(ctx, groupID)
}

// GroupRepo stores synchronized groups keyed by their center.
type GroupRepo struct {
	*entityRepo[model.Group]
}

// NewGroupRepo creates a GroupRepo. A nil tp uses the system clock.
func NewGroupRepo(db *sql.DB, tp TimeProvider) *GroupRepo {
	return &GroupRepo{newEntityRepo(db, entityTable[model.Group]{
		name:   "groups",
		office: func(g model.Group) int64 { return g.OfficeID },
		parent: func(g model.Group) int64 { return g.CenterID },
		restore: func(g *model.Group, centerID int64) {
			g.CenterID = centerID
			g.Synced = true
		},
	}, tp)}
}

// ListByCenter returns the stored groups of a center ordered by ID.
func (r *GroupRepo) ListByCenter(ctx context.Context, centerID int64) ([]model.Group, error) {
	return r.listByParent(ctx, centerID)
}

// Stores bundles the entity stores opened over one database.
type Stores struct {
	Centers *CenterRepo
	Clients *ClientRepo
	Groups  *GroupRepo
}

// NewStores creates every entity store over db.
func NewStores(db *sql.DB, tp TimeProvider) Stores {
	return Stores{
		Centers: NewCenterRepo(db, tp),
		Clients: NewClientRepo(db, tp),
		Groups:  NewGroupRepo(db, tp),
	}
}
