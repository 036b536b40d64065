package model

// Group is a solidarity group of clients, optionally attached to a center.
type Group struct {
	ID             int64  `json:"id"`
	AccountNo      string `json:"accountNo,omitempty"`
	Name           string `json:"name"`
	Status         Status `json:"status"`
	Active         bool   `json:"active"`
	ActivationDate Date   `json:"activationDate"`
	OfficeID       int64  `json:"officeId"`
	OfficeName     string `json:"officeName,omitempty"`
	CenterID       int64  `json:"centerId,omitempty"`
	CenterName     string `json:"centerName,omitempty"`
	StaffID        int64  `json:"staffId,omitempty"`
	StaffName      string `json:"staffName,omitempty"`
	Hierarchy      string `json:"hierarchy,omitempty"`

	Synced bool `json:"-"`
}

// EntityID implements Entity.
func (g Group) EntityID() int64 { return g.ID }

// IsSynced reports whether the record is also held in the local store.
func (g Group) IsSynced() bool { return g.Synced }

// WithSynced returns a copy with the synced flag set to synced.
func (g Group) WithSynced(synced bool) Group {
	g.Synced = synced
	return g
}

// DisplayName implements Entity.
func (g Group) DisplayName() string { return g.Name }

// GroupWithAssociations is a group together with its client members.
type GroupWithAssociations struct {
	Group
	ClientMembers []Client `json:"clientMembers"`
}
