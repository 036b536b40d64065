package model

import "strings"

// Client is an individual borrower or saver.
type Client struct {
	ID             int64  `json:"id"`
	AccountNo      string `json:"accountNo,omitempty"`
	ExternalID     string `json:"externalId,omitempty"`
	Status         Status `json:"status"`
	Active         bool   `json:"active"`
	ActivationDate Date   `json:"activationDate"`
	FirstName      string `json:"firstname,omitempty"`
	MiddleName     string `json:"middlename,omitempty"`
	LastName       string `json:"lastname,omitempty"`
	FullName       string `json:"fullname,omitempty"`
	Name           string `json:"displayName,omitempty"`
	OfficeID       int64  `json:"officeId"`
	OfficeName     string `json:"officeName,omitempty"`
	StaffID        int64  `json:"staffId,omitempty"`
	StaffName      string `json:"staffName,omitempty"`
	MobileNo       string `json:"mobileNo,omitempty"`
	GroupID        int64  `json:"-"`

	Synced bool `json:"-"`
}

// EntityID implements Entity.
func (c Client) EntityID() int64 { return c.ID }

// IsSynced reports whether the record is also held in the local store.
func (c Client) IsSynced() bool { return c.Synced }

// WithSynced returns a copy with the synced flag set to synced.
func (c Client) WithSynced(synced bool) Client {
	c.Synced = synced
	return c
}

// DisplayName implements Entity. The remote API fills displayName; older
// records only carry name parts.
func (c Client) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	if c.FullName != "" {
		return c.FullName
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{c.FirstName, c.MiddleName, c.LastName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
