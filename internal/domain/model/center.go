package model

// Center is a meeting point grouping several client groups under one office.
type Center struct {
	ID             int64  `json:"id"`
	AccountNo      string `json:"accountNo,omitempty"`
	Name           string `json:"name"`
	OfficeID       int64  `json:"officeId"`
	OfficeName     string `json:"officeName,omitempty"`
	StaffID        int64  `json:"staffId,omitempty"`
	StaffName      string `json:"staffName,omitempty"`
	Hierarchy      string `json:"hierarchy,omitempty"`
	Status         Status `json:"status"`
	Active         bool   `json:"active"`
	ActivationDate Date   `json:"activationDate"`

	// Synced is set by the client when the center is also held in the local store.
	Synced bool `json:"-"`
}

// EntityID implements Entity.
func (c Center) EntityID() int64 { return c.ID }

// IsSynced reports whether the record is also held in the local store.
func (c Center) IsSynced() bool { return c.Synced }

// WithSynced returns a copy with the synced flag set to synced.
func (c Center) WithSynced(synced bool) Center {
	c.Synced = synced
	return c
}

// DisplayName implements Entity.
func (c Center) DisplayName() string { return c.Name }

// MeetingCalendar is the recurring collection meeting attached to a center.
type MeetingCalendar struct {
	ID                 int64  `json:"id"`
	CalendarInstanceID int64  `json:"calendarInstanceId,omitempty"`
	EntityID           int64  `json:"entityId,omitempty"`
	Title              string `json:"title,omitempty"`
	Recurrence         string `json:"recurrence,omitempty"`
	StartDate          Date   `json:"startDate"`
}

// CenterWithAssociations is a center together with its groups and meeting calendar.
type CenterWithAssociations struct {
	Center
	GroupMembers              []Group          `json:"groupMembers"`
	CollectionMeetingCalendar *MeetingCalendar `json:"collectionMeetingCalendar,omitempty"`
}

// HasMeeting reports whether a collection meeting calendar is configured.
func (c CenterWithAssociations) HasMeeting() bool {
	return c.CollectionMeetingCalendar != nil && c.CollectionMeetingCalendar.ID != 0
}
