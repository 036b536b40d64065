package model

// Office is a branch in the institution's office hierarchy.
type Office struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	NameDecorated string `json:"nameDecorated,omitempty"`
	ExternalID    string `json:"externalId,omitempty"`
	OpeningDate   Date   `json:"openingDate"`
	Hierarchy     string `json:"hierarchy,omitempty"`
	ParentID      int64  `json:"parentId,omitempty"`
	ParentName    string `json:"parentName,omitempty"`
}

// Staff is an employee of an office, typically a loan officer.
type Staff struct {
	ID            int64  `json:"id"`
	FirstName     string `json:"firstname,omitempty"`
	LastName      string `json:"lastname,omitempty"`
	Name          string `json:"displayName"`
	OfficeID      int64  `json:"officeId"`
	OfficeName    string `json:"officeName,omitempty"`
	IsLoanOfficer bool   `json:"isLoanOfficer"`
	IsActive      bool   `json:"isActive"`
}

// Currency describes the currency of a product or charge.
type Currency struct {
	Code          string `json:"code"`
	Name          string `json:"name,omitempty"`
	DecimalPlaces int    `json:"decimalPlaces,omitempty"`
	DisplaySymbol string `json:"displaySymbol,omitempty"`
}
