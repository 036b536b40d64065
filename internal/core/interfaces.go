package core

import (
	"context"

	"github.com/openmf/fieldops/internal/domain/model"
)

// This file contains the port definitions (hexagonal architecture) between
// presenters/services and the remote gateway or local store adapters.
// Presenters and services depend on these interfaces, never on adapters.

//go:generate go run go.uber.org/mock/mockgen -destination=../mocks/gateway_mocks.go -package=mocks . CenterGateway,ClientGateway,GroupGateway,OfficeGateway,LoanGateway,ReportGateway,PathTrackingGateway
//go:generate go run go.uber.org/mock/mockgen -destination=../mocks/store_mocks.go -package=mocks . CenterStore,ClientStore,GroupStore,CacheRepository

// CenterGateway covers the center endpoints of the remote API.
type CenterGateway interface {
	// ListCenters fetches one page of centers ordered by the server.
	ListCenters(ctx context.Context, req model.PageRequest) (model.Page[model.Center], error)
	CentersInOffice(ctx context.Context, officeID int64, params map[string]string) ([]model.Center, error)
	// CenterWithAssociations fetches a center with its group members and meeting calendar.
	CenterWithAssociations(ctx context.Context, centerID int64) (*model.CenterWithAssociations, error)
	CollectionSheet(ctx context.Context, centerID int64, req model.CollectionSheetRequest) (*model.CollectionSheet, error)
	SaveCollectionSheet(ctx context.Context, centerID int64, payload model.CollectionSheetPayload) (*model.SaveResponse, error)
}

// ClientGateway covers the client endpoints of the remote API.
type ClientGateway interface {
	ListClients(ctx context.Context, req model.PageRequest) (model.Page[model.Client], error)
	ClientCharges(ctx context.Context, clientID int64, req model.PageRequest) (model.Page[model.Charge], error)
	CreateClientCharge(ctx context.Context, clientID int64, payload model.ChargesPayload) (*model.ChargeCreationResponse, error)
	// ClientChargeTemplate lists the charges that can be applied to a client.
	ClientChargeTemplate(ctx context.Context, clientID int64) (*model.ChargeTemplate, error)
}

// GroupGateway covers the group endpoints of the remote API.
type GroupGateway interface {
	GroupWithAssociations(ctx context.Context, groupID int64) (*model.GroupWithAssociations, error)
	GroupsInOffice(ctx context.Context, officeID int64, params map[string]string) ([]model.Group, error)
}

// OfficeGateway covers offices and staff.
type OfficeGateway interface {
	Offices(ctx context.Context) ([]model.Office, error)
	StaffInOffice(ctx context.Context, officeID int64) ([]model.Staff, error)
	AllStaff(ctx context.Context) ([]model.Staff, error)
}

// LoanGateway covers the loan endpoints of the remote API.
type LoanGateway interface {
	LoanWithTransactions(ctx context.Context, loanID int64) (*model.LoanWithAssociations, error)
	LoanRepaymentSchedule(ctx context.Context, loanID int64) (*model.LoanWithAssociations, error)
	LoanProducts(ctx context.Context) ([]model.LoanProduct, error)
	ApproveLoan(ctx context.Context, loanID int64, approval model.LoanApproval) (*model.GenericResponse, error)
	LoanCharges(ctx context.Context, loanID int64) ([]model.Charge, error)
	CreateLoanCharge(ctx context.Context, loanID int64, payload model.ChargesPayload) (*model.ChargeCreationResponse, error)
	LoanChargeTemplate(ctx context.Context, loanID int64) (*model.ChargeTemplate, error)
	// GroupLoanTemplate fetches defaults for a group loan. A zero productID
	// returns only the product options.
	GroupLoanTemplate(ctx context.Context, groupID, productID int64) (*model.GroupLoanTemplate, error)
	CreateGroupLoan(ctx context.Context, payload model.GroupLoanPayload) (*model.GenericResponse, error)
}

// ReportGateway covers the run-report endpoints.
type ReportGateway interface {
	// ReportsByCategory lists the reports of a category ("Client", "Loan", ...).
	ReportsByCategory(ctx context.Context, category string) ([]model.ReportItem, error)
	// FullParameterList lists the parameters a report requires. name must be
	// single quoted, see model.ReportItem.QuotedName.
	FullParameterList(ctx context.Context, name string) (*model.FullParameterListResponse, error)
	// ParameterDetails lists the options of one parameter. params carries
	// dependent filters such as R_officeId.
	ParameterDetails(ctx context.Context, parameter string, params map[string]string) (*model.FullParameterListResponse, error)
	RunReport(ctx context.Context, name string, params map[string]string) (*model.FullParameterListResponse, error)
}

// PathTrackingGateway covers the user_location datatable.
type PathTrackingGateway interface {
	UserLocations(ctx context.Context, userID int64) ([]model.UserLocation, error)
	AddUserLocation(ctx context.Context, userID int64, loc model.UserLocation) error
}

// Gateway bundles every remote port. The fineract adapter satisfies it.
type Gateway interface {
	CenterGateway
	ClientGateway
	GroupGateway
	OfficeGateway
	LoanGateway
	ReportGateway
	PathTrackingGateway
}

// EntityStore is the local store of synchronized entities of one type.
type EntityStore[T model.Entity] interface {
	// ListAll returns every stored entity ordered by ID.
	ListAll(ctx context.Context) ([]T, error)
	Save(ctx context.Context, entity T) error
	// SaveAll upserts entities in one transaction.
	SaveAll(ctx context.Context, entities []T) error
	// Delete removes an entity and reports whether it existed.
	Delete(ctx context.Context, id int64) (bool, error)
}

// CenterStore holds synchronized centers.
type CenterStore interface {
	EntityStore[model.Center]
}

// ClientStore holds synchronized clients.
type ClientStore interface {
	EntityStore[model.Client]
	// ListByGroup returns stored clients belonging to a group.
	ListByGroup(ctx context.Context, groupID int64) ([]model.Client, error)
}

// GroupStore holds synchronized groups.
type GroupStore interface {
	EntityStore[model.Group]
	ListByCenter(ctx context.Context, centerID int64) ([]model.Group, error)
}
