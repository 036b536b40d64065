package fineract_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmf/fieldops/internal/adapters/fineract"
	"github.com/openmf/fieldops/internal/adapters/fineract/fineracttest"
	"github.com/openmf/fieldops/internal/domain/model"
	apperrors "github.com/openmf/fieldops/internal/errors"
	"github.com/openmf/fieldops/internal/observability/statsd"
)

const (
	testTimeout = 2 * time.Second
	testTick    = 5 * time.Millisecond
)

func newTestClient(t *testing.T, srv *fineracttest.Server, sink statsd.Sink) *fineract.Client {
	t.Helper()
	hc, err := fineract.NewHTTPClient(0, false)
	require.NoError(t, err)
	auth := fineract.NewBasicAuthenticator(fineract.BasicAuthConfig{
		BaseURL:    srv.URL(),
		Tenant:     fineracttest.Tenant,
		Username:   srv.Username,
		Password:   srv.Password,
		HTTPClient: hc,
	})
	c, err := fineract.NewClient(fineract.Config{
		BaseURL:    srv.URL(),
		Tenant:     fineracttest.Tenant,
		Auth:       auth,
		HTTPClient: hc,
		Metrics:    sink,
	})
	require.NoError(t, err)
	return c
}

func seedCenters(n int) []model.Center {
	out := make([]model.Center, n)
	for i := range out {
		out[i] = model.Center{ID: int64(i + 1), Name: "Center " + string(rune('A'+i)), OfficeID: int64(1 + i%2)}
	}
	return out
}

func TestNewClient_Validation(t *testing.T) {
	t.Parallel()

	_, err := fineract.NewClient(fineract.Config{})
	require.Error(t, err)

	_, err = fineract.NewClient(fineract.Config{BaseURL: "ftp://example.org"})
	require.Error(t, err)

	c, err := fineract.NewClient(fineract.Config{BaseURL: "https://example.org/api/v1/"})
	require.NoError(t, err)
	assert.NotNil(t, c.HTTPClient().Jar)
}

func TestClient_ListCentersPaging(t *testing.T) {
	t.Parallel()
	srv := fineracttest.New(t)
	srv.Centers = seedCenters(5)
	rec := statsd.NewRecorder()
	c := newTestClient(t, srv, rec)

	page, err := c.ListCenters(context.Background(), model.PageRequest{Offset: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, page.TotalFilteredRecords)
	assert.Equal(t, []int64{3, 4}, model.IDs(page.PageItems))

	q := srv.LastQuery("centers")
	assert.Equal(t, "true", q["paged"])
	assert.Equal(t, "2", q["offset"])
	assert.Equal(t, "2", q["limit"])
	assert.Equal(t, 1, srv.Hits("authentication"))
	assert.Equal(t, int64(1), rec.CountOf("gateway.request"))

	page, err = c.ListCenters(context.Background(), model.PageRequest{Offset: 5, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, page.PageItems)
	assert.Equal(t, 1, srv.Hits("authentication"), "session key is reused")
}

func TestClient_CentersInOffice(t *testing.T) {
	t.Parallel()
	srv := fineracttest.New(t)
	srv.Centers = seedCenters(4)
	c := newTestClient(t, srv, nil)

	got, err := c.CentersInOffice(context.Background(), 2, map[string]string{"orderBy": "name"})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4}, model.IDs(got))
	assert.Equal(t, "name", srv.LastQuery("centers")["orderBy"])
}

func TestClient_ErrorEnvelope(t *testing.T) {
	t.Parallel()
	srv := fineracttest.New(t)
	srv.Fail("clients", http.StatusBadRequest, "Offset must be positive")
	c := newTestClient(t, srv, nil)

	_, err := c.ListClients(context.Background(), model.PageRequest{Limit: 10})
	require.Error(t, err)

	var te *apperrors.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusBadRequest, te.Status)
	assert.Equal(t, "list_clients", te.Op)
	assert.Equal(t, "Offset must be positive", te.UserMessage())
	assert.True(t, apperrors.IsTransport(err))
}

func TestClient_ServerErrorWithoutMessage(t *testing.T) {
	t.Parallel()
	srv := fineracttest.New(t)
	srv.Fail("center", http.StatusInternalServerError, "")
	c := newTestClient(t, srv, nil)

	_, err := c.CenterWithAssociations(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, apperrors.DefaultTransportMessage, apperrors.UserMessage(err))
}

func TestClient_NetworkError(t *testing.T) {
	t.Parallel()
	dead := httptest.NewServer(http.NotFoundHandler())
	url := dead.URL
	dead.Close()

	c, err := fineract.NewClient(fineract.Config{BaseURL: url, Tenant: fineracttest.Tenant})
	require.NoError(t, err)

	_, err = c.Offices(context.Background())
	var te *apperrors.TransportError
	require.ErrorAs(t, err, &te)
	assert.Zero(t, te.Status)
	assert.True(t, te.Temporary())
}

func TestClient_InvalidCredentials(t *testing.T) {
	t.Parallel()
	srv := fineracttest.New(t)
	auth := fineract.NewBasicAuthenticator(fineract.BasicAuthConfig{
		BaseURL:  srv.URL(),
		Tenant:   fineracttest.Tenant,
		Username: "mifos",
		Password: "wrong",
	})
	c, err := fineract.NewClient(fineract.Config{BaseURL: srv.URL(), Tenant: fineracttest.Tenant, Auth: auth})
	require.NoError(t, err)

	_, err = c.Offices(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeUnauthorized, apperrors.GetCode(err))
	assert.Equal(t, 0, srv.Hits("offices"))
}

func TestBasicAuthenticator_ReauthenticatesAfter401(t *testing.T) {
	t.Parallel()
	srv := fineracttest.New(t)
	c := newTestClient(t, srv, nil)

	srv.Fail("offices", http.StatusUnauthorized, "")
	_, err := c.Offices(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Your session has expired. Please log in again.", apperrors.UserMessage(err))

	srv.Fail("offices", 0, "")
	_, err = c.Offices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, srv.Hits("authentication"))
}

func TestBasicAuthenticator_Login(t *testing.T) {
	t.Parallel()
	srv := fineracttest.New(t)
	srv.UserID = 42
	auth := fineract.NewBasicAuthenticator(fineract.BasicAuthConfig{
		BaseURL:  srv.URL(),
		Tenant:   fineracttest.Tenant,
		Username: srv.Username,
		Password: srv.Password,
	})

	user, err := auth.Login(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.UserID)
	assert.Equal(t, srv.AuthKey(), user.Key)
}

func TestOAuth2Authenticator(t *testing.T) {
	t.Parallel()
	srv := fineracttest.New(t)
	srv.Offices = []model.Office{{ID: 1, Name: "Head Office"}}

	var (
		mu     sync.Mutex
		grants []string
	)
	tokens := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		mu.Lock()
		grants = append(grants, r.Form.Get("grant_type")+":"+r.Form.Get("username"))
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-1",
			"token_type":   "bearer",
			"expires_in":   3600,
		})
	}))
	t.Cleanup(tokens.Close)

	auth := fineract.NewOAuth2Authenticator(fineract.OAuth2Config{
		TokenURL: tokens.URL,
		ClientID: "community-app",
		Username: "mifos",
		Password: "password",
	})
	c, err := fineract.NewClient(fineract.Config{BaseURL: srv.URL(), Tenant: fineracttest.Tenant, Auth: auth})
	require.NoError(t, err)

	for range 2 {
		offices, err := c.Offices(context.Background())
		require.NoError(t, err)
		require.Len(t, offices, 1)
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"password:mifos"}, grants)
}

func TestClient_Associations(t *testing.T) {
	t.Parallel()
	srv := fineracttest.New(t)
	srv.CenterAssociations[7] = model.CenterWithAssociations{
		Center:                    model.Center{ID: 7, Name: "Kibera"},
		GroupMembers:              []model.Group{{ID: 70, Name: "Umoja"}},
		CollectionMeetingCalendar: &model.MeetingCalendar{ID: 3},
	}
	srv.GroupAssociations[70] = model.GroupWithAssociations{
		Group:         model.Group{ID: 70, Name: "Umoja", CenterID: 7},
		ClientMembers: []model.Client{{ID: 700, Name: "Amina"}},
	}
	c := newTestClient(t, srv, nil)

	center, err := c.CenterWithAssociations(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, center.HasMeeting())
	assert.Equal(t, "groupMembers,collectionMeetingCalendar", srv.LastQuery("center")["associations"])

	group, err := c.GroupWithAssociations(context.Background(), 70)
	require.NoError(t, err)
	assert.Equal(t, []int64{700}, model.IDs(group.ClientMembers))

	_, err = c.CenterWithAssociations(context.Background(), 8)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.GetCode(err))
}

func TestClient_CollectionSheet(t *testing.T) {
	t.Parallel()
	srv := fineracttest.New(t)
	srv.CenterAssociations[7] = model.CenterWithAssociations{
		Center:       model.Center{ID: 7},
		GroupMembers: []model.Group{{ID: 70, Name: "Umoja"}},
	}
	c := newTestClient(t, srv, nil)

	sheet, err := c.CollectionSheet(context.Background(), 7, model.CollectionSheetRequest{
		CalendarID: 3, TransactionDate: "01 March 2024", DateFormat: model.DateLayout, Locale: "en",
	})
	require.NoError(t, err)
	require.Len(t, sheet.Groups, 1)
	assert.Equal(t, "generateCollectionSheet", srv.LastQuery("center_command")["command"])

	_, err = c.SaveCollectionSheet(context.Background(), 7, model.CollectionSheetPayload{})
	require.Error(t, err, "calendar id is validated locally")
	assert.Equal(t, 1, srv.Hits("center_command"))

	resp, err := c.SaveCollectionSheet(context.Background(), 7, model.CollectionSheetPayload{CalendarID: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.GroupID)
}

func TestClient_Loans(t *testing.T) {
	t.Parallel()
	srv := fineracttest.New(t)
	srv.Loans[5] = model.LoanWithAssociations{
		ID:                5,
		ClientID:          700,
		Transactions:      []model.LoanTransaction{{ID: 1, Amount: 100}},
		RepaymentSchedule: &model.RepaymentSchedule{Periods: []model.RepaymentPeriod{{Period: 1}}},
	}
	srv.LoanProducts = []model.LoanProduct{{ID: 1, Name: "Group loan", Currency: model.Currency{Code: "KES"}}}
	c := newTestClient(t, srv, nil)
	ctx := context.Background()

	loan, err := c.LoanWithTransactions(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, loan.Transactions, 1)
	assert.Nil(t, loan.RepaymentSchedule)

	loan, err = c.LoanRepaymentSchedule(ctx, 5)
	require.NoError(t, err)
	assert.Nil(t, loan.Transactions)
	require.NotNil(t, loan.RepaymentSchedule)

	products, err := c.LoanProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "KES", products[0].Currency.Code)

	resp, err := c.ApproveLoan(ctx, 5, model.LoanApproval{ApprovedOnDate: "01 March 2024", DateFormat: model.DateLayout, Locale: "en"})
	require.NoError(t, err)
	assert.Equal(t, int64(700), resp.ClientID)

	created, err := c.CreateLoanCharge(ctx, 5, model.ChargesPayload{ChargeID: 9, Amount: 50})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.LoanID)

	charges, err := c.LoanCharges(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, charges, 1)
}

func TestClient_ClientCharges(t *testing.T) {
	t.Parallel()
	srv := fineracttest.New(t)
	c := newTestClient(t, srv, nil)
	ctx := context.Background()

	_, err := c.CreateClientCharge(ctx, 700, model.ChargesPayload{})
	require.Error(t, err)

	created, err := c.CreateClientCharge(ctx, 700, model.ChargesPayload{ChargeID: 2, Amount: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(700), created.ClientID)

	page, err := c.ClientCharges(ctx, 700, model.PageRequest{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalFilteredRecords)
}

func TestClient_GroupLoans(t *testing.T) {
	t.Parallel()
	srv := fineracttest.New(t)
	srv.GroupLoanTemplates[10] = model.GroupLoanTemplate{
		GroupID:            10,
		GroupName:          "Women Traders",
		LoanProductID:      1,
		Principal:          5000,
		NumberOfRepayments: 12,
		ProductOptions:     []model.LoanProduct{{ID: 1, Name: "Group loan"}},
		LoanOfficerOptions: []model.Staff{{ID: 3, Name: "Ann"}},
	}
	c := newTestClient(t, srv, nil)
	ctx := context.Background()

	tmpl, err := c.GroupLoanTemplate(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, "Women Traders", tmpl.GroupName)
	assert.Len(t, tmpl.ProductOptions, 1)
	assert.Zero(t, tmpl.Principal)
	assert.NotContains(t, srv.LastQuery("group_loan_template"), "productId")

	tmpl, err = c.GroupLoanTemplate(ctx, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, tmpl.Principal)
	assert.Equal(t, "1", srv.LastQuery("group_loan_template")["productId"])

	_, err = c.GroupLoanTemplate(ctx, 99, 0)
	require.Error(t, err)

	resp, err := c.CreateGroupLoan(ctx, model.GroupLoanPayload{GroupID: 10, ProductID: 1, Principal: 5000})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.LoanID)
	require.Len(t, srv.GroupLoans, 1)
	assert.Equal(t, "group", srv.GroupLoans[0].LoanType)

	_, err = c.CreateGroupLoan(ctx, model.GroupLoanPayload{GroupID: 10})
	require.Error(t, err)
}

func TestClient_ChargeTemplates(t *testing.T) {
	t.Parallel()
	srv := fineracttest.New(t)
	srv.ClientChargeOptions = []model.ChargeOption{{ID: 2, Name: "Registration fee", Amount: 100}}
	srv.LoanChargeOptions = []model.ChargeOption{{ID: 9, Name: "Late payment", Penalty: true}}
	c := newTestClient(t, srv, nil)
	ctx := context.Background()

	client, err := c.ClientChargeTemplate(ctx, 700)
	require.NoError(t, err)
	assert.Equal(t, []model.ChargeOption{{ID: 2, Name: "Registration fee", Amount: 100}}, client.ChargeOptions)

	loan, err := c.LoanChargeTemplate(ctx, 5)
	require.NoError(t, err)
	require.Len(t, loan.ChargeOptions, 1)
	assert.True(t, loan.ChargeOptions[0].Penalty)
}

func TestClient_Reports(t *testing.T) {
	t.Parallel()
	srv := fineracttest.New(t)
	srv.ReportCategories["Loan"] = []model.ReportItem{{ReportName: "Active Loans", ReportCategory: "Loan"}}
	srv.ReportParameters["Active Loans"] = model.FullParameterListResponse{
		Data: []model.DataRow{{Row: []any{"OfficeIdSelectOne"}}, {Row: []any{"loanOfficerIdSelectAll"}}},
	}
	srv.ParameterOptions["loanOfficerIdSelectAll"] = model.FullParameterListResponse{
		Data: []model.DataRow{
			{Row: []any{float64(-1), "All", ""}},
			{Row: []any{float64(1), "Ann", "1"}},
			{Row: []any{float64(2), "Ben", "2"}},
		},
	}
	srv.ReportResults["Active Loans"] = model.FullParameterListResponse{
		ColumnHeaders: []model.ColumnHeader{{ColumnName: "Client"}},
		Data:          []model.DataRow{{Row: []any{"Amina"}}},
	}
	c := newTestClient(t, srv, nil)
	ctx := context.Background()

	items, err := c.ReportsByCategory(ctx, "Loan")
	require.NoError(t, err)
	require.Len(t, items, 1)

	params, err := c.FullParameterList(ctx, items[0].QuotedName())
	require.NoError(t, err)
	assert.Len(t, params.Data, 2)
	assert.Equal(t, "'Active Loans'", srv.LastQuery("runreports")["R_reportListing"])

	_, err = c.FullParameterList(ctx, "Active Loans")
	require.NoError(t, err, "unquoted names are quoted")

	opts, err := c.ParameterDetails(ctx, "loanOfficerIdSelectAll", map[string]string{"R_officeId": "2"})
	require.NoError(t, err)
	assert.Equal(t, []model.SelectOption{{Label: "All", Value: "-1"}, {Label: "Ben", Value: "2"}}, opts.Options())

	out, err := c.RunReport(ctx, "Active Loans", map[string]string{"R_officeId": "1"})
	require.NoError(t, err)
	assert.Equal(t, "Amina", out.Data[0].Cell(0))
	assert.Equal(t, "true", srv.LastQuery("runreports")["genericResultSet"])
	assert.Equal(t, fineracttest.APIPath+"/runreports/Active%20Loans", srv.LastPath("runreports"))
}

func TestClient_ReportNamesEscapedOnce(t *testing.T) {
	t.Parallel()
	srv := fineracttest.New(t)
	srv.ParameterOptions["Loan Officer"] = model.FullParameterListResponse{
		Data: []model.DataRow{{Row: []any{float64(1), "Ann", ""}}},
	}
	srv.ReportResults["Clients & Loans"] = model.FullParameterListResponse{
		Data: []model.DataRow{{Row: []any{"Amina"}}},
	}
	c := newTestClient(t, srv, nil)
	ctx := context.Background()

	opts, err := c.ParameterDetails(ctx, "Loan Officer", nil)
	require.NoError(t, err)
	assert.Equal(t, []model.SelectOption{{Label: "Ann", Value: "1"}}, opts.Options())
	assert.Equal(t, fineracttest.APIPath+"/runreports/Loan%20Officer", srv.LastPath("runreports"))

	_, err = c.RunReport(ctx, "Clients & Loans", nil)
	require.NoError(t, err)
	assert.Equal(t, fineracttest.APIPath+"/runreports/Clients%20&%20Loans", srv.LastPath("runreports"))
}

func TestClient_UserLocations(t *testing.T) {
	t.Parallel()
	srv := fineracttest.New(t)
	c := newTestClient(t, srv, nil)
	ctx := context.Background()

	loc := model.UserLocation{StartTime: "08:00", StopTime: "09:00", Date: "01 March 2024"}
	require.NoError(t, loc.SetPath([]model.LatLng{{Lat: 1, Lng: 2}}))
	require.NoError(t, c.AddUserLocation(ctx, 9, loc))

	got, err := c.UserLocations(ctx, 9)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(9), got[0].UserID)
	path, err := got[0].Path()
	require.NoError(t, err)
	assert.Equal(t, []model.LatLng{{Lat: 1, Lng: 2}}, path)
}

func TestClient_ConcurrentGetsShareRoundTrip(t *testing.T) {
	t.Parallel()
	srv := fineracttest.New(t)
	srv.Offices = []model.Office{{ID: 1}}
	c := newTestClient(t, srv, nil)
	// Authenticate up front so the held request is the only one in flight.
	_, err := c.LoanProducts(context.Background())
	require.NoError(t, err)

	release := srv.Hold("offices")
	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Offices(context.Background())
			errs <- err
		}()
	}
	// Wait until the first request has reached the server; the second joins it.
	require.Eventually(t, func() bool { return srv.Hits("offices") >= 1 }, testTimeout, testTick)
	release()
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	assert.LessOrEqual(t, srv.Hits("offices"), 2)
}

func TestClient_ContextCanceled(t *testing.T) {
	t.Parallel()
	srv := fineracttest.New(t)
	c := newTestClient(t, srv, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Offices(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
