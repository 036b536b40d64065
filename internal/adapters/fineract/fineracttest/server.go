// Package fineracttest provides an in-memory fake of the remote API for tests.
package fineracttest

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"github.com/openmf/fieldops/internal/domain/model"
)

// APIPath is the path prefix of the fake API.
const APIPath = "/fineract-provider/api/v1"

// Tenant is the tenant identifier every request must carry.
const Tenant = "default"

// Server is a fake remote API. Seed the exported fields before issuing
// requests; handlers copy what they read under mu.
type Server struct {
	srv *httptest.Server

	mu sync.Mutex

	Username string
	Password string
	UserID   int64

	Centers            []model.Center
	Clients            []model.Client
	CenterAssociations map[int64]model.CenterWithAssociations
	GroupAssociations  map[int64]model.GroupWithAssociations
	Groups             []model.Group
	Offices            []model.Office
	Staff              []model.Staff
	LoanProducts       []model.LoanProduct
	Loans              map[int64]model.LoanWithAssociations
	Charges            map[int64][]model.Charge
	LoanCharges        map[int64][]model.Charge
	Locations          map[int64][]model.UserLocation
	ReportCategories   map[string][]model.ReportItem
	// ReportParameters maps a report name (unquoted) to its parameter list.
	ReportParameters map[string]model.FullParameterListResponse
	// ParameterOptions maps a parameter name to its option rows.
	ParameterOptions map[string]model.FullParameterListResponse
	// ReportResults maps a report name to its output.
	ReportResults map[string]model.FullParameterListResponse
	// GroupLoanTemplates maps a group id to its loan template.
	GroupLoanTemplates  map[int64]model.GroupLoanTemplate
	ClientChargeOptions []model.ChargeOption
	LoanChargeOptions   []model.ChargeOption
	// GroupLoans records submitted group loan applications.
	GroupLoans []model.GroupLoanPayload

	failures map[string]failure
	hits     map[string]int
	queries  map[string][]map[string]string
	paths    map[string][]string
	hold     map[string]chan struct{}
}

type failure struct {
	status  int
	message string
}

// New starts a fake server that is closed when the test ends.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		Username:           "mifos",
		Password:           "password",
		UserID:             1,
		CenterAssociations: map[int64]model.CenterWithAssociations{},
		GroupAssociations:  map[int64]model.GroupWithAssociations{},
		Loans:              map[int64]model.LoanWithAssociations{},
		Charges:            map[int64][]model.Charge{},
		LoanCharges:        map[int64][]model.Charge{},
		Locations:          map[int64][]model.UserLocation{},
		ReportCategories:   map[string][]model.ReportItem{},
		ReportParameters:   map[string]model.FullParameterListResponse{},
		ParameterOptions:   map[string]model.FullParameterListResponse{},
		ReportResults:      map[string]model.FullParameterListResponse{},
		GroupLoanTemplates: map[int64]model.GroupLoanTemplate{},
		failures:           map[string]failure{},
		hits:               map[string]int{},
		queries:            map[string][]map[string]string{},
		paths:              map[string][]string{},
		hold:               map[string]chan struct{}{},
	}
	s.srv = httptest.NewServer(s.router())
	t.Cleanup(s.srv.Close)
	return s
}

// URL returns the API base URL.
func (s *Server) URL() string { return s.srv.URL + APIPath }

// Fail makes the named route answer with status and a Fineract error envelope.
// A zero status clears the failure.
func (s *Server) Fail(route string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		delete(s.failures, route)
		return
	}
	s.failures[route] = failure{status: status, message: message}
}

// Hold blocks the named route until the returned release func is called.
func (s *Server) Hold(route string) (release func()) {
	ch := make(chan struct{})
	s.mu.Lock()
	s.hold[route] = ch
	s.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.hold, route)
			s.mu.Unlock()
			close(ch)
		})
	}
}

// Hits returns how many requests reached the named route.
func (s *Server) Hits(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[route]
}

// LastQuery returns the query parameters of the latest request to route.
func (s *Server) LastQuery(route string) map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	qs := s.queries[route]
	if len(qs) == 0 {
		return nil
	}
	return qs[len(qs)-1]
}

// LastPath returns the escaped request path of the most recent call to route.
func (s *Server) LastPath(route string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ps := s.paths[route]
	if len(ps) == 0 {
		return ""
	}
	return ps[len(ps)-1]
}

// AuthKey is the basic auth key handed out by /authentication.
func (s *Server) AuthKey() string {
	return base64.StdEncoding.EncodeToString([]byte(s.Username + ":" + s.Password))
}

func (s *Server) router() http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix(APIPath).Subrouter()
	api.Use(s.tenantMiddleware)

	api.HandleFunc("/authentication", s.route("authentication", s.handleAuthenticate)).Methods(http.MethodPost)

	secured := api.NewRoute().Subrouter()
	secured.Use(s.authMiddleware)
	secured.HandleFunc("/centers", s.route("centers", s.handleCenters)).Methods(http.MethodGet)
	secured.HandleFunc("/centers/{id:[0-9]+}", s.route("center", s.handleCenter)).Methods(http.MethodGet)
	secured.HandleFunc("/centers/{id:[0-9]+}", s.route("center_command", s.handleCenterCommand)).Methods(http.MethodPost)
	secured.HandleFunc("/clients", s.route("clients", s.handleClients)).Methods(http.MethodGet)
	secured.HandleFunc("/clients/{id:[0-9]+}/charges", s.route("client_charges", s.handleClientCharges)).Methods(http.MethodGet)
	secured.HandleFunc("/clients/{id:[0-9]+}/charges", s.route("create_client_charge", s.handleCreateCharge)).Methods(http.MethodPost)
	secured.HandleFunc("/groups", s.route("groups", s.handleGroups)).Methods(http.MethodGet)
	secured.HandleFunc("/groups/{id:[0-9]+}", s.route("group", s.handleGroup)).Methods(http.MethodGet)
	secured.HandleFunc("/offices", s.route("offices", s.handleOffices)).Methods(http.MethodGet)
	secured.HandleFunc("/staff", s.route("staff", s.handleStaff)).Methods(http.MethodGet)
	secured.HandleFunc("/loanproducts", s.route("loan_products", s.handleLoanProducts)).Methods(http.MethodGet)
	secured.HandleFunc("/loans/template", s.route("group_loan_template", s.handleGroupLoanTemplate)).Methods(http.MethodGet)
	secured.HandleFunc("/loans", s.route("create_loan", s.handleCreateGroupLoan)).Methods(http.MethodPost)
	secured.HandleFunc("/loans/{id:[0-9]+}/charges/template", s.route("loan_charge_template", s.handleChargeTemplate)).
		Methods(http.MethodGet)
	secured.HandleFunc("/clients/{id:[0-9]+}/charges/template", s.route("client_charge_template", s.handleChargeTemplate)).
		Methods(http.MethodGet)
	secured.HandleFunc("/loans/{id:[0-9]+}", s.route("loan", s.handleLoan)).Methods(http.MethodGet)
	secured.HandleFunc("/loans/{id:[0-9]+}", s.route("loan_command", s.handleLoanCommand)).Methods(http.MethodPost)
	secured.HandleFunc("/loans/{id:[0-9]+}/charges", s.route("loan_charges", s.handleLoanCharges)).Methods(http.MethodGet)
	secured.HandleFunc("/loans/{id:[0-9]+}/charges", s.route("create_loan_charge", s.handleCreateCharge)).Methods(http.MethodPost)
	secured.HandleFunc("/runreports/{name}", s.route("runreports", s.handleRunReports)).Methods(http.MethodGet)
	secured.HandleFunc("/datatables/user_location/{id:[0-9]+}", s.route("user_locations", s.handleUserLocations)).
		Methods(http.MethodGet)
	secured.HandleFunc("/datatables/user_location/{id:[0-9]+}", s.route("add_user_location", s.handleAddUserLocation)).
		Methods(http.MethodPost)
	return r
}

// route records the hit, then applies holds and injected failures before
// delegating to h.
func (s *Server) route(name string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits[name]++
		q := map[string]string{}
		for k, v := range r.URL.Query() {
			q[k] = strings.Join(v, ",")
		}
		s.queries[name] = append(s.queries[name], q)
		s.paths[name] = append(s.paths[name], r.URL.EscapedPath())
		fail, failing := s.failures[name]
		hold := s.hold[name]
		s.mu.Unlock()

		if hold != nil {
			select {
			case <-hold:
			case <-r.Context().Done():
				return
			}
		}
		if failing {
			writeError(w, fail.status, fail.message)
			return
		}
		h(w, r)
	}
}

func (s *Server) tenantMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Fineract-Platform-TenantId") != Tenant {
			writeError(w, http.StatusBadRequest, "Invalid tenant identifier")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Basic "+s.AuthKey() && !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			writeError(w, http.StatusUnauthorized, "")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	body := map[string]any{
		"httpStatusCode":     strconv.Itoa(status),
		"developerMessage":   http.StatusText(status),
		"defaultUserMessage": message,
	}
	if message != "" {
		body["errors"] = []map[string]string{{"defaultUserMessage": message}}
	}
	writeJSON(w, status, body)
}

func pathID(r *http.Request) int64 {
	v, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return v
}

func intQuery(r *http.Request, key string, def int) int {
	if v, err := strconv.Atoi(r.URL.Query().Get(key)); err == nil {
		return v
	}
	return def
}

// paginate slices items by the offset/limit query parameters.
func paginate[T any](r *http.Request, items []T) model.Page[T] {
	offset := intQuery(r, "offset", 0)
	limit := intQuery(r, "limit", 100)
	page := model.Page[T]{TotalFilteredRecords: len(items), PageItems: []T{}}
	if offset < 0 || offset >= len(items) || limit <= 0 {
		return page
	}
	end := min(offset+limit, len(items))
	page.PageItems = append(page.PageItems, items[offset:end]...)
	return page
}
