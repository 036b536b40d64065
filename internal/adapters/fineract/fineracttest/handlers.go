package fineracttest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/openmf/fieldops/internal/domain/model"
)

func (s *Server) handleAuthenticate(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed credentials")
		return
	}
	s.mu.Lock()
	ok := creds.Username == s.Username && creds.Password == s.Password
	userID := s.UserID
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid username or password.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"username":                       creds.Username,
		"userId":                         userID,
		"officeId":                       1,
		"officeName":                     "Head Office",
		"authenticated":                  true,
		"base64EncodedAuthenticationKey": s.AuthKey(),
	})
}

func (s *Server) handleCenters(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	centers := append([]model.Center(nil), s.Centers...)
	s.mu.Unlock()

	if office := r.URL.Query().Get("officeId"); office != "" && r.URL.Query().Get("paged") != "true" {
		officeID, _ := strconv.ParseInt(office, 10, 64)
		out := []model.Center{}
		for _, c := range centers {
			if c.OfficeID == officeID {
				out = append(out, c)
			}
		}
		writeJSON(w, http.StatusOK, out)
		return
	}
	writeJSON(w, http.StatusOK, paginate(r, centers))
}

func (s *Server) handleCenter(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	center, ok := s.CenterAssociations[pathID(r)]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Center does not exist")
		return
	}
	writeJSON(w, http.StatusOK, center)
}

func (s *Server) handleCenterCommand(w http.ResponseWriter, r *http.Request) {
	centerID := pathID(r)
	switch r.URL.Query().Get("command") {
	case "generateCollectionSheet":
		var req model.CollectionSheetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CalendarID == 0 {
			writeError(w, http.StatusBadRequest, "The parameter calendarId is mandatory.")
			return
		}
		s.mu.Lock()
		center := s.CenterAssociations[centerID]
		s.mu.Unlock()
		sheet := model.CollectionSheet{}
		for _, g := range center.GroupMembers {
			sheet.Groups = append(sheet.Groups, model.CollectionSheetGroup{GroupID: g.ID, GroupName: g.Name})
		}
		writeJSON(w, http.StatusOK, sheet)
	case "saveCollectionSheet":
		writeJSON(w, http.StatusOK, model.SaveResponse{GroupID: centerID, ResourceID: centerID})
	default:
		writeError(w, http.StatusBadRequest, "Unrecognized command")
	}
}

func (s *Server) handleClients(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	clients := append([]model.Client(nil), s.Clients...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, paginate(r, clients))
}

func (s *Server) handleClientCharges(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	charges := append([]model.Charge(nil), s.Charges[pathID(r)]...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, paginate(r, charges))
}

func (s *Server) handleCreateCharge(w http.ResponseWriter, r *http.Request) {
	var payload model.ChargesPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.ChargeID == 0 {
		writeError(w, http.StatusBadRequest, "The parameter chargeId is mandatory.")
		return
	}
	owner := pathID(r)
	onLoan := strings.Contains(r.URL.Path, "/loans/")
	s.mu.Lock()
	charges := s.Charges
	if onLoan {
		charges = s.LoanCharges
	}
	resourceID := int64(len(charges[owner]) + 1)
	charges[owner] = append(charges[owner], model.Charge{ID: resourceID, ChargeID: payload.ChargeID, Amount: payload.Amount})
	s.mu.Unlock()

	resp := model.ChargeCreationResponse{ResourceID: resourceID}
	if onLoan {
		resp.LoanID = owner
	} else {
		resp.ClientID = owner
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGroups(w http.ResponseWriter, r *http.Request) {
	officeID, _ := strconv.ParseInt(r.URL.Query().Get("officeId"), 10, 64)
	s.mu.Lock()
	out := []model.Group{}
	for _, g := range s.Groups {
		if officeID == 0 || g.OfficeID == officeID {
			out = append(out, g)
		}
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGroup(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	group, ok := s.GroupAssociations[pathID(r)]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Group does not exist")
		return
	}
	writeJSON(w, http.StatusOK, group)
}

func (s *Server) handleOffices(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	out := append([]model.Office{}, s.Offices...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleStaff(w http.ResponseWriter, r *http.Request) {
	officeID, _ := strconv.ParseInt(r.URL.Query().Get("officeId"), 10, 64)
	s.mu.Lock()
	out := []model.Staff{}
	for _, st := range s.Staff {
		if officeID == 0 || st.OfficeID == officeID {
			out = append(out, st)
		}
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleLoanProducts(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	out := append([]model.LoanProduct{}, s.LoanProducts...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleLoan(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	loan, ok := s.Loans[pathID(r)]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Loan does not exist")
		return
	}
	switch r.URL.Query().Get("associations") {
	case "transactions":
		loan.RepaymentSchedule = nil
	case "repaymentSchedule":
		loan.Transactions = nil
	}
	writeJSON(w, http.StatusOK, loan)
}

func (s *Server) handleLoanCommand(w http.ResponseWriter, r *http.Request) {
	loanID := pathID(r)
	if r.URL.Query().Get("command") != "approve" {
		writeError(w, http.StatusBadRequest, "Unrecognized command")
		return
	}
	var approval model.LoanApproval
	if err := json.NewDecoder(r.Body).Decode(&approval); err != nil || approval.ApprovedOnDate == "" {
		writeError(w, http.StatusBadRequest, "The parameter approvedOnDate is mandatory.")
		return
	}
	s.mu.Lock()
	loan, ok := s.Loans[loanID]
	if ok {
		loan.Status = model.Status{ID: 200, Code: "loanStatusType.approved", Value: "Approved"}
		s.Loans[loanID] = loan
	}
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Loan does not exist")
		return
	}
	writeJSON(w, http.StatusOK, model.GenericResponse{LoanID: loanID, ResourceID: loanID, ClientID: loan.ClientID})
}

func (s *Server) handleLoanCharges(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := append([]model.Charge{}, s.LoanCharges[pathID(r)]...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGroupLoanTemplate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("templateType") != "group" {
		writeError(w, http.StatusBadRequest, "Unsupported template type")
		return
	}
	groupID, _ := strconv.ParseInt(q.Get("groupId"), 10, 64)
	s.mu.Lock()
	tmpl, ok := s.GroupLoanTemplates[groupID]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Group does not exist")
		return
	}
	if q.Get("productId") == "" {
		tmpl = model.GroupLoanTemplate{
			GroupID:        tmpl.GroupID,
			GroupName:      tmpl.GroupName,
			GroupOfficeID:  tmpl.GroupOfficeID,
			ProductOptions: tmpl.ProductOptions,
		}
	}
	writeJSON(w, http.StatusOK, tmpl)
}

func (s *Server) handleCreateGroupLoan(w http.ResponseWriter, r *http.Request) {
	var payload model.GroupLoanPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.ProductID == 0 {
		writeError(w, http.StatusBadRequest, "The parameter productId is mandatory.")
		return
	}
	if payload.LoanType != "group" || payload.GroupID == 0 {
		writeError(w, http.StatusBadRequest, "The parameter groupId is mandatory for group loans.")
		return
	}
	s.mu.Lock()
	s.GroupLoans = append(s.GroupLoans, payload)
	loanID := int64(len(s.GroupLoans))
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, model.GenericResponse{LoanID: loanID, ResourceID: loanID})
}

func (s *Server) handleChargeTemplate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	opts := s.ClientChargeOptions
	if strings.Contains(r.URL.Path, "/loans/") {
		opts = s.LoanChargeOptions
	}
	out := model.ChargeTemplate{ChargeOptions: append([]model.ChargeOption{}, opts...)}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRunReports(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	q := r.URL.Query()

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case name == "reportCategoryList":
		writeJSON(w, http.StatusOK, append([]model.ReportItem{}, s.ReportCategories[q.Get("R_reportCategory")]...))
	case name == "FullParameterList":
		report := strings.Trim(q.Get("R_reportListing"), "'")
		params, ok := s.ReportParameters[report]
		if !ok {
			writeError(w, http.StatusNotFound, "Report "+report+" does not exist")
			return
		}
		writeJSON(w, http.StatusOK, params)
	case q.Get("parameterType") == "true":
		opts, ok := s.ParameterOptions[name]
		if !ok {
			writeError(w, http.StatusNotFound, "Parameter "+name+" does not exist")
			return
		}
		writeJSON(w, http.StatusOK, filterOptions(opts, q.Get("R_officeId"), q.Get("R_currencyId")))
	default:
		result, ok := s.ReportResults[name]
		if !ok {
			writeError(w, http.StatusNotFound, "Report "+name+" does not exist")
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// filterOptions keeps rows whose third cell matches the dependent filter,
// mirroring office-scoped officer lists and currency-scoped products.
func filterOptions(opts model.FullParameterListResponse, filters ...string) model.FullParameterListResponse {
	var filter string
	for _, f := range filters {
		if f != "" {
			filter = f
		}
	}
	if filter == "" {
		return opts
	}
	out := model.FullParameterListResponse{ColumnHeaders: opts.ColumnHeaders, Data: []model.DataRow{}}
	for _, row := range opts.Data {
		if len(row.Row) < 3 || row.Cell(2) == filter || row.Cell(0) == "-1" {
			out.Data = append(out.Data, row)
		}
	}
	return out
}

func (s *Server) handleUserLocations(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := append([]model.UserLocation{}, s.Locations[pathID(r)]...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAddUserLocation(w http.ResponseWriter, r *http.Request) {
	var loc model.UserLocation
	if err := json.NewDecoder(r.Body).Decode(&loc); err != nil || loc.LatLng == "" {
		writeError(w, http.StatusBadRequest, "The parameter latlng is mandatory.")
		return
	}
	userID := pathID(r)
	s.mu.Lock()
	loc.ID = int64(len(s.Locations[userID]) + 1)
	s.Locations[userID] = append(s.Locations[userID], loc)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"resourceId": userID})
}
