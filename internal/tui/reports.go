package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/openmf/fieldops/internal/domain/model"
	"github.com/openmf/fieldops/internal/presenter"
)

// maxReportRows caps the rows rendered from a report result.
const maxReportRows = 200

// reportsScreen lists the reports of a category and, once one is opened,
// shows its parameter form and result. It is the view of both the list
// and the detail presenter.
type reportsScreen struct {
	ctx    context.Context
	list   *presenter.ReportListPresenter
	detail *presenter.ReportDetailPresenter

	category int
	reports  []model.ReportItem
	cursor   int

	open    bool
	form    *presenter.ReportForm
	field   int
	editing bool
	input   string
	result  *model.FullParameterListResponse

	busy   bool
	empty  string
	banner string
	notice string
}

func (s *reportsScreen) title() string { return "Reports" }

func (s *reportsScreen) PresentReports(category string, reports []model.ReportItem) {
	if category != presenter.ReportCategories[s.category] {
		return
	}
	s.reports = reports
	s.cursor = 0
	s.empty, s.banner = "", ""
}

func (s *reportsScreen) PresentForm(form *presenter.ReportForm) {
	s.form = form
	s.field = 0
	s.result = nil
	s.empty, s.banner = "", ""
}

func (s *reportsScreen) PresentOptions(string, []model.SelectOption) {}

func (s *reportsScreen) PresentReport(result *model.FullParameterListResponse) {
	s.result = result
	s.empty, s.banner = "", ""
}

func (s *reportsScreen) PresentEmpty(msg string) {
	if !s.open {
		s.reports = nil
	}
	s.result = nil
	s.empty = msg
}

func (s *reportsScreen) PresentError(msg string) { s.banner = msg }

func (s *reportsScreen) PresentBusy(busy bool) { s.busy = busy }

// ShowMessage implements presenter.MessageView.
func (s *reportsScreen) ShowMessage(msg string) { s.notice = msg }

func (s *reportsScreen) activate() tea.Cmd {
	if err := s.list.AttachView(s); err != nil {
		s.banner = err.Error()
		return nil
	}
	if err := s.detail.AttachView(s); err != nil {
		s.banner = err.Error()
		return nil
	}
	s.list.LoadReports(s.ctx, presenter.ReportCategories[s.category])
	return nil
}

func (s *reportsScreen) deactivate() {
	s.list.DetachView()
	s.detail.DetachView()
	s.closeReport()
	s.busy = false
}

func (s *reportsScreen) capturing() bool { return s.editing }

func (s *reportsScreen) closeReport() {
	s.open, s.editing = false, false
	s.form, s.result = nil, nil
	s.empty = ""
}

func (s *reportsScreen) update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case s.editing:
		s.updateInput(key)
	case s.open:
		s.updateForm(key)
	default:
		s.updateList(key)
	}
	return nil
}

func (s *reportsScreen) updateList(key tea.KeyMsg) {
	switch key.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.reports)-1 {
			s.cursor++
		}
	case "left", "h", "right", "l":
		n := len(presenter.ReportCategories)
		if key.String() == "left" || key.String() == "h" {
			s.category = (s.category + n - 1) % n
		} else {
			s.category = (s.category + 1) % n
		}
		s.reports, s.empty = nil, ""
		s.list.LoadReports(s.ctx, presenter.ReportCategories[s.category])
	case "r", "t":
		s.banner = ""
		s.list.LoadReports(s.ctx, presenter.ReportCategories[s.category])
	case "enter":
		if s.cursor < len(s.reports) {
			s.open = true
			s.banner, s.notice, s.empty = "", "", ""
			s.detail.FetchFullParameterList(s.ctx, s.reports[s.cursor])
		}
	}
}

func (s *reportsScreen) currentField() *presenter.FormField {
	if s.form == nil || s.field >= len(s.form.Fields) {
		return nil
	}
	return s.form.Fields[s.field]
}

func (s *reportsScreen) updateForm(key tea.KeyMsg) {
	switch key.String() {
	case "esc":
		s.closeReport()
	case "up", "k":
		if s.field > 0 {
			s.field--
		}
	case "down", "j":
		if s.form != nil && s.field < len(s.form.Fields)-1 {
			s.field++
		}
	case "left", "h", "right", "l":
		f := s.currentField()
		if f == nil || f.Kind != presenter.FieldSelect || len(f.Options) == 0 {
			return
		}
		step := 1
		if key.String() == "left" || key.String() == "h" {
			step = len(f.Options) - 1
		}
		next := f.Options[(optionIndex(f)+step)%len(f.Options)].Label
		if err := s.detail.SelectOption(s.ctx, f.Key, next); err != nil {
			s.notice = err.Error()
		}
	case "enter":
		if f := s.currentField(); f != nil && f.Kind != presenter.FieldSelect {
			s.editing = true
			s.input = f.Value
		}
	case "g":
		s.notice, s.empty = "", ""
		s.detail.RunReport(s.ctx)
	}
}

func (s *reportsScreen) updateInput(key tea.KeyMsg) {
	switch key.Type {
	case tea.KeyEsc:
		s.editing = false
	case tea.KeyEnter:
		s.editing = false
		if f := s.currentField(); f != nil {
			if err := s.detail.SetText(f.Key, s.input); err != nil {
				s.notice = err.Error()
			}
		}
	case tea.KeyBackspace:
		if r := []rune(s.input); len(r) > 0 {
			s.input = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		s.input += string(key.Runes)
	}
}

func optionIndex(f *presenter.FormField) int {
	for i, o := range f.Options {
		if o.Label == f.Value {
			return i
		}
	}
	return 0
}

func (s *reportsScreen) view(width, height int) string {
	var b strings.Builder
	if s.banner != "" {
		b.WriteString(errorStyle.Render(s.banner) + "\n")
	}
	if s.open {
		s.viewForm(&b, width)
	} else {
		s.viewList(&b, height)
	}
	if s.empty != "" {
		b.WriteString(dimStyle.Render(s.empty) + "\n")
	}
	if s.busy {
		b.WriteString(dimStyle.Render("Loading...") + "\n")
	}
	footer := "h/l category  enter open"
	if s.open {
		footer = "j/k field  h/l choose  enter edit  g run  esc back"
	}
	if s.notice != "" {
		footer += "  " + noticeStyle.Render(s.notice)
	}
	b.WriteString(helpStyle.Render(footer))
	return b.String()
}

func (s *reportsScreen) viewList(b *strings.Builder, height int) {
	tabs := make([]string, len(presenter.ReportCategories))
	for i, c := range presenter.ReportCategories {
		if i == s.category {
			tabs[i] = activeTabStyle.Render(c)
		} else {
			tabs[i] = tabStyle.Render(c)
		}
	}
	b.WriteString(strings.Join(tabs, "") + "\n")
	rows := max(height-5, 1)
	start := max(s.cursor-rows+1, 0)
	for i := start; i < len(s.reports) && i < start+rows; i++ {
		prefix := "  "
		if i == s.cursor {
			prefix = cursorStyle.Render("> ")
		}
		b.WriteString(prefix + s.reports[i].ReportName + "\n")
	}
}

func (s *reportsScreen) viewForm(b *strings.Builder, width int) {
	if s.form == nil {
		return
	}
	b.WriteString(titleStyle.Render(s.form.Report.ReportName) + "\n")
	for i, f := range s.form.Fields {
		prefix := "  "
		if i == s.field {
			prefix = cursorStyle.Render("> ")
		}
		value := f.Value
		if s.editing && i == s.field {
			value = s.input + cursorStyle.Render("_")
		}
		if value == "" {
			value = dimStyle.Render("(blank)")
		}
		b.WriteString(fmt.Sprintf("%s%-22s %s\n", prefix, f.Label, value))
	}
	if s.result != nil {
		b.WriteString("\n" + renderResult(s.result, width))
	}
}

func renderResult(r *model.FullParameterListResponse, width int) string {
	var b strings.Builder
	headers := make([]string, len(r.ColumnHeaders))
	for i, h := range r.ColumnHeaders {
		headers[i] = h.ColumnName
	}
	b.WriteString(titleStyle.Render(truncateBytes(strings.Join(headers, " | "), width)) + "\n")
	for i, row := range r.Data {
		if i == maxReportRows {
			b.WriteString(dimStyle.Render(fmt.Sprintf("... %d more rows", len(r.Data)-i)) + "\n")
			break
		}
		cells := make([]string, len(r.ColumnHeaders))
		for c := range cells {
			cells[c] = row.Cell(c)
		}
		b.WriteString(truncateBytes(strings.Join(cells, " | "), width) + "\n")
	}
	return b.String()
}

func truncateBytes(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	return s[:width]
}
