package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/openmf/fieldops/internal/domain/model"
	"github.com/openmf/fieldops/internal/presenter"
	"github.com/openmf/fieldops/internal/service"
)

// loadMoreThreshold is how close to the end the cursor gets before the
// next page is requested.
const loadMoreThreshold = 3

// screen is one tab of the application.
type screen interface {
	title() string
	// activate binds the screen to its presenter and starts the first load.
	activate() tea.Cmd
	deactivate()
	update(msg tea.Msg) tea.Cmd
	view(width, height int) string
	// capturing reports whether keys go to a text input.
	capturing() bool
}

type listPresenter[T model.Entity] interface {
	DetachView()
	LoadFirstPage(ctx context.Context) bool
	LoadNextPage(ctx context.Context, currentCount int) bool
	LoadLocalSnapshot(ctx context.Context) bool
}

// SyncFunc stores the selected entities locally.
type SyncFunc[T model.Entity] func(ctx context.Context, items []T, progress service.SyncProgress) (*service.SyncReport, error)

type syncDoneMsg struct {
	screen string
	report *service.SyncReport
	err    error
}

// listScreen renders a paged entity list and implements the list view
// contract. Outer screens embed it and attach themselves.
type listScreen[T model.Entity] struct {
	name      string
	ctx       context.Context
	presenter listPresenter[T]
	attach    func() error
	sync      SyncFunc[T]
	row       func(T) string
	// enter runs when enter is pressed on an item. Optional.
	enter func(T) tea.Cmd

	items   []T
	cursor  int
	top     int
	mode    presenter.ActionMode
	busy    bool
	empty   string
	banner  string
	notice  string
	syncing bool

	filtering bool
	query     string
}

func (s *listScreen[T]) title() string { return s.name }

func (s *listScreen[T]) PresentList(items []T) {
	s.items = slices.Clone(items)
	s.mode.ListReplaced()
	s.empty, s.banner = "", ""
	s.clampCursor()
}

func (s *listScreen[T]) PresentAppended(items []T) {
	s.items = append(s.items, items...)
	s.empty = ""
}

func (s *listScreen[T]) PresentEmpty(msg string) {
	s.items = nil
	s.mode.End()
	s.empty = msg
	s.cursor, s.top = 0, 0
}

func (s *listScreen[T]) PresentError(msg string) { s.banner = msg }

func (s *listScreen[T]) PresentBusy(busy bool) { s.busy = busy }

// ShowMessage implements presenter.MessageView.
func (s *listScreen[T]) ShowMessage(msg string) { s.notice = msg }

func (s *listScreen[T]) activate() tea.Cmd {
	if err := s.attach(); err != nil {
		s.banner = err.Error()
		return nil
	}
	s.presenter.LoadLocalSnapshot(s.ctx)
	s.presenter.LoadFirstPage(s.ctx)
	return nil
}

func (s *listScreen[T]) deactivate() {
	s.presenter.DetachView()
	s.mode.End()
	s.items = nil
	s.cursor, s.top = 0, 0
	s.empty, s.banner, s.notice = "", "", ""
	s.busy = false
	s.filtering = false
	s.query = ""
}

func (s *listScreen[T]) capturing() bool { return s.filtering }

// visible returns the item positions shown with the current filter.
func (s *listScreen[T]) visible() []int {
	if s.query == "" {
		out := make([]int, len(s.items))
		for i := range out {
			out[i] = i
		}
		return out
	}
	rows := make([]string, len(s.items))
	for i, it := range s.items {
		rows[i] = s.row(it)
	}
	return filterIndices(rows, s.query)
}

func (s *listScreen[T]) clampCursor() {
	n := len(s.visible())
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// position maps the cursor onto the underlying list, or -1.
func (s *listScreen[T]) position() int {
	vis := s.visible()
	if s.cursor < 0 || s.cursor >= len(vis) {
		return -1
	}
	return vis[s.cursor]
}

func (s *listScreen[T]) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case syncDoneMsg:
		if msg.screen == s.name {
			return s.syncDone(msg)
		}
	case tea.KeyMsg:
		if s.filtering {
			s.updateFilter(msg)
			return nil
		}
		return s.updateKeys(msg)
	}
	return nil
}

func (s *listScreen[T]) updateFilter(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEnter:
		s.filtering = false
	case tea.KeyEsc:
		s.filtering = false
		s.query = ""
	case tea.KeyBackspace:
		if r := []rune(s.query); len(r) > 0 {
			s.query = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		s.query += string(msg.Runes)
	}
	s.cursor = 0
	s.clampCursor()
}

func (s *listScreen[T]) updateKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.visible())-1 {
			s.cursor++
		}
		s.maybeLoadMore()
	case "r":
		s.notice = ""
		s.presenter.LoadFirstPage(s.ctx)
	case "t":
		s.banner, s.notice = "", ""
		s.presenter.LoadFirstPage(s.ctx)
	case " ":
		if pos := s.position(); pos >= 0 {
			if s.mode.Active() {
				s.mode.Toggle(pos)
			} else {
				s.mode.LongPress(pos)
			}
		}
	case "esc":
		if s.mode.Active() {
			s.mode.End()
		} else {
			s.query = ""
			s.clampCursor()
		}
	case "/":
		s.filtering = true
	case "s":
		return s.startSync()
	case "enter":
		if pos := s.position(); pos >= 0 && s.enter != nil {
			return s.enter(s.items[pos])
		}
	}
	return nil
}

func (s *listScreen[T]) maybeLoadMore() {
	if s.query != "" || len(s.items) == 0 {
		return
	}
	if s.cursor >= len(s.items)-loadMoreThreshold {
		s.presenter.LoadNextPage(s.ctx, len(s.items))
	}
}

func (s *listScreen[T]) startSync() tea.Cmd {
	if s.sync == nil || s.syncing || !s.mode.Active() {
		return nil
	}
	picked := presenter.Pick(s.items, s.mode.Selection())
	if len(picked) == 0 {
		return nil
	}
	s.syncing = true
	s.notice = fmt.Sprintf("Syncing %d %s...", len(picked), strings.ToLower(s.name))
	ctx, name, sync := s.ctx, s.name, s.sync
	return func() tea.Msg {
		report, err := sync(ctx, picked, nil)
		return syncDoneMsg{screen: name, report: report, err: err}
	}
}

func (s *listScreen[T]) syncDone(msg syncDoneMsg) tea.Cmd {
	s.syncing = false
	s.mode.End()
	switch {
	case msg.err != nil:
		s.notice = ""
		s.banner = "Sync stopped: " + msg.err.Error()
	case len(msg.report.Failed()) > 0:
		s.notice = fmt.Sprintf("Synced %d, failed %d", msg.report.Synced(), len(msg.report.Failed()))
	default:
		s.notice = fmt.Sprintf("Synced %d", msg.report.Synced())
	}
	s.presenter.LoadLocalSnapshot(s.ctx)
	return nil
}

func (s *listScreen[T]) view(width, height int) string {
	var b strings.Builder
	if s.banner != "" {
		b.WriteString(errorStyle.Render(s.banner) + "  " + helpStyle.Render("t retry") + "\n")
	}
	if s.filtering || s.query != "" {
		b.WriteString(dimStyle.Render("/") + s.query)
		if s.filtering {
			b.WriteString(cursorStyle.Render("_"))
		}
		b.WriteString("\n")
	}

	rows := max(height-4, 1)
	vis := s.visible()
	switch {
	case s.empty != "":
		b.WriteString(dimStyle.Render(s.empty) + "\n")
	case len(vis) == 0 && s.busy:
		b.WriteString(dimStyle.Render("Loading...") + "\n")
	default:
		if s.cursor < s.top {
			s.top = s.cursor
		}
		if s.cursor >= s.top+rows {
			s.top = s.cursor - rows + 1
		}
		end := min(len(vis), s.top+rows)
		for i := s.top; i < end; i++ {
			b.WriteString(s.renderRow(i, vis[i], width) + "\n")
		}
		if s.busy && len(vis) > 0 {
			b.WriteString(dimStyle.Render("  loading more...") + "\n")
		}
	}

	footer := fmt.Sprintf("%d items", len(s.items))
	if s.mode.Active() {
		footer = fmt.Sprintf("%d selected  s sync  esc done", s.mode.Selection().Count())
	}
	if s.notice != "" {
		footer += "  " + noticeStyle.Render(s.notice)
	}
	b.WriteString(helpStyle.Render(footer))
	return b.String()
}

func (s *listScreen[T]) renderRow(i, pos, width int) string {
	item := s.items[pos]
	prefix := "  "
	if i == s.cursor {
		prefix = cursorStyle.Render("> ")
	}
	mark := "   "
	if s.mode.Active() {
		mark = "[ ]"
		if s.mode.Selection().Contains(pos) {
			mark = selectedStyle.Render("[x]")
		}
	}
	text := s.row(item)
	if lim := width - 8; lim > 0 {
		text = truncate(text, lim)
	}
	if sy, ok := any(item).(interface{ IsSynced() bool }); ok && sy.IsSynced() {
		text += " " + syncedStyle.Render("synced")
	}
	return prefix + mark + " " + text
}

// truncate cuts text to at most width terminal cells without splitting runes.
func truncate(text string, width int) string {
	if lipgloss.Width(text) <= width {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}
