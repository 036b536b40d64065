package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/openmf/fieldops/internal/domain/model"
	"github.com/openmf/fieldops/internal/presenter"
)

// centersScreen lists centers; enter shows the groups and meeting of the
// center under the cursor.
type centersScreen struct {
	*listScreen[model.Center]
	centers *presenter.CenterListPresenter
	detail  string
}

func newCentersScreen(ctx context.Context, p *presenter.CenterListPresenter, sync SyncFunc[model.Center]) *centersScreen {
	s := &centersScreen{centers: p}
	s.listScreen = &listScreen[model.Center]{
		name:      "Centers",
		ctx:       ctx,
		presenter: p,
		attach:    func() error { return p.AttachView(s) },
		sync:      sync,
		row:       centerRow,
		enter: func(c model.Center) tea.Cmd {
			s.detail = ""
			p.LoadCenterGroupsAndMeeting(ctx, c.ID)
			return nil
		},
	}
	return s
}

func centerRow(c model.Center) string {
	return fmt.Sprintf("%-28s %-18s %s", c.Name, c.OfficeName, c.Status.Label())
}

// PresentCenterGroups implements presenter.CenterListView.
func (s *centersScreen) PresentCenterGroups(c *model.CenterWithAssociations) {
	names := make([]string, 0, len(c.GroupMembers))
	for _, g := range c.GroupMembers {
		names = append(names, g.Name)
	}
	groups := "no groups"
	if len(names) > 0 {
		groups = strings.Join(names, ", ")
	}
	meeting := ""
	if c.HasMeeting() {
		m := c.CollectionMeetingCalendar
		meeting = fmt.Sprintf("\nMeeting: %s from %s", m.Title, m.StartDate.Formatted())
	}
	s.detail = fmt.Sprintf("%s: %s%s", c.Name, groups, meeting)
}

// PresentNoMeeting implements presenter.CenterListView.
func (s *centersScreen) PresentNoMeeting(msg string) { s.notice = msg }

func (s *centersScreen) deactivate() {
	s.listScreen.deactivate()
	s.detail = ""
}

func (s *centersScreen) view(width, height int) string {
	if s.detail == "" {
		return s.listScreen.view(width, height)
	}
	panel := panelStyle.Width(max(width-4, 10)).Render(s.detail)
	return s.listScreen.view(width, height-lineCount(panel)) + "\n" + panel
}

// clientsScreen lists clients.
type clientsScreen struct {
	*listScreen[model.Client]
}

func newClientsScreen(ctx context.Context, p *presenter.ClientListPresenter, sync SyncFunc[model.Client]) *clientsScreen {
	s := &clientsScreen{}
	s.listScreen = &listScreen[model.Client]{
		name:      "Clients",
		ctx:       ctx,
		presenter: p,
		attach:    func() error { return p.AttachView(s) },
		sync:      sync,
		row:       clientRow,
	}
	return s
}

func clientRow(c model.Client) string {
	return fmt.Sprintf("%-28s %-12s %s", c.DisplayName(), c.AccountNo, c.Status.Label())
}

func lineCount(s string) int { return strings.Count(s, "\n") + 1 }
