package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/openmf/fieldops/internal/domain/model"
	"github.com/openmf/fieldops/internal/presenter"
	"github.com/openmf/fieldops/internal/service"
)

// Options groups the presenters and services behind the screens.
type Options struct {
	Poster       *Poster                          // Required
	Centers      *presenter.CenterListPresenter   // Required
	Clients      *presenter.ClientListPresenter   // Required
	Tracking     *presenter.PathTrackingPresenter // Required
	ReportList   *presenter.ReportListPresenter   // Required
	ReportDetail *presenter.ReportDetailPresenter // Required

	// Sync stores selected entities locally. Nil disables the sync action.
	Sync *service.SyncService
	// Recorder and NewSource enable recording on the tracking screen.
	Recorder  Recorder
	NewSource func() (service.LocationSource, error)
	UserID    int64
}

// App is the root Bubble Tea model.
type App struct {
	ctx     context.Context
	poster  *Poster
	screens []screen
	active  int
	width   int
	height  int
}

var _ tea.Model = (*App)(nil)

// New builds the application. ctx bounds every request the screens issue.
func New(ctx context.Context, opts Options) *App {
	if opts.Poster == nil || opts.Centers == nil || opts.Clients == nil ||
		opts.Tracking == nil || opts.ReportList == nil || opts.ReportDetail == nil {
		panic("tui.New requires a poster and every presenter")
	}
	var syncCenters SyncFunc[model.Center]
	var syncClients SyncFunc[model.Client]
	if opts.Sync != nil {
		syncCenters = opts.Sync.SyncCenters
		syncClients = opts.Sync.SyncClients
	}
	return &App{
		ctx:    ctx,
		poster: opts.Poster,
		screens: []screen{
			newCentersScreen(ctx, opts.Centers, syncCenters),
			newClientsScreen(ctx, opts.Clients, syncClients),
			&trackingScreen{
				ctx:       ctx,
				presenter: opts.Tracking,
				recorder:  opts.Recorder,
				source:    opts.NewSource,
				userID:    opts.UserID,
			},
			&reportsScreen{ctx: ctx, list: opts.ReportList, detail: opts.ReportDetail},
		},
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.screens[a.active].activate()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case drainMsg:
		a.poster.Drain()
		return a, nil
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a.quit()
		}
		if !a.screens[a.active].capturing() {
			switch msg.String() {
			case "q":
				return a.quit()
			case "tab":
				return a, a.switchTo((a.active + 1) % len(a.screens))
			case "shift+tab":
				return a, a.switchTo((a.active + len(a.screens) - 1) % len(a.screens))
			case "1", "2", "3", "4":
				return a, a.switchTo(int(msg.String()[0] - '1'))
			}
		}
		return a, a.screens[a.active].update(msg)
	}
	var cmds []tea.Cmd
	for _, s := range a.screens {
		if cmd := s.update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return a, tea.Batch(cmds...)
}

func (a *App) quit() (tea.Model, tea.Cmd) {
	a.screens[a.active].deactivate()
	a.poster.Close()
	return a, tea.Quit
}

// switchTo detaches the current screen before attaching the next, so a
// presenter never reaches a hidden screen.
func (a *App) switchTo(i int) tea.Cmd {
	if i == a.active || i < 0 || i >= len(a.screens) {
		return nil
	}
	a.screens[a.active].deactivate()
	a.active = i
	return a.screens[i].activate()
}

// View implements tea.Model.
func (a *App) View() string {
	tabs := make([]string, len(a.screens))
	for i, s := range a.screens {
		label := string(rune('1'+i)) + " " + s.title()
		if i == a.active {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = tabStyle.Render(label)
		}
	}
	header := titleStyle.Render("fieldops") + "  " + strings.Join(tabs, "")
	body := a.screens[a.active].view(a.width, a.height-3)
	help := helpStyle.Render("tab switch  j/k move  r refresh  space select  / filter  q quit")
	return header + "\n\n" + body + "\n" + help
}

// Run starts a full-screen program and blocks until the user quits or ctx
// ends.
func Run(ctx context.Context, app *App, extra ...tea.ProgramOption) error {
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, extra...)
	p := tea.NewProgram(app, opts...)
	app.poster.Bind(p.Send)
	_, err := p.Run()
	return err
}
