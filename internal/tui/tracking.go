package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/openmf/fieldops/internal/domain/model"
	apperrors "github.com/openmf/fieldops/internal/errors"
	"github.com/openmf/fieldops/internal/presenter"
	"github.com/openmf/fieldops/internal/service"
)

// Recorder records tracking sessions, see service.PathRecorder.
type Recorder interface {
	Recording() bool
	Start(ctx context.Context, src service.LocationSource) (uuid.UUID, error)
	Stop(ctx context.Context) (model.UserLocation, error)
}

type trackingStoppedMsg struct {
	loc model.UserLocation
	err error
}

// trackingScreen lists recorded sessions and starts or stops a recording.
type trackingScreen struct {
	ctx       context.Context
	presenter *presenter.PathTrackingPresenter
	recorder  Recorder
	source    func() (service.LocationSource, error)
	userID    int64

	locations []model.UserLocation
	cursor    int
	busy      bool
	empty     string
	banner    string
	notice    string
}

func (s *trackingScreen) title() string { return "Path tracking" }

func (s *trackingScreen) PresentLocations(locs []model.UserLocation) {
	s.locations = locs
	s.empty, s.banner = "", ""
	if s.cursor >= len(locs) {
		s.cursor = max(len(locs)-1, 0)
	}
}

func (s *trackingScreen) PresentEmpty(msg string) {
	s.locations = nil
	s.cursor = 0
	s.empty = msg
}

func (s *trackingScreen) PresentError(msg string) { s.banner = msg }

func (s *trackingScreen) PresentBusy(busy bool) { s.busy = busy }

func (s *trackingScreen) activate() tea.Cmd {
	if err := s.presenter.AttachView(s); err != nil {
		s.banner = err.Error()
		return nil
	}
	s.presenter.LoadPathTracking(s.ctx, s.userID)
	return nil
}

func (s *trackingScreen) deactivate() {
	s.presenter.DetachView()
	s.busy = false
}

func (s *trackingScreen) capturing() bool { return false }

func (s *trackingScreen) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case trackingStoppedMsg:
		if msg.err != nil {
			s.notice = ""
			s.banner = apperrors.UserMessage(msg.err)
			return nil
		}
		s.notice = fmt.Sprintf("Uploaded session %s to %s", msg.loc.StartTime, msg.loc.StopTime)
		s.presenter.LoadPathTracking(s.ctx, s.userID)
	case tea.KeyMsg:
		return s.updateKeys(msg)
	}
	return nil
}

func (s *trackingScreen) updateKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.locations)-1 {
			s.cursor++
		}
	case "r", "t":
		s.banner = ""
		s.presenter.LoadPathTracking(s.ctx, s.userID)
	case "enter":
		if s.cursor < len(s.locations) {
			url, err := presenter.Directions(s.locations[s.cursor])
			if err != nil {
				s.notice = apperrors.UserMessage(err)
				return nil
			}
			s.notice = url
		}
	case "n":
		s.startRecording()
	case "x":
		return s.stopRecording()
	}
	return nil
}

func (s *trackingScreen) startRecording() {
	if s.recorder == nil || s.source == nil {
		s.notice = "Recording is not configured"
		return
	}
	src, err := s.source()
	if err != nil {
		s.banner = err.Error()
		return
	}
	if _, err := s.recorder.Start(s.ctx, src); err != nil {
		s.notice = apperrors.UserMessage(err)
		return
	}
	s.notice = "Recording..."
}

func (s *trackingScreen) stopRecording() tea.Cmd {
	if s.recorder == nil || !s.recorder.Recording() {
		return nil
	}
	s.notice = "Uploading session..."
	ctx, rec := s.ctx, s.recorder
	return func() tea.Msg {
		loc, err := rec.Stop(ctx)
		return trackingStoppedMsg{loc: loc, err: err}
	}
}

func (s *trackingScreen) view(width, height int) string {
	var b strings.Builder
	if s.banner != "" {
		b.WriteString(errorStyle.Render(s.banner) + "\n")
	}
	switch {
	case s.empty != "":
		b.WriteString(dimStyle.Render(s.empty) + "\n")
	case len(s.locations) == 0 && s.busy:
		b.WriteString(dimStyle.Render("Loading...") + "\n")
	default:
		rows := max(height-4, 1)
		start := max(s.cursor-rows+1, 0)
		for i := start; i < len(s.locations) && i < start+rows; i++ {
			loc := s.locations[i]
			prefix := "  "
			if i == s.cursor {
				prefix = cursorStyle.Render("> ")
			}
			points := 0
			if path, err := loc.Path(); err == nil {
				points = len(path)
			}
			b.WriteString(fmt.Sprintf("%s%-18s %s - %s  %d points\n", prefix, loc.Date, loc.StartTime, loc.StopTime, points))
		}
	}

	footer := "enter directions  r reload"
	if s.recorder != nil {
		if s.recorder.Recording() {
			footer += "  x stop recording"
		} else {
			footer += "  n start recording"
		}
	}
	if s.notice != "" {
		footer += "  " + noticeStyle.Render(s.notice)
	}
	b.WriteString(helpStyle.Render(footer))
	return b.String()
}
