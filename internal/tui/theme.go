package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorText    lipgloss.Color = "#cdd6f4"
	colorSubtext lipgloss.Color = "#a6adc8"
	colorOverlay lipgloss.Color = "#6c7086"
	colorSurface lipgloss.Color = "#313244"
	colorAccent  lipgloss.Color = "#89b4fa"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorError   lipgloss.Color = "#f38ba8"
	colorWarning lipgloss.Color = "#f9e2af"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(colorSubtext)
	activeTabStyle = tabStyle.Bold(true).Foreground(colorText).Background(colorSurface)
	cursorStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	selectedStyle  = lipgloss.NewStyle().Foreground(colorWarning)
	syncedStyle    = lipgloss.NewStyle().Foreground(colorSuccess)
	dimStyle       = lipgloss.NewStyle().Foreground(colorOverlay)
	errorStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	noticeStyle    = lipgloss.NewStyle().Foreground(colorWarning)
	helpStyle      = lipgloss.NewStyle().Foreground(colorOverlay)
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface).Padding(0, 1)
)
