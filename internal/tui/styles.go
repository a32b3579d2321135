package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			PaddingRight(1)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	activeStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	matchStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	focusedStyle  = lipgloss.NewStyle().Bold(true)
	paneStyle     = lipgloss.NewStyle().PaddingLeft(1)
)
