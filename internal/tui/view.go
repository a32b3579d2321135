package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cloud-editor/models"
	"github.com/charmbracelet/lipgloss"
)

const (
	sidebarHotKeys = "enter: open │ ←: up │ g: root │ t: tree │ n/N: new file/folder │ r: rename │ m: move │ d: delete"
	editorHotKeys  = "tab: next field │ esc: files │ ctrl+s: save │ ctrl+r: run │ ctrl+p: search │ ctrl+y: copy output │ f1: about"
)

func (m appModel) View() string {
	if m.overlay == overlayAbout {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.serverVersion))
	}

	listHeight := m.height - 10
	left := sidebarStyle.
		Width(sidebarWidth).
		Render(m.sidebar.View(m.session, sidebarWidth, listHeight, m.focus == focusSidebar))
	right := paneStyle.Render(m.viewEditor())

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	body += "\n\n" + m.viewFooter()

	switch m.overlay {
	case overlayPrompt:
		body += "\n\n" + m.prompt.View()
	case overlayMove:
		body += "\n\n" + m.move.View()
	case overlaySearch:
		body += "\n\n" + m.search.View()
	case overlayConfirm:
		body += "\n\n" + m.confirm.View()
	case overlayError:
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m appModel) viewEditor() string {
	var b strings.Builder

	active, ok := m.session.Active()
	switch {
	case m.loading:
		b.WriteString(helpStyle.Render("Loading workspace..."))
	case !ok:
		b.WriteString(helpStyle.Render("No file open"))
	default:
		title := active.Name
		if m.session.Dirty() {
			title += " ●"
		}
		if m.focus == focusCode {
			title = focusedStyle.Render(title)
		}
		b.WriteString(title)
	}
	b.WriteString("\n")
	b.WriteString(m.code.View())
	b.WriteString("\n\n")

	label := "Question"
	if m.focus == focusQuestion {
		label = focusedStyle.Render(label)
	}
	b.WriteString(label)
	b.WriteString("\n")
	b.WriteString(m.question.View())
	b.WriteString("\n\n")

	b.WriteString(m.viewSaveBar(ok))
	b.WriteString("\n\n")

	b.WriteString(m.viewOutputHeader())
	b.WriteString("\n")
	b.WriteString(m.output.View())

	return b.String()
}

// viewSaveBar shows the save state: in flight, unsaved changes or clean.
func (m appModel) viewSaveBar(hasFile bool) string {
	if !hasFile {
		return helpStyle.Render("[Save]  [Run]")
	}

	var save string
	switch {
	case m.session.Saving():
		save = m.spinner.View() + " Saving..."
	case m.session.Dirty():
		save = titleStyle.Render("[Save ctrl+s]")
	default:
		save = helpStyle.Render("[Saved]")
	}

	run := "[Run ctrl+r]"
	if m.running {
		run = m.spinner.View() + " Running..."
	}
	return save + "  " + run
}

func (m appModel) viewOutputHeader() string {
	header := "Output"
	if m.hasRun && !m.running {
		header += helpStyle.Render(fmt.Sprintf(" (%s)", m.lastRun.Duration.Round(1e6)))
	}
	return header
}

func (m appModel) viewFooter() string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.focus == focusSidebar {
		b.WriteString(helpStyle.Render(sidebarHotKeys))
	} else {
		b.WriteString(helpStyle.Render(editorHotKeys))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))
	return b.String()
}

func renderOutput(result models.RunResult) string {
	if result.Failed {
		return errorStyle.Render(result.Output)
	}
	if result.Output == "" {
		return helpStyle.Render("(no output)")
	}
	return result.Output
}
