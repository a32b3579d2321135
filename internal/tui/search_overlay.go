package tui

import (
	"strings"

	"github.com/MKhiriev/go-cloud-editor/internal/search"
	"github.com/charmbracelet/bubbles/textinput"
)

const searchLimit = 10

// searchModel is the command palette: a query input over fuzzy file name
// matches.
type searchModel struct {
	input   textinput.Model
	matches []search.Match
	idx     int
}

func newSearch() searchModel {
	in := textinput.New()
	in.Placeholder = "search files"
	in.Width = 40
	in.Focus()
	return searchModel{input: in}
}

func (m *searchModel) setMatches(matches []search.Match) {
	m.matches = matches
	if m.idx >= len(m.matches) {
		m.idx = len(m.matches) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m searchModel) selected() (search.Match, bool) {
	if len(m.matches) == 0 {
		return search.Match{}, false
	}
	return m.matches[m.idx], true
}

func (m *searchModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *searchModel) moveDown() {
	if m.idx < len(m.matches)-1 {
		m.idx++
	}
}

func (m searchModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Go to file"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.matches) == 0 {
		b.WriteString(helpStyle.Render("no matching files"))
		b.WriteString("\n")
	}
	for i, match := range m.matches {
		name := highlight(match.File.Name, match.MatchedIndexes)
		if i == m.idx {
			b.WriteString("> ")
			b.WriteString(selectedStyle.Render(match.File.Name))
		} else {
			b.WriteString("  ")
			b.WriteString(name)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓: choose │ enter: open │ esc: close"))
	return overlayBoxStyle.Render(b.String())
}
