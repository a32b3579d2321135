package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type promptKind int

const (
	promptNewFile promptKind = iota
	promptNewFolder
	promptRename
)

// promptModel is the single-line name input used to create and rename
// items.
type promptModel struct {
	kind     promptKind
	input    textinput.Model
	parentID *string

	targetID string
	isFolder bool
}

func newPrompt(kind promptKind, value string) promptModel {
	in := textinput.New()
	in.Placeholder = "name"
	in.CharLimit = 255
	in.Width = 40
	in.SetValue(value)
	in.CursorEnd()
	in.Focus()
	return promptModel{kind: kind, input: in}
}

func (m promptModel) title() string {
	switch m.kind {
	case promptNewFolder:
		return "New folder"
	case promptRename:
		if m.isFolder {
			return "Rename folder"
		}
		return "Rename file"
	default:
		return "New file"
	}
}

func (m promptModel) View() string {
	content := titleStyle.Render(m.title()) + "\n\n" + m.input.View() + "\n\n"
	content += helpStyle.Render("enter: confirm │ esc: cancel")
	return overlayBoxStyle.Render(content)
}
