package tui

// confirmModel asks before deleting a file or folder.
type confirmModel struct {
	name     string
	id       string
	isFolder bool
}

func (m confirmModel) View() string {
	kind := "file"
	if m.isFolder {
		kind = "folder"
	}
	content := "Delete " + kind + " \"" + m.name + "\"?\n"
	if m.isFolder {
		content += helpStyle.Render("Its contents are moved to the root.") + "\n"
	}
	content += "\ny yes    n no"
	return overlayBoxStyle.Render(content)
}
