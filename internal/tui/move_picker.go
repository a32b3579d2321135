package tui

import (
	"sort"
	"strings"

	"github.com/MKhiriev/go-cloud-editor/internal/tree"
	"github.com/MKhiriev/go-cloud-editor/models"
)

type moveTarget struct {
	parentID *string
	label    string
}

// movePickerModel lists the folders an item may be moved into. The root
// comes first. For folders, targets that would create a cycle are left out.
type movePickerModel struct {
	id       string
	name     string
	isFolder bool

	targets []moveTarget
	idx     int
}

func newMovePicker(item tree.Item, files []models.File, folders []models.Folder) movePickerModel {
	all := tree.Folders(files, folders)

	m := movePickerModel{
		id:       item.ID(),
		name:     item.Name(),
		isFolder: item.IsFolder(),
		targets:  []moveTarget{{label: "/"}},
	}

	var rest []moveTarget
	for _, f := range all {
		folderID := f.ID
		if m.isFolder && tree.ValidateParent(all, m.id, &folderID) != nil {
			continue
		}
		rest = append(rest, moveTarget{parentID: &folderID, label: breadcrumbs(tree.Path(all, folderID))})
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return strings.ToLower(rest[i].label) < strings.ToLower(rest[j].label)
	})
	m.targets = append(m.targets, rest...)

	return m
}

func (m movePickerModel) selected() moveTarget {
	return m.targets[m.idx]
}

func (m *movePickerModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *movePickerModel) moveDown() {
	if m.idx < len(m.targets)-1 {
		m.idx++
	}
}

func (m movePickerModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Move \"" + m.name + "\" to"))
	b.WriteString("\n\n")

	first, last := visibleWindow(len(m.targets), m.idx, 12)
	for i := first; i < last; i++ {
		if i == m.idx {
			b.WriteString("> " + selectedStyle.Render(m.targets[i].label))
		} else {
			b.WriteString("  " + m.targets[i].label)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓: choose │ enter: move │ esc: cancel"))
	return overlayBoxStyle.Render(b.String())
}
