package tui

import (
	"strings"

	"github.com/MKhiriev/go-cloud-editor/internal/service"
	"github.com/MKhiriev/go-cloud-editor/internal/tree"
	"github.com/MKhiriev/go-cloud-editor/models"
)

// sidebarModel lists either the direct children of the current folder or,
// in tree mode, the whole forest flattened with indentation.
type sidebarModel struct {
	treeMode bool
	current  *string
	path     []models.Folder

	items []tree.Item
	idx   int
}

// rebuild refreshes the rows from ws. A current folder that no longer
// exists resets the view to the root.
func (s *sidebarModel) rebuild(ws service.Workspace) {
	folders := tree.Folders(ws.Files, ws.Folders)

	if s.current != nil {
		s.path = tree.Path(folders, *s.current)
		if len(s.path) == 0 {
			s.current = nil
		}
	}
	if s.current == nil {
		s.path = nil
	}

	if s.treeMode {
		s.items = tree.Flatten(ws.Forest)
	} else {
		childFolders, childFiles := tree.Children(ws.Files, ws.Folders, s.current)
		s.items = make([]tree.Item, 0, len(childFolders)+len(childFiles))
		for i := range childFolders {
			s.items = append(s.items, tree.Item{Folder: &childFolders[i]})
		}
		for i := range childFiles {
			s.items = append(s.items, tree.Item{File: &childFiles[i]})
		}
	}

	s.clamp()
}

func (s *sidebarModel) clamp() {
	if s.idx >= len(s.items) {
		s.idx = len(s.items) - 1
	}
	if s.idx < 0 {
		s.idx = 0
	}
}

func (s sidebarModel) selected() (tree.Item, bool) {
	if len(s.items) == 0 || s.idx < 0 || s.idx >= len(s.items) {
		return tree.Item{}, false
	}
	return s.items[s.idx], true
}

func (s *sidebarModel) moveUp() {
	if s.idx > 0 {
		s.idx--
	}
}

func (s *sidebarModel) moveDown() {
	if s.idx < len(s.items)-1 {
		s.idx++
	}
}

// enter makes folder id the current folder and selects its first row.
func (s *sidebarModel) enter(id string) {
	folderID := id
	s.current = &folderID
	s.idx = 0
}

// up moves to the parent of the current folder. It reports false at the
// root.
func (s *sidebarModel) up() bool {
	if s.current == nil {
		return false
	}
	if len(s.path) < 2 {
		s.current = nil
	} else {
		parentID := s.path[len(s.path)-2].ID
		s.current = &parentID
	}
	s.idx = 0
	return true
}

// reveal puts the cursor on file. In folder mode the file's folder becomes
// the current one.
func (s *sidebarModel) reveal(file models.File, ws service.Workspace) {
	if !s.treeMode {
		s.current = copyID(file.ParentID)
		s.idx = 0
	}
	s.rebuild(ws)
	s.selectID(file.ID)
}

func (s *sidebarModel) goRoot() {
	s.current = nil
	s.idx = 0
}

// selectID puts the cursor on the row with id, if visible.
func (s *sidebarModel) selectID(id string) {
	for i, item := range s.items {
		if item.ID() == id {
			s.idx = i
			return
		}
	}
}

func (s sidebarModel) View(session activeChecker, width, height int, focused bool) string {
	var b strings.Builder

	header := "FILES"
	if s.treeMode {
		header = "TREE"
	}
	if focused {
		header = focusedStyle.Render(header)
	}
	b.WriteString(header)
	b.WriteString("\n")
	if !s.treeMode {
		b.WriteString(helpStyle.Render(fitText(breadcrumbs(s.path), width)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(s.items) == 0 {
		b.WriteString(helpStyle.Render("(empty)"))
		return b.String()
	}

	first, last := visibleWindow(len(s.items), s.idx, height)
	for i := first; i < last; i++ {
		item := s.items[i]

		label := item.Name()
		if item.IsFolder() {
			label += "/"
		}
		label = strings.Repeat("  ", item.Depth) + label
		label = fitText(label, width-2)

		switch {
		case i == s.idx && focused:
			label = selectedStyle.Render(label)
		case !item.IsFolder() && session.IsActive(item.ID()):
			label = activeStyle.Render(label)
		}

		cursor := "  "
		if i == s.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(label)
		if i < last-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

type activeChecker interface {
	IsActive(id string) bool
}

// visibleWindow returns the [first, last) rows to draw so that idx stays on
// screen.
func visibleWindow(total, idx, height int) (int, int) {
	if height <= 0 || total <= height {
		return 0, total
	}
	first := idx - height/2
	if first < 0 {
		first = 0
	}
	last := first + height
	if last > total {
		last = total
		first = last - height
	}
	return first, last
}
