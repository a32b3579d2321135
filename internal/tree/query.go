package tree

import (
	"strings"

	"github.com/MKhiriev/go-cloud-editor/models"
)

// Path returns the breadcrumb chain from the outermost ancestor down to the
// folder with the given id. The walk stops at a missing parent or when a
// cycle is detected. Unknown ids yield nil.
func Path(folders []models.Folder, id string) []models.Folder {
	byID := make(map[string]models.Folder, len(folders))
	for _, f := range folders {
		if _, dup := byID[f.ID]; !dup {
			byID[f.ID] = f
		}
	}

	cur, ok := byID[id]
	if !ok {
		return nil
	}

	visited := map[string]struct{}{}
	var chain []models.Folder
	for {
		if _, seen := visited[cur.ID]; seen {
			break
		}
		visited[cur.ID] = struct{}{}
		chain = append(chain, cur)

		if cur.ParentID == nil {
			break
		}
		next, ok := byID[*cur.ParentID]
		if !ok {
			break
		}
		cur = next
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Children returns the folders and files directly inside parentID. A nil
// parentID selects the root level, which also holds orphans whose parent is
// unknown. Files flagged with IsFolder are returned as folders.
func Children(files []models.File, folders []models.Folder, parentID *string) ([]models.Folder, []models.File) {
	plainFiles, allFolders := normalize(files, folders)

	known := make(map[string]struct{}, len(allFolders))
	for _, f := range allFolders {
		known[f.ID] = struct{}{}
	}

	inScope := func(id string, p *string) bool {
		if parentID == nil {
			if p == nil || *p == "" || *p == id {
				return true
			}
			_, exists := known[*p]
			return !exists
		}
		return p != nil && *p == *parentID && id != *parentID
	}

	var outFolders []models.Folder
	for _, f := range allFolders {
		if inScope(f.ID, f.ParentID) {
			outFolders = append(outFolders, f)
		}
	}
	var outFiles []models.File
	for _, f := range plainFiles {
		if inScope(f.ID, f.ParentID) {
			outFiles = append(outFiles, f)
		}
	}

	sortFolders(outFolders)
	sortFiles(outFiles)
	return outFolders, outFiles
}

// NameTaken reports whether name (compared case-insensitively, surrounding
// spaces ignored) is used by another item in the parentID scope. The item
// with excludeID is skipped so that renaming to the same name is allowed.
func NameTaken(files []models.File, folders []models.Folder, parentID *string, name, excludeID string) bool {
	want := strings.ToLower(strings.TrimSpace(name))

	siblingFolders, siblingFiles := Children(files, folders, parentID)
	for _, f := range siblingFolders {
		if f.ID != excludeID && strings.ToLower(strings.TrimSpace(f.Name)) == want {
			return true
		}
	}
	for _, f := range siblingFiles {
		if f.ID != excludeID && strings.ToLower(strings.TrimSpace(f.Name)) == want {
			return true
		}
	}
	return false
}

// ValidateParent checks that folder id may be placed under newParent.
// A nil newParent (root) is always valid.
func ValidateParent(folders []models.Folder, id string, newParent *string) error {
	if newParent == nil || *newParent == "" {
		return nil
	}
	if *newParent == id {
		return ErrParentCycle
	}

	byID := make(map[string]models.Folder, len(folders))
	for _, f := range folders {
		if _, dup := byID[f.ID]; !dup {
			byID[f.ID] = f
		}
	}

	cur, ok := byID[*newParent]
	if !ok {
		return ErrParentNotFound
	}

	visited := map[string]struct{}{}
	for {
		if cur.ID == id {
			return ErrParentCycle
		}
		if _, seen := visited[cur.ID]; seen {
			// pre-existing cycle that does not contain id
			return nil
		}
		visited[cur.ID] = struct{}{}

		if cur.ParentID == nil {
			return nil
		}
		next, ok := byID[*cur.ParentID]
		if !ok {
			return nil
		}
		cur = next
	}
}

// Item is one row of a flattened forest.
type Item struct {
	Depth  int
	Folder *models.Folder
	File   *models.File
}

// IsFolder reports whether the item is a folder row.
func (i Item) IsFolder() bool { return i.Folder != nil }

// ID returns the id of the folder or file.
func (i Item) ID() string {
	if i.Folder != nil {
		return i.Folder.ID
	}
	if i.File != nil {
		return i.File.ID
	}
	return ""
}

// Name returns the display name of the folder or file.
func (i Item) Name() string {
	if i.Folder != nil {
		return i.Folder.Name
	}
	if i.File != nil {
		return i.File.Name
	}
	return ""
}

// Flatten lists the forest depth-first: each folder is followed by its
// sub-folders and then its files. Root files come last.
func Flatten(forest models.Forest) []Item {
	type pending struct {
		node  *models.FolderNode
		file  *models.File
		depth int
	}

	var out []Item
	stack := make([]pending, 0, len(forest.Folders)+len(forest.Files))
	for i := len(forest.Files) - 1; i >= 0; i-- {
		stack = append(stack, pending{file: &forest.Files[i]})
	}
	for i := len(forest.Folders) - 1; i >= 0; i-- {
		stack = append(stack, pending{node: forest.Folders[i]})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.file != nil {
			f := *top.file
			out = append(out, Item{Depth: top.depth, File: &f})
			continue
		}
		if top.node == nil {
			continue
		}

		folder := top.node.Folder
		out = append(out, Item{Depth: top.depth, Folder: &folder})

		for i := len(top.node.Files) - 1; i >= 0; i-- {
			stack = append(stack, pending{file: &top.node.Files[i], depth: top.depth + 1})
		}
		for i := len(top.node.Folders) - 1; i >= 0; i-- {
			stack = append(stack, pending{node: top.node.Folders[i], depth: top.depth + 1})
		}
	}

	return out
}

// Folders returns every folder, including file rows flagged with IsFolder,
// without duplicates.
func Folders(files []models.File, folders []models.Folder) []models.Folder {
	_, all := normalize(files, folders)
	return all
}
