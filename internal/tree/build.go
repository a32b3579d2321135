package tree

import (
	"sort"
	"strings"

	"github.com/MKhiriev/go-cloud-editor/models"
)

// Build converts flat lists of files and folders into a forest.
//
// Files flagged with IsFolder are treated as folders. Items without a parent,
// or whose parent is unknown, become roots. Folders that are only reachable
// through a parent cycle are promoted to roots (one per cycle) and listed in
// Forest.Broken. Every distinct item appears exactly once in the result.
//
// Children are ordered by case-insensitive name, then by id.
func Build(files []models.File, folders []models.Folder) models.Forest {
	plainFiles, allFolders := normalize(files, folders)

	byID := make(map[string]models.Folder, len(allFolders))
	for _, f := range allFolders {
		byID[f.ID] = f
	}

	parentOf := make(map[string]string, len(allFolders))
	for _, f := range allFolders {
		if p, ok := resolveParent(f.ID, f.ParentID, byID); ok {
			parentOf[f.ID] = p
		}
	}

	broken := breakCycles(allFolders, parentOf)

	nodes := make(map[string]*models.FolderNode, len(allFolders))
	for _, f := range allFolders {
		nodes[f.ID] = &models.FolderNode{Folder: f}
	}

	var forest models.Forest
	for _, f := range allFolders {
		node := nodes[f.ID]
		if p, ok := parentOf[f.ID]; ok {
			parent := nodes[p]
			parent.Folders = append(parent.Folders, node)
			continue
		}
		forest.Folders = append(forest.Folders, node)
	}

	for _, file := range plainFiles {
		if file.ParentID != nil {
			if parent, ok := nodes[*file.ParentID]; ok {
				parent.Files = append(parent.Files, file)
				continue
			}
		}
		forest.Files = append(forest.Files, file)
	}

	for _, node := range nodes {
		sortFolderNodes(node.Folders)
		sortFiles(node.Files)
	}
	sortFolderNodes(forest.Folders)
	sortFiles(forest.Files)

	forest.Broken = broken
	return forest
}

// normalize splits is_folder rows out of files and de-duplicates ids.
// When the same id is present both as a folder and as a file, the folder wins.
func normalize(files []models.File, folders []models.Folder) ([]models.File, []models.Folder) {
	seen := make(map[string]struct{}, len(files)+len(folders))

	outFolders := make([]models.Folder, 0, len(folders))
	for _, f := range folders {
		if _, dup := seen[f.ID]; dup {
			continue
		}
		seen[f.ID] = struct{}{}
		outFolders = append(outFolders, f)
	}

	outFiles := make([]models.File, 0, len(files))
	for _, f := range files {
		if !f.IsFolder {
			continue
		}
		if _, dup := seen[f.ID]; dup {
			continue
		}
		seen[f.ID] = struct{}{}
		outFolders = append(outFolders, f.AsFolder())
	}
	for _, f := range files {
		if f.IsFolder {
			continue
		}
		if _, dup := seen[f.ID]; dup {
			continue
		}
		seen[f.ID] = struct{}{}
		outFiles = append(outFiles, f)
	}

	return outFiles, outFolders
}

func resolveParent(id string, parentID *string, byID map[string]models.Folder) (string, bool) {
	if parentID == nil || *parentID == "" || *parentID == id {
		return "", false
	}
	if _, ok := byID[*parentID]; !ok {
		return "", false
	}
	return *parentID, true
}

// breakCycles removes one parent edge per cycle so that every folder becomes
// reachable from a root. It returns the ids of the promoted folders, sorted.
func breakCycles(folders []models.Folder, parentOf map[string]string) []string {
	// 0 = unknown, 1 = on the current walk, 2 = settled (leads to a root)
	state := make(map[string]uint8, len(folders))

	ids := make([]string, 0, len(folders))
	for _, f := range folders {
		ids = append(ids, f.ID)
	}
	sort.Strings(ids)

	var broken []string
	for _, start := range ids {
		if state[start] == 2 {
			continue
		}

		var walk []string
		cur := start
		for {
			if state[cur] == 2 {
				break
			}
			if state[cur] == 1 {
				// cur closes a cycle; cut its parent edge.
				delete(parentOf, cur)
				broken = append(broken, cur)
				break
			}
			state[cur] = 1
			walk = append(walk, cur)

			p, ok := parentOf[cur]
			if !ok {
				break
			}
			cur = p
		}

		for _, id := range walk {
			state[id] = 2
		}
	}

	sort.Strings(broken)
	return broken
}

func sortFolderNodes(nodes []*models.FolderNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return lessByName(nodes[i].Name, nodes[i].ID, nodes[j].Name, nodes[j].ID)
	})
}

func sortFolders(folders []models.Folder) {
	sort.SliceStable(folders, func(i, j int) bool {
		return lessByName(folders[i].Name, folders[i].ID, folders[j].Name, folders[j].ID)
	})
}

func sortFiles(files []models.File) {
	sort.SliceStable(files, func(i, j int) bool {
		return lessByName(files[i].Name, files[i].ID, files[j].Name, files[j].ID)
	})
}

func lessByName(nameA, idA, nameB, idB string) bool {
	la, lb := strings.ToLower(nameA), strings.ToLower(nameB)
	if la != lb {
		return la < lb
	}
	return idA < idB
}
