package models

// FolderNode is a folder together with its nested children.
type FolderNode struct {
	Folder

	Folders []*FolderNode `json:"folders"`
	Files   []File        `json:"files"`
}

// Forest is the nested view of the whole workspace. Root-level folders and
// files are the items without a (resolvable) parent.
type Forest struct {
	Folders []*FolderNode `json:"folders"`
	Files   []File        `json:"files"`

	// Broken lists folders that were part of a parent cycle and were
	// promoted to roots to keep the tree finite.
	Broken []string `json:"broken,omitempty"`
}

// Len returns the total number of folders and files in the forest.
func (f Forest) Len() int {
	n := len(f.Files)
	for _, node := range f.Folders {
		n += node.Len()
	}
	return n
}

// Len returns the number of items in the subtree including the node itself.
func (n *FolderNode) Len() int {
	if n == nil {
		return 0
	}
	total := 1 + len(n.Files)
	for _, child := range n.Folders {
		total += child.Len()
	}
	return total
}
