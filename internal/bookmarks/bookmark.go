package bookmarks

import "iter"

// Folder represents a bookmark folder node. Only the folder hierarchy is
// modeled; leaf bookmark entries (URLs) are not part of the tree.
type Folder struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Children []Folder `json:"children"`
}

// Forest is an ordered collection of independent top-level folders. Browser
// exports commonly expose several roots ("Bookmarks Bar", "Other Bookmarks"),
// so there is no single implicit root node.
type Forest []Folder

// New constructs a folder with no children. Children is always a non-nil
// slice so the folder serializes with an explicit empty array.
func New(id, name string) Folder {
	return Folder{ID: id, Name: name, Children: []Folder{}}
}

// All iterates the folder and all its descendants in pre-order, yielding
// each folder's slash-joined path and the folder itself.
func (folder Folder) All() iter.Seq2[string, *Folder] {
	return func(yield func(string, *Folder) bool) {
		walk(folder, folder.Name, yield)
	}
}

// All iterates every folder in the forest in pre-order, parents before
// children, siblings in their stored order.
func (forest Forest) All() iter.Seq2[string, *Folder] {
	return func(yield func(string, *Folder) bool) {
		for _, folder := range forest {
			if !walk(folder, folder.Name, yield) {
				return
			}
		}
	}
}

func walk(folder Folder, path string, yield func(string, *Folder) bool) bool {
	if !yield(path, &folder) {
		return false
	}
	for _, child := range folder.Children {
		if !walk(child, path+"/"+child.Name, yield) {
			return false
		}
	}
	return true
}

// Paths returns the full path of every folder in the forest, e.g.
// ["Tech", "Tech/Python", "Tech/Python/Libraries"]. Paths are positional:
// two distinct folders with the same name under the same parent produce
// the same path string.
func (forest Forest) Paths() []string {
	var paths []string
	for path := range forest.All() {
		paths = append(paths, path)
	}
	return paths
}
