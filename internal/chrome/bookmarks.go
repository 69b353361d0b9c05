// Package chrome converts Chrome's native bookmark JSON (the Bookmarks file
// or a chrome://bookmarks export) into the canonical folder forest.
package chrome

import (
	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/searchmark/searchmark/internal/bookmarks"
)

// rootSlots are the named roots Chrome nests under "roots", in the order
// they appear in the output forest.
var rootSlots = []string{"bookmark_bar", "other", "synced"}

// defaultRootNames are the boilerplate roots Chrome always emits; they are
// suppressed when empty. The check is name-based, not slot-based: a
// non-empty root is always included regardless of name.
var defaultRootNames = map[string]bool{
	"Other Bookmarks":  true,
	"Mobile Bookmarks": true,
}

// Parse extracts the folder hierarchy from a Chrome bookmark document.
// Malformed or non-folder nodes are skipped, never fatal: a structurally
// nonsensical document yields an empty forest rather than an error.
//
// Besides the usual "roots" wrapper, two laxer shapes are accepted: a node
// exposing a bare "children" array, whose elements become top-level
// candidates, and a single folder node, converted as the sole result.
func Parse(data []byte) bookmarks.Forest {
	forest := bookmarks.Forest{}
	doc := gjson.ParseBytes(data)

	if roots := doc.Get("roots"); roots.Exists() {
		for _, slot := range rootSlots {
			root := roots.Get(slot)
			if !root.Exists() {
				continue
			}
			folder, ok := convert(root)
			if !ok {
				continue
			}
			if len(folder.Children) == 0 && defaultRootNames[folder.Name] {
				continue
			}
			forest = append(forest, folder)
		}
		return forest
	}

	if children := doc.Get("children"); children.IsArray() {
		for _, child := range children.Array() {
			if folder, ok := convert(child); ok {
				forest = append(forest, folder)
			}
		}
		return forest
	}

	if doc.Get("name").Exists() {
		if folder, ok := convert(doc); ok {
			forest = append(forest, folder)
		}
	}
	return forest
}

// convert recursively turns one node into a folder. Nodes not declared
// type "folder" (bookmark URLs, separators, garbage) report false and are
// dropped by the caller.
func convert(node gjson.Result) (bookmarks.Folder, bool) {
	if node.Get("type").String() != "folder" {
		return bookmarks.Folder{}, false
	}

	id := node.Get("id").String()
	if id == "" {
		id = uuid.New().String()
	}
	name := "Unnamed"
	if n := node.Get("name"); n.Exists() {
		name = n.String()
	}

	folder := bookmarks.New(id, name)
	for _, child := range node.Get("children").Array() {
		if converted, ok := convert(child); ok {
			folder.Children = append(folder.Children, converted)
		}
	}
	return folder, true
}
