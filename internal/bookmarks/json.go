package bookmarks

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON serializes the folder with children always present, emitting
// an empty array rather than null when there are none.
func (folder Folder) MarshalJSON() ([]byte, error) {
	type plain Folder
	out := plain(folder)
	if out.Children == nil {
		out.Children = []Folder{}
	}
	return json.Marshal(out)
}

// Encode serializes the forest to the canonical indented JSON array of
// {id, name, children} objects, preserving field and sibling order.
func Encode(forest Forest) ([]byte, error) {
	if forest == nil {
		forest = Forest{}
	}
	return json.MarshalIndent(forest, "", "  ")
}

// Decode is the strict inverse of Encode: Decode(Encode(t)) reproduces t
// for any forest t produced by the parsers in this module, including the
// empty forest. Malformed JSON or type mismatches are an error.
func Decode(data []byte) (Forest, error) {
	var forest Forest
	if err := json.Unmarshal(data, &forest); err != nil {
		return nil, err
	}
	if forest == nil {
		forest = Forest{}
	}
	for i := range forest {
		fillChildren(&forest[i])
	}
	return forest, nil
}

func fillChildren(folder *Folder) {
	if folder.Children == nil {
		folder.Children = []Folder{}
	}
	for i := range folder.Children {
		fillChildren(&folder.Children[i])
	}
}

// FromJSON converts a JSON value already shaped like the canonical schema:
// either a single folder object or an array of folder objects. A single
// object is treated as a one-element array. Each element must carry string
// "id" and "name" fields and an optional "children" array of the same shape;
// elements that fail validation are skipped individually, so a malformed
// entry never aborts the whole parse. Order is preserved.
func FromJSON(data []byte) Forest {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Forest{}
	}

	var items []json.RawMessage
	if trimmed[0] == '{' {
		items = []json.RawMessage{trimmed}
	} else if err := json.Unmarshal(trimmed, &items); err != nil {
		return Forest{}
	}

	forest := Forest{}
	for _, item := range items {
		if folder, ok := validateFolder(item); ok {
			forest = append(forest, folder)
		}
	}
	return forest
}

// validateFolder checks one JSON value against the Folder shape. Validation
// is recursive and strict within a single element: a malformed descendant
// invalidates the element as a whole.
func validateFolder(raw json.RawMessage) (Folder, bool) {
	var node struct {
		ID       *string           `json:"id"`
		Name     *string           `json:"name"`
		Children []json.RawMessage `json:"children"`
	}
	if err := json.Unmarshal(raw, &node); err != nil {
		return Folder{}, false
	}
	if node.ID == nil || node.Name == nil {
		return Folder{}, false
	}

	folder := New(*node.ID, *node.Name)
	for _, child := range node.Children {
		converted, ok := validateFolder(child)
		if !ok {
			return Folder{}, false
		}
		folder.Children = append(folder.Children, converted)
	}
	return folder, true
}
