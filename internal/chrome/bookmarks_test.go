package chrome

import (
	"reflect"
	"testing"
)

func TestParseRoots(t *testing.T) {
	input := `{
		"version": 1,
		"roots": {
			"bookmark_bar": {
				"id": "1",
				"name": "Bookmarks Bar",
				"type": "folder",
				"children": [
					{"id": "10", "name": "Tech", "type": "folder", "children": [
						{"id": "11", "name": "Go", "type": "url", "url": "https://go.dev"}
					]},
					{"id": "12", "name": "Example", "type": "url", "url": "https://example.com"}
				]
			},
			"other": {"id": "2", "name": "Other Bookmarks", "type": "folder", "children": []},
			"synced": {"id": "3", "name": "Mobile Bookmarks", "type": "folder", "children": []}
		}
	}`

	forest := Parse([]byte(input))

	// Empty boilerplate roots are suppressed; URL nodes are dropped.
	want := []string{"Bookmarks Bar", "Bookmarks Bar/Tech"}
	if paths := forest.Paths(); !reflect.DeepEqual(paths, want) {
		t.Errorf("Parse paths = %v, want %v", paths, want)
	}
	if forest[0].ID != "1" {
		t.Errorf("root ID = %q, want source id kept verbatim", forest[0].ID)
	}
}

func TestParseRootSuppression(t *testing.T) {
	tests := map[string]struct {
		input string
		want  []string
	}{
		"empty Other Bookmarks suppressed": {
			input: `{"roots": {"other": {"id": "2", "name": "Other Bookmarks", "type": "folder", "children": []}}}`,
			want:  nil,
		},
		"empty Mobile Bookmarks suppressed": {
			input: `{"roots": {"synced": {"id": "3", "name": "Mobile Bookmarks", "type": "folder", "children": []}}}`,
			want:  nil,
		},
		"non-empty Other Bookmarks kept": {
			input: `{"roots": {"other": {"id": "2", "name": "Other Bookmarks", "type": "folder", "children": [
				{"id": "20", "name": "Recipes", "type": "folder"}
			]}}}`,
			want: []string{"Other Bookmarks", "Other Bookmarks/Recipes"},
		},
		"suppression is name-based, renamed empty root kept": {
			input: `{"roots": {"other": {"id": "2", "name": "Saved", "type": "folder", "children": []}}}`,
			want:  []string{"Saved"},
		},
		"roots emitted in fixed slot order": {
			input: `{"roots": {
				"synced": {"id": "3", "name": "Phone", "type": "folder", "children": []},
				"bookmark_bar": {"id": "1", "name": "Bar", "type": "folder", "children": []}
			}}`,
			want: []string{"Bar", "Phone"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			forest := Parse([]byte(tt.input))
			if paths := forest.Paths(); !reflect.DeepEqual(paths, tt.want) {
				t.Errorf("Parse paths = %v, want %v", paths, tt.want)
			}
		})
	}
}

func TestParseFallbackShapes(t *testing.T) {
	tests := map[string]struct {
		input string
		want  []string
	}{
		"bare children array": {
			input: `{"children": [
				{"id": "1", "name": "A", "type": "folder"},
				{"id": "2", "name": "B", "type": "url", "url": "https://example.com"},
				{"id": "3", "name": "C", "type": "folder"}
			]}`,
			want: []string{"A", "C"},
		},
		"single folder node": {
			input: `{"id": "1", "name": "Solo", "type": "folder", "children": []}`,
			want:  []string{"Solo"},
		},
		"single non-folder node": {
			input: `{"id": "1", "name": "Link", "type": "url", "url": "https://example.com"}`,
			want:  nil,
		},
		"structurally nonsensical document": {
			input: `[1, 2, 3]`,
			want:  nil,
		},
		"not JSON at all": {
			input: `hello`,
			want:  nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			forest := Parse([]byte(tt.input))
			if forest == nil {
				t.Fatal("Parse returned nil forest")
			}
			if paths := forest.Paths(); !reflect.DeepEqual(paths, tt.want) {
				t.Errorf("Parse paths = %v, want %v", paths, tt.want)
			}
		})
	}
}

func TestParseNodeDefaults(t *testing.T) {
	input := `{"roots": {"bookmark_bar": {"type": "folder", "children": [
		{"type": "folder", "name": "Named"}
	]}}}`

	forest := Parse([]byte(input))
	if len(forest) != 1 {
		t.Fatalf("expected 1 root, got %d", len(forest))
	}

	root := forest[0]
	if root.Name != "Unnamed" {
		t.Errorf("missing name = %q, want Unnamed placeholder", root.Name)
	}
	if root.ID == "" {
		t.Error("missing id should be generated, got empty string")
	}
	if len(root.Children) != 1 || root.Children[0].Name != "Named" {
		t.Fatalf("unexpected children: %#v", root.Children)
	}
}
