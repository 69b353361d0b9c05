package bookmarks

import (
	"reflect"
	"testing"
)

func TestPaths(t *testing.T) {
	tests := map[string]struct {
		forest Forest
		want   []string
	}{
		"empty forest": {
			forest: Forest{},
			want:   nil,
		},
		"single folder": {
			forest: Forest{New("1", "Tech")},
			want:   []string{"Tech"},
		},
		"nested chain": {
			forest: Forest{
				{ID: "1", Name: "Parent", Children: []Folder{
					{ID: "2", Name: "Child", Children: []Folder{
						{ID: "3", Name: "Grandchild"},
					}},
				}},
			},
			want: []string{"Parent", "Parent/Child", "Parent/Child/Grandchild"},
		},
		"parent emitted before children, siblings in stored order": {
			forest: Forest{
				{ID: "1", Name: "A", Children: []Folder{
					{ID: "2", Name: "B"},
					{ID: "3", Name: "C"},
				}},
				{ID: "4", Name: "D"},
			},
			want: []string{"A", "A/B", "A/C", "D"},
		},
		"duplicate names are not deduplicated": {
			forest: Forest{
				{ID: "1", Name: "X", Children: []Folder{
					{ID: "2", Name: "X"},
					{ID: "3", Name: "X"},
				}},
			},
			want: []string{"X", "X/X", "X/X"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.forest.Paths()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Paths() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllYieldsNodes(t *testing.T) {
	forest := Forest{
		{ID: "1", Name: "A", Children: []Folder{
			{ID: "2", Name: "B"},
		}},
	}

	byPath := map[string]string{}
	for path, folder := range forest.All() {
		byPath[path] = folder.ID
	}

	want := map[string]string{"A": "1", "A/B": "2"}
	if !reflect.DeepEqual(byPath, want) {
		t.Errorf("All() yielded %v, want %v", byPath, want)
	}
}

func TestAllStopsWhenYieldReturnsFalse(t *testing.T) {
	forest := Forest{
		{ID: "1", Name: "A", Children: []Folder{
			{ID: "2", Name: "B"},
			{ID: "3", Name: "C"},
		}},
	}

	var seen int
	for range forest.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	if seen != 2 {
		t.Errorf("expected iteration to stop after 2 folders, saw %d", seen)
	}
}

func TestNewHasNonNilChildren(t *testing.T) {
	folder := New("1", "Tech")
	if folder.Children == nil {
		t.Error("New() returned nil Children")
	}
	if len(folder.Children) != 0 {
		t.Errorf("New() returned %d children, want 0", len(folder.Children))
	}
}
