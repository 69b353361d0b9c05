package x

import (
	"strings"
	"testing"
)

func TestFileCache(t *testing.T) {
	cache, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}

	if _, ok := cache.Get("missing"); ok {
		t.Error("Get on empty cache reported a hit")
	}

	// Keys may contain anything; they must not leak into filenames.
	key := "gemini-2.0-flash\n---\nsome/prompt with spaces"
	if err := cache.Set(key, "response"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok := cache.Get(key)
	if !ok {
		t.Fatal("Get missed a stored key")
	}
	if got != "response" {
		t.Errorf("Get = %q, want response", got)
	}

	if err := cache.Set(key, "updated"); err != nil {
		t.Fatalf("Set overwrite failed: %v", err)
	}
	if got, _ := cache.Get(key); got != "updated" {
		t.Errorf("Get after overwrite = %q, want updated", got)
	}
}

func TestFilter2(t *testing.T) {
	seq := func(yield func(string, int) bool) {
		for i, s := range []string{"a", "", "b"} {
			if !yield(s, i) {
				return
			}
		}
	}

	var kept []string
	for k := range Filter2(seq, func(k string, _ int) bool { return k != "" }) {
		kept = append(kept, k)
	}

	if strings.Join(kept, ",") != "a,b" {
		t.Errorf("Filter2 kept %v, want [a b]", kept)
	}
}
