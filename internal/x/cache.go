package x

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
)

// Cache stores string content under arbitrary string keys.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, content string) error
}

// FileCache keeps cached content as files in a directory. Keys may be any
// string; they are hashed into filesystem-safe names, so callers never need
// to sanitize them.
type FileCache struct {
	dir string
}

// NewFileCache creates the cache directory if needed.
func NewFileCache(cacheDir string) (*FileCache, error) {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &FileCache{dir: cacheDir}, nil
}

// Get retrieves cached content, reporting whether it was present.
func (c *FileCache) Get(key string) (string, bool) {
	content, err := os.ReadFile(c.path(key))
	if err != nil {
		return "", false
	}
	return string(content), true
}

// Set stores content under the key, overwriting any previous entry.
func (c *FileCache) Set(key string, content string) error {
	return os.WriteFile(c.path(key), []byte(content), 0644)
}

// Clear removes the whole cache directory.
func (c *FileCache) Clear() error {
	return os.RemoveAll(c.dir)
}

func (c *FileCache) path(key string) string {
	hash := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, base64.URLEncoding.EncodeToString(hash[:]))
}
