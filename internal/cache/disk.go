package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DiskCache stores one raw payload JSON file per network key in a
// directory. Files have no expiry and stay inspectable by hand, which is
// the point of the cache directory: a saved payload can be reused or
// edited for debugging across runs.
type DiskCache struct {
	dir string
}

// NewDiskCache creates the cache directory if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Get retrieves a payload from the cache directory.
func (c *DiskCache) Get(key string) ([]byte, bool) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores a payload. The TTL is ignored; disk entries do not expire.
func (c *DiskCache) Set(key string, value []byte, _ time.Duration) error {
	if err := os.WriteFile(c.path(key), value, 0644); err != nil {
		return fmt.Errorf("writing cache file: %w", err)
	}
	return nil
}

// Delete removes a payload from the cache directory.
func (c *DiskCache) Delete(key string) error {
	return os.Remove(c.path(key))
}

func (c *DiskCache) path(key string) string {
	return filepath.Join(c.dir, filepath.Base(key)+".json")
}
