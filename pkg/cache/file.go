package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// entrySchema versions the on-disk entry format. Bumping it invalidates
// every existing entry, which is safe: anything cached here can be re-solved
// from its spec.
const entrySchema = 1

// fileEntry is the on-disk envelope around a cached payload. Kind and
// SavedAt make a cache directory inspectable with plain shell tools; only
// ExpiresAt affects reads.
type fileEntry struct {
	Schema    int       `json:"schema"`
	Kind      string    `json:"kind"`
	SavedAt   time.Time `json:"saved_at"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	Payload   []byte    `json:"payload"`
}

// FileCache stores solve results, spec records, and validation reports as
// JSON files under one directory, grouped by entry kind so stale solve
// results can be cleared without touching reports (and vice versa).
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache rooted at dir, creating it if
// needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Get retrieves a value. Unreadable, superseded, and expired entries are
// removed and reported as misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry fileEntry
	if err := json.Unmarshal(data, &entry); err != nil || entry.Schema != entrySchema {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return entry.Payload, true, nil
}

// Set stores a value. A zero ttl means the entry never expires.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := fileEntry{
		Schema:  entrySchema,
		Kind:    keyKind(key),
		SavedAt: time.Now().UTC(),
		Payload: data,
	}
	if ttl > 0 {
		entry.ExpiresAt = entry.SavedAt.Add(ttl)
	}

	encoded, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, encoded, 0644)
}

// Delete removes a value. Deleting an absent key is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for the file cache.
func (c *FileCache) Close() error {
	return nil
}

// path maps a key to <dir>/<kind>/<hash>.json. Grouping by kind keeps solve
// results, spec records, and reports in separate subdirectories.
func (c *FileCache) path(key string) string {
	return filepath.Join(c.dir, keyKind(key), Hash([]byte(key))+".json")
}

// keyKind extracts the namespace prefix of a key. Keys from a scoped keyer
// or with an unrecognized prefix land in misc.
func keyKind(key string) string {
	switch prefix, _, _ := strings.Cut(key, ":"); prefix {
	case "spec", "solve", "report":
		return prefix
	default:
		return "misc"
	}
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
