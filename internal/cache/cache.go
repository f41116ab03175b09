// Package cache stores downloaded template content under
// ~/.universal-dev-env/cache so the tool keeps working offline. Entries are
// keyed by an MD5 of url+type+version and expire after 30 days or whenever
// the tool version changes.
package cache

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/universal-dev-env/udev/internal/fsutil"
)

// TTL is how long a cache entry stays valid.
const TTL = 30 * 24 * time.Hour

// Cache is a content store on the local filesystem. The zero value is not
// usable; construct one with Open or New.
type Cache struct {
	dir     string
	version string
	now     func() time.Time
}

// Meta is the sidecar record kept next to each entry.
type Meta struct {
	URL       string    `json:"url"`
	Type      string    `json:"type"`
	Version   string    `json:"version"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Entry describes one cache entry for listing.
type Entry struct {
	Key   string
	Meta  Meta
	Size  int64
	Stale bool
}

// Open returns the cache rooted at ~/.universal-dev-env/cache, creating the
// directory if needed.
func Open(version string) (*Cache, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return New(filepath.Join(home, ".universal-dev-env", "cache"), version)
}

// New returns a cache rooted at dir.
func New(dir, version string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create cache directory: %w", err)
	}
	return &Cache{dir: dir, version: version, now: time.Now}, nil
}

// Key derives the entry key for a url and entry type.
func (c *Cache) Key(url, typ string) string {
	sum := md5.Sum([]byte(url + "|" + typ + "|" + c.version))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached content for url and typ, or ok=false when the entry
// is missing, expired or recorded under a different version.
func (c *Cache) Get(url, typ string) ([]byte, bool) {
	key := c.Key(url, typ)
	meta, err := c.readMeta(key)
	if err != nil {
		return nil, false
	}
	if c.stale(meta) {
		return nil, false
	}

	data, err := os.ReadFile(c.dataPath(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Put stores content for url and typ, replacing any previous entry.
func (c *Cache) Put(url, typ string, data []byte) error {
	key := c.Key(url, typ)
	meta := Meta{URL: url, Type: typ, Version: c.version, FetchedAt: c.now()}

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	if err := fsutil.WriteFileAtomic(c.dataPath(key), data, 0o644); err != nil {
		return fmt.Errorf("cannot write cache entry: %w", err)
	}
	if err := fsutil.WriteFileAtomic(c.metaPath(key), metaJSON, 0o644); err != nil {
		return fmt.Errorf("cannot write cache metadata: %w", err)
	}
	return nil
}

// Entries lists every entry in the cache, including stale ones.
func (c *Cache) Entries() ([]Entry, error) {
	files, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		key := strings.TrimSuffix(f.Name(), ".json")
		meta, err := c.readMeta(key)
		if err != nil {
			continue
		}
		var size int64
		if info, err := os.Stat(c.dataPath(key)); err == nil {
			size = info.Size()
		}
		entries = append(entries, Entry{Key: key, Meta: meta, Size: size, Stale: c.stale(meta)})
	}
	return entries, nil
}

// Clean removes stale entries and returns how many were dropped.
func (c *Cache) Clean() (int, error) {
	entries, err := c.Entries()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, e := range entries {
		if !e.Stale {
			continue
		}
		os.Remove(c.dataPath(e.Key))
		if err := os.Remove(c.metaPath(e.Key)); err == nil {
			removed++
		}
	}
	return removed, nil
}

// Purge removes the entire cache directory.
func (c *Cache) Purge() error {
	return os.RemoveAll(c.dir)
}

func (c *Cache) stale(meta Meta) bool {
	return meta.Version != c.version || c.now().Sub(meta.FetchedAt) > TTL
}

func (c *Cache) readMeta(key string) (Meta, error) {
	var meta Meta
	data, err := os.ReadFile(c.metaPath(key))
	if err != nil {
		return meta, err
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return meta, err
	}
	return meta, nil
}

func (c *Cache) dataPath(key string) string { return filepath.Join(c.dir, key+".data") }
func (c *Cache) metaPath(key string) string { return filepath.Join(c.dir, key+".json") }
