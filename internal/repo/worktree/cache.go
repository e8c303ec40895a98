package worktree

import (
	"os"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/util"
)

// CacheEntry remembers the last known fingerprint of a working file.
// An entry is only trusted when size, mtime and the quick hash all match,
// which saves the full digest pass on unchanged files.
type CacheEntry struct {
	Size    int64  `json:"size"`
	ModTime int64  `json:"modTime"`
	Quick   string `json:"quick"`
	Digest  string `json:"digest"`
}

// Cache is the worktree fingerprint cache. It is purely an optimization:
// deleting the cache file changes nothing observable.
type Cache struct {
	cfg     *config.RepoConfig
	fsys    fs.FS
	entries map[string]CacheEntry
	dirty   bool
}

// LoadCache reads the cache file; a missing or unreadable cache is empty.
func LoadCache(cfg *config.RepoConfig, fsys fs.FS) *Cache {
	c := &Cache{cfg: cfg, fsys: fsys, entries: map[string]CacheEntry{}}
	var stored map[string]CacheEntry
	if err := util.ReadJSON(fsys, cfg.CachePath(), &stored); err == nil && stored != nil {
		c.entries = stored
	}
	return c
}

// Lookup returns the cached fingerprint for name if the entry is still
// valid. quickFn recomputes the quick hash for content validation.
func (c *Cache) Lookup(name string, fi os.FileInfo, quickFn func(string) (string, error)) (string, bool) {
	e, ok := c.entries[name]
	if !ok || e.Size != fi.Size() || e.ModTime != fi.ModTime().UnixNano() {
		return "", false
	}
	quick, err := quickFn(name)
	if err != nil || quick != e.Quick {
		return "", false
	}
	return e.Digest, true
}

// Update records a freshly computed fingerprint.
func (c *Cache) Update(name string, fi os.FileInfo, quick, digest string) {
	c.entries[name] = CacheEntry{
		Size:    fi.Size(),
		ModTime: fi.ModTime().UnixNano(),
		Quick:   quick,
		Digest:  digest,
	}
	c.dirty = true
}

// Save persists the cache if it changed. Failures are ignored: the cache
// is reconstructible.
func (c *Cache) Save() {
	if !c.dirty {
		return
	}
	if err := util.WriteJSON(c.fsys, c.cfg.CachePath(), c.entries); err == nil {
		c.dirty = false
	}
}
