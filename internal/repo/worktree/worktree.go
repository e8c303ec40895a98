package worktree

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/hash"
)

// mmapThreshold is the size at or above which files on the real filesystem
// are hashed through a memory-mapped reader instead of being read onto the
// heap.
const mmapThreshold = 8 << 20

// Worktree adapts a flat working directory: plain files at the top level.
// Subdirectories are ignored.
type Worktree struct {
	Config *config.RepoConfig
	FS     fs.FS

	cache *Cache
}

func NewWorktree(cfg *config.RepoConfig, fsys fs.FS) *Worktree {
	return &Worktree{Config: cfg, FS: fsys, cache: LoadCache(cfg, fsys)}
}

func (w *Worktree) path(name string) string {
	return filepath.Join(w.Config.WorkTree, name)
}

// ListFiles returns the names of plain files in the working directory,
// sorted. The repository dir itself is skipped.
func (w *Worktree) ListFiles() ([]string, error) {
	entries, err := w.FS.ReadDir(w.Config.WorkTree)
	if err != nil {
		return nil, fmt.Errorf("failed to read working directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || e.Name() == config.RepoDir {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func (w *Worktree) Exists(name string) bool {
	return w.FS.Exists(w.path(name)) && !w.FS.IsDir(w.path(name))
}

func (w *Worktree) Read(name string) ([]byte, error) {
	data, err := w.FS.ReadFile(w.path(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read working file %q: %w", name, err)
	}
	return data, nil
}

func (w *Worktree) Write(name string, data []byte) error {
	if err := w.FS.WriteFile(w.path(name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write working file %q: %w", name, err)
	}
	return nil
}

// Delete removes a working file. Deleting an absent file is a no-op.
func (w *Worktree) Delete(name string) error {
	p := w.path(name)
	if !w.FS.Exists(p) {
		return nil
	}
	if err := w.FS.Remove(p); err != nil {
		return fmt.Errorf("failed to delete working file %q: %w", name, err)
	}
	return nil
}

// Fingerprint returns the blob fingerprint of a working file's current
// contents, consulting the cache before re-hashing.
func (w *Worktree) Fingerprint(name string) (string, error) {
	fi, err := w.FS.Stat(w.path(name))
	if err != nil {
		return "", fmt.Errorf("failed to stat working file %q: %w", name, err)
	}

	if fp, ok := w.cache.Lookup(name, fi, w.quick); ok {
		return fp, nil
	}

	fp, quick, err := w.digest(name, fi.Size())
	if err != nil {
		return "", err
	}
	w.cache.Update(name, fi, quick, fp)
	return fp, nil
}

// FingerprintAll returns name -> fingerprint for every working file and
// persists the refreshed cache.
func (w *Worktree) FingerprintAll() (map[string]string, error) {
	names, err := w.ListFiles()
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, len(names))
	for _, name := range names {
		fp, err := w.Fingerprint(name)
		if err != nil {
			return nil, err
		}
		m[name] = fp
	}
	w.cache.Save()
	return m, nil
}

// FlushCache persists the fingerprint cache.
func (w *Worktree) FlushCache() {
	w.cache.Save()
}

func (w *Worktree) quick(name string) (string, error) {
	data, err := w.Read(name)
	if err != nil {
		return "", err
	}
	return hash.Quick(data), nil
}

func (w *Worktree) digest(name string, size int64) (fp, quick string, err error) {
	if _, osBacked := w.FS.(*fs.OSFS); osBacked && size >= mmapThreshold {
		fp, quick, _, err = hash.DigestFile(w.path(name))
		return fp, quick, err
	}
	data, err := w.Read(name)
	if err != nil {
		return "", "", err
	}
	return hash.Digest(data), hash.Quick(data), nil
}
