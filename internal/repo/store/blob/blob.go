package blob

import (
	"fmt"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/hash"
)

// Store is a content-addressed blob store: raw file contents under
// blobs/<fingerprint>. Blobs are immutable and never deleted.
type Store struct {
	Config *config.RepoConfig
	FS     fs.FS
}

func NewStore(cfg *config.RepoConfig, fsys fs.FS) *Store {
	return &Store{Config: cfg, FS: fsys}
}

// Put stores data under its fingerprint and returns the fingerprint.
// Storing the same contents twice is a no-op.
func (s *Store) Put(data []byte) (string, error) {
	fp := hash.Digest(data)
	path := s.Config.BlobPath(fp)
	if s.FS.Exists(path) {
		return fp, nil
	}
	if err := s.FS.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write blob %q: %w", fp, err)
	}
	return fp, nil
}

// Get returns the contents of the blob, or an error if it is absent.
func (s *Store) Get(fp string) ([]byte, error) {
	data, err := s.FS.ReadFile(s.Config.BlobPath(fp))
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %q: %w", fp, err)
	}
	return data, nil
}

// Exists reports whether a blob is stored.
func (s *Store) Exists(fp string) bool {
	return fp != "" && s.FS.Exists(s.Config.BlobPath(fp))
}

// List returns the fingerprints of all stored blobs.
func (s *Store) List() ([]string, error) {
	entries, err := s.FS.ReadDir(s.Config.BlobsPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read blobs directory: %w", err)
	}
	fps := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			fps = append(fps, e.Name())
		}
	}
	return fps, nil
}
