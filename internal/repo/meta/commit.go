package meta

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/keshon/gitlet/internal/hash"
)

// Commit is an immutable record identified by the fingerprint of its
// canonical encoding. Tree maps file names to blob fingerprints.
type Commit struct {
	Message      string            `json:"message"`
	Timestamp    int64             `json:"timestamp"`
	FirstParent  string            `json:"firstParent,omitempty"`
	SecondParent string            `json:"secondParent,omitempty"`
	Tree         map[string]string `json:"tree"`
}

// InitialCommit is the sentinel commit every repository starts from.
func InitialCommit() *Commit {
	return &Commit{
		Message:   "initial commit",
		Timestamp: 0,
		Tree:      map[string]string{},
	}
}

// Encode returns the canonical serialized form of the commit. The encoding
// is deterministic (fixed field order, tree keys sorted), so the fingerprint
// of a commit is stable across runs and processes.
func (c *Commit) Encode() ([]byte, error) {
	norm := *c
	if norm.Tree == nil {
		norm.Tree = map[string]string{}
	}
	return json.Marshal(&norm)
}

// Fingerprint returns the commit's identity: the digest of its canonical form.
func (c *Commit) Fingerprint() (string, error) {
	data, err := c.Encode()
	if err != nil {
		return "", err
	}
	return hash.Digest(data), nil
}

// Date returns the commit timestamp as an absolute instant.
func (c *Commit) Date() time.Time {
	return time.Unix(c.Timestamp, 0).UTC()
}

// TreeCopy returns a copy of the tree mapping.
func (c *Commit) TreeCopy() map[string]string {
	m := make(map[string]string, len(c.Tree))
	for k, v := range c.Tree {
		m[k] = v
	}
	return m
}

// SaveCommit writes the commit record under its fingerprint and returns it.
// Writing an already-stored commit is a no-op: the contents are determined
// by the name.
func (mc *MetaContext) SaveCommit(c *Commit) (string, error) {
	data, err := c.Encode()
	if err != nil {
		return "", fmt.Errorf("failed to encode commit: %w", err)
	}
	fp := hash.Digest(data)

	path := mc.Config.CommitPath(fp)
	if mc.FS.Exists(path) {
		return fp, nil
	}
	if err := mc.FS.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write commit %q: %w", fp, err)
	}
	return fp, nil
}

// GetCommit reads a commit record by fingerprint.
func (mc *MetaContext) GetCommit(fp string) (*Commit, error) {
	data, err := mc.FS.ReadFile(mc.Config.CommitPath(fp))
	if err != nil {
		return nil, fmt.Errorf("failed to read commit %q: %w", fp, err)
	}
	var c Commit
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode commit %q: %w", fp, err)
	}
	if c.Tree == nil {
		c.Tree = map[string]string{}
	}
	return &c, nil
}

// CommitExists reports whether a commit record is stored.
func (mc *MetaContext) CommitExists(fp string) bool {
	return fp != "" && mc.FS.Exists(mc.Config.CommitPath(fp))
}

// ListCommitIDs returns the fingerprints of all stored commits, sorted.
func (mc *MetaContext) ListCommitIDs() ([]string, error) {
	entries, err := mc.FS.ReadDir(mc.Config.CommitsPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read commits directory: %w", err)
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// ResolveCommitID expands a commit id prefix to the full fingerprint.
// Returns "" when no commit matches, or when the prefix is ambiguous:
// an ambiguous prefix fails the same deterministic way as a missing one.
func (mc *MetaContext) ResolveCommitID(prefix string) (string, error) {
	if prefix == "" {
		return "", nil
	}
	if len(prefix) == hash.FingerprintLen {
		if mc.CommitExists(prefix) {
			return prefix, nil
		}
		return "", nil
	}

	ids, err := mc.ListCommitIDs()
	if err != nil {
		return "", err
	}
	match := ""
	for _, id := range ids {
		if strings.HasPrefix(id, prefix) {
			if match != "" {
				return "", nil
			}
			match = id
		}
	}
	return match, nil
}
