package meta

import (
	"fmt"
	"sort"
	"strings"
)

// BranchExists checks for branch existence.
func (mc *MetaContext) BranchExists(name string) bool {
	if name == "" || strings.TrimSpace(name) == "" {
		return false
	}
	return mc.FS.Exists(mc.Config.BranchPath(name))
}

// ReadBranch returns the commit fingerprint the branch points at.
func (mc *MetaContext) ReadBranch(name string) (string, error) {
	data, err := mc.FS.ReadFile(mc.Config.BranchPath(name))
	if err != nil {
		return "", fmt.Errorf("failed to read branch %q: %w", name, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// WriteBranch points the branch at the given commit fingerprint.
func (mc *MetaContext) WriteBranch(name, fp string) error {
	if err := mc.FS.WriteFile(mc.Config.BranchPath(name), []byte(fp), 0o644); err != nil {
		return fmt.Errorf("failed to write branch %q: %w", name, err)
	}
	return nil
}

// DeleteBranch removes the branch pointer. Commits stay where they are.
func (mc *MetaContext) DeleteBranch(name string) error {
	if err := mc.FS.Remove(mc.Config.BranchPath(name)); err != nil {
		return fmt.Errorf("failed to delete branch %q: %w", name, err)
	}
	return nil
}

// ListBranches returns all branch names sorted lexicographically.
func (mc *MetaContext) ListBranches() ([]string, error) {
	entries, err := mc.FS.ReadDir(mc.Config.BranchesPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read branches directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
