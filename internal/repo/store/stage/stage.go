package stage

import (
	"fmt"
	"sort"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/util"
)

// Stage persists the staging area: an addition map (file name -> blob
// fingerprint) and a removal set (file names staged to be absent).
// A file never appears in both at once.
type Stage struct {
	Config *config.RepoConfig
	FS     fs.FS
}

func NewStage(cfg *config.RepoConfig, fsys fs.FS) *Stage {
	return &Stage{Config: cfg, FS: fsys}
}

// ReadAddition returns the staged-for-addition map. A fresh repository
// always has the file written, so readers never observe absence.
func (s *Stage) ReadAddition() (map[string]string, error) {
	var m map[string]string
	if err := util.ReadJSON(s.FS, s.Config.AdditionPath(), &m); err != nil {
		return nil, fmt.Errorf("failed to read staged additions: %w", err)
	}
	if m == nil {
		m = map[string]string{}
	}
	return m, nil
}

// WriteAddition persists the staged-for-addition map.
func (s *Stage) WriteAddition(m map[string]string) error {
	if m == nil {
		m = map[string]string{}
	}
	if err := util.WriteJSON(s.FS, s.Config.AdditionPath(), m); err != nil {
		return fmt.Errorf("failed to write staged additions: %w", err)
	}
	return nil
}

// ReadRemoval returns the staged-for-removal set.
func (s *Stage) ReadRemoval() (map[string]struct{}, error) {
	var names []string
	if err := util.ReadJSON(s.FS, s.Config.RemovalPath(), &names); err != nil {
		return nil, fmt.Errorf("failed to read staged removals: %w", err)
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set, nil
}

// WriteRemoval persists the staged-for-removal set.
func (s *Stage) WriteRemoval(set map[string]struct{}) error {
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	if err := util.WriteJSON(s.FS, s.Config.RemovalPath(), names); err != nil {
		return fmt.Errorf("failed to write staged removals: %w", err)
	}
	return nil
}

// Clear resets both structures to empty.
func (s *Stage) Clear() error {
	if err := s.WriteAddition(map[string]string{}); err != nil {
		return err
	}
	return s.WriteRemoval(map[string]struct{}{})
}

// IsEmpty reports whether nothing is staged.
func (s *Stage) IsEmpty() (bool, error) {
	addition, err := s.ReadAddition()
	if err != nil {
		return false, err
	}
	removal, err := s.ReadRemoval()
	if err != nil {
		return false, err
	}
	return len(addition) == 0 && len(removal) == 0, nil
}
