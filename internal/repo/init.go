package repo

import (
	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/repo/meta"
)

// Init creates a fresh repository: the on-disk layout, an empty staging
// area, the sentinel initial commit, and the default branch with HEAD
// pointing at it.
func (r *Repository) Init() error {
	if r.Meta.Exists() {
		return ErrAlreadyInitialized
	}

	if err := r.Meta.CreateStructure(); err != nil {
		return err
	}
	if err := r.Stage.Clear(); err != nil {
		return err
	}

	fp, err := r.Meta.SaveCommit(meta.InitialCommit())
	if err != nil {
		return err
	}
	if err := r.Meta.WriteBranch(config.DefaultBranch, fp); err != nil {
		return err
	}
	return r.Meta.SetCurrentBranch(config.DefaultBranch)
}
