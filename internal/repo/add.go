package repo

import (
	"strings"

	"github.com/keshon/gitlet/internal/hash"
)

// Add stages a working file for addition. Staging a file whose contents
// match the current commit un-stages it instead; a pending removal of the
// file is always dropped.
func (r *Repository) Add(name string) error {
	if !r.Worktree.Exists(name) {
		return ErrFileDoesNotExist
	}

	tracked, err := r.headTree()
	if err != nil {
		return err
	}
	addition, err := r.Stage.ReadAddition()
	if err != nil {
		return err
	}
	removal, err := r.Stage.ReadRemoval()
	if err != nil {
		return err
	}

	delete(removal, name)

	data, err := r.Worktree.Read(name)
	if err != nil {
		return err
	}
	fp := hash.Digest(data)

	if tracked[name] == fp {
		delete(addition, name)
	} else {
		if _, err := r.Blobs.Put(data); err != nil {
			return err
		}
		addition[name] = fp
	}

	if err := r.Stage.WriteAddition(addition); err != nil {
		return err
	}
	return r.Stage.WriteRemoval(removal)
}

// Rm un-stages a file; if the current commit tracks it, the file is staged
// for removal and deleted from the working tree.
func (r *Repository) Rm(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyFileName
	}

	tracked, err := r.headTree()
	if err != nil {
		return err
	}
	addition, err := r.Stage.ReadAddition()
	if err != nil {
		return err
	}
	removal, err := r.Stage.ReadRemoval()
	if err != nil {
		return err
	}

	_, isTracked := tracked[name]
	_, isStaged := addition[name]
	if !isTracked && !isStaged {
		return ErrNoReasonToRemove
	}

	delete(addition, name)

	if isTracked {
		removal[name] = struct{}{}
		if err := r.Worktree.Delete(name); err != nil {
			return err
		}
	}

	if err := r.Stage.WriteAddition(addition); err != nil {
		return err
	}
	return r.Stage.WriteRemoval(removal)
}
