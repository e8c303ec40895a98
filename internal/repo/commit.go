package repo

import (
	"strings"

	"github.com/keshon/gitlet/internal/repo/meta"
)

// Commit snapshots the staged changes on top of the current commit and
// advances the current branch. The staging area ends empty.
func (r *Repository) Commit(message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrEmptyCommitMessage
	}

	addition, err := r.Stage.ReadAddition()
	if err != nil {
		return err
	}
	removal, err := r.Stage.ReadRemoval()
	if err != nil {
		return err
	}
	if len(addition) == 0 && len(removal) == 0 {
		return ErrNoChanges
	}

	branch, err := r.Meta.CurrentBranch()
	if err != nil {
		return err
	}
	headID, err := r.Meta.ReadBranch(branch)
	if err != nil {
		return err
	}
	tree, err := r.headTree()
	if err != nil {
		return err
	}

	for name, fp := range addition {
		tree[name] = fp
	}
	for name := range removal {
		delete(tree, name)
	}

	fp, err := r.Meta.SaveCommit(&meta.Commit{
		Message:     message,
		Timestamp:   r.now().Unix(),
		FirstParent: headID,
		Tree:        tree,
	})
	if err != nil {
		return err
	}

	if err := r.Meta.WriteBranch(branch, fp); err != nil {
		return err
	}
	return r.Stage.Clear()
}
