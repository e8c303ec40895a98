package repo

import (
	"time"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/repo/dag"
	"github.com/keshon/gitlet/internal/repo/meta"
	"github.com/keshon/gitlet/internal/repo/store/blob"
	"github.com/keshon/gitlet/internal/repo/store/stage"
	"github.com/keshon/gitlet/internal/repo/worktree"
)

// Repository aggregates the stores of one working tree: metadata (HEAD,
// branches, commits), blobs, the staging area and the working directory.
type Repository struct {
	Config   *config.RepoConfig
	FS       fs.FS
	Meta     *meta.MetaContext
	Blobs    *blob.Store
	Stage    *stage.Stage
	Worktree *worktree.Worktree
	Graph    *dag.Graph

	now func() time.Time
}

// NewRepositoryByPath opens (without validating) a repository rooted at the
// given working tree directory, backed by the real filesystem.
func NewRepositoryByPath(workTree string) *Repository {
	return NewRepositoryWithFS(workTree, fs.NewOSFS())
}

// NewRepositoryWithFS opens a repository over an arbitrary FS.
func NewRepositoryWithFS(workTree string, fsys fs.FS) *Repository {
	cfg := config.NewRepoConfig(workTree)
	mc := &meta.MetaContext{Config: cfg, FS: fsys}
	return &Repository{
		Config:   cfg,
		FS:       fsys,
		Meta:     mc,
		Blobs:    blob.NewStore(cfg, fsys),
		Stage:    stage.NewStage(cfg, fsys),
		Worktree: worktree.NewWorktree(cfg, fsys),
		Graph:    dag.NewGraph(mc),
		now:      time.Now,
	}
}

// IsInitialized reports whether the repository structure exists on disk.
func (r *Repository) IsInitialized() bool {
	return r.Meta.Exists()
}

// SetClock overrides the commit timestamp source.
func (r *Repository) SetClock(now func() time.Time) {
	r.now = now
}

// headTree returns the current commit's tree.
func (r *Repository) headTree() (map[string]string, error) {
	c, err := r.Meta.HeadCommit()
	if err != nil {
		return nil, err
	}
	return c.TreeCopy(), nil
}

// untrackedFiles returns working files that are neither staged for addition
// nor tracked by the current commit.
func (r *Repository) untrackedFiles() (map[string]struct{}, error) {
	addition, err := r.Stage.ReadAddition()
	if err != nil {
		return nil, err
	}
	tracked, err := r.headTree()
	if err != nil {
		return nil, err
	}
	names, err := r.Worktree.ListFiles()
	if err != nil {
		return nil, err
	}

	untracked := map[string]struct{}{}
	for _, name := range names {
		if _, staged := addition[name]; staged {
			continue
		}
		if _, ok := tracked[name]; ok {
			continue
		}
		untracked[name] = struct{}{}
	}
	return untracked, nil
}

// restoreCommit makes the working tree match the target commit's tree:
// refuses if an untracked file would be overwritten, deletes files tracked
// by the current commit but absent from the target, overwrites everything
// the target tracks, and clears the staging area. No branch pointer moves.
func (r *Repository) restoreCommit(targetID string) error {
	target, err := r.Meta.GetCommit(targetID)
	if err != nil {
		return err
	}

	untracked, err := r.untrackedFiles()
	if err != nil {
		return err
	}
	for name := range untracked {
		if _, ok := target.Tree[name]; ok {
			return ErrUntrackedInTheWay
		}
	}

	current, err := r.headTree()
	if err != nil {
		return err
	}
	for name := range current {
		if _, ok := target.Tree[name]; !ok {
			if err := r.Worktree.Delete(name); err != nil {
				return err
			}
		}
	}

	for name, fp := range target.Tree {
		data, err := r.Blobs.Get(fp)
		if err != nil {
			return err
		}
		if err := r.Worktree.Write(name, data); err != nil {
			return err
		}
	}

	return r.Stage.Clear()
}
