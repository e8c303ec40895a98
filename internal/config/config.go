package config

import "path/filepath"

const (
	RepoDir     = ".gitlet"
	BlobsDir    = "blobs"
	CommitsDir  = "commits"
	StagingDir  = "stagingArea"
	BranchesDir = "branches"

	HeadFile     = "HEAD"
	AdditionFile = "ADDITION"
	RemovalFile  = "REMOVAL"

	// CacheFile holds the worktree fingerprint cache. Losing it is harmless.
	CacheFile = "INDEXCACHE"
)

const DefaultBranch = "master"

// RepoConfig resolves every repository path relative to a working tree root.
type RepoConfig struct {
	WorkTree string
	RepoRoot string
}

// NewRepoConfig builds a RepoConfig for the given working tree directory.
func NewRepoConfig(workTree string) *RepoConfig {
	return &RepoConfig{
		WorkTree: workTree,
		RepoRoot: filepath.Join(workTree, RepoDir),
	}
}

func (c *RepoConfig) BlobsPath() string    { return filepath.Join(c.RepoRoot, BlobsDir) }
func (c *RepoConfig) CommitsPath() string  { return filepath.Join(c.RepoRoot, CommitsDir) }
func (c *RepoConfig) StagingPath() string  { return filepath.Join(c.RepoRoot, StagingDir) }
func (c *RepoConfig) BranchesPath() string { return filepath.Join(c.RepoRoot, BranchesDir) }

func (c *RepoConfig) HeadPath() string     { return filepath.Join(c.RepoRoot, HeadFile) }
func (c *RepoConfig) AdditionPath() string { return filepath.Join(c.StagingPath(), AdditionFile) }
func (c *RepoConfig) RemovalPath() string  { return filepath.Join(c.StagingPath(), RemovalFile) }
func (c *RepoConfig) CachePath() string    { return filepath.Join(c.RepoRoot, CacheFile) }

func (c *RepoConfig) BlobPath(fp string) string   { return filepath.Join(c.BlobsPath(), fp) }
func (c *RepoConfig) CommitPath(fp string) string { return filepath.Join(c.CommitsPath(), fp) }
func (c *RepoConfig) BranchPath(name string) string {
	return filepath.Join(c.BranchesPath(), name)
}
