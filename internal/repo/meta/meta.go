package meta

import (
	"fmt"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
)

// MetaContext gives access to repository metadata: HEAD, branches and
// commit records under the repository root.
type MetaContext struct {
	Config *config.RepoConfig
	FS     fs.FS
}

func NewMeta(cfg *config.RepoConfig, fsys fs.FS) (*MetaContext, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil repo config provided")
	}
	return &MetaContext{Config: cfg, FS: fsys}, nil
}

// Exists reports whether the repository structure is present.
func (mc *MetaContext) Exists() bool {
	return mc.FS.IsDir(mc.Config.RepoRoot)
}

// CreateStructure builds a fresh repository layout.
func (mc *MetaContext) CreateStructure() error {
	dirs := []string{
		mc.Config.RepoRoot,
		mc.Config.BlobsPath(),
		mc.Config.CommitsPath(),
		mc.Config.StagingPath(),
		mc.Config.BranchesPath(),
	}
	for _, d := range dirs {
		if err := mc.FS.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("failed to create dir %q: %w", d, err)
		}
	}
	return nil
}
