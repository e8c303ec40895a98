package meta

import (
	"fmt"
	"strings"
)

// CurrentBranch reads HEAD: the name of the current branch.
func (mc *MetaContext) CurrentBranch() (string, error) {
	data, err := mc.FS.ReadFile(mc.Config.HeadPath())
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}
	name := strings.TrimSpace(string(data))
	if name == "" {
		return "", fmt.Errorf("HEAD is empty")
	}
	return name, nil
}

// SetCurrentBranch points HEAD at the given branch name.
func (mc *MetaContext) SetCurrentBranch(name string) error {
	if err := mc.FS.WriteFile(mc.Config.HeadPath(), []byte(name), 0o644); err != nil {
		return fmt.Errorf("failed to write HEAD: %w", err)
	}
	return nil
}

// HeadCommitID resolves HEAD -> current branch -> commit fingerprint.
func (mc *MetaContext) HeadCommitID() (string, error) {
	branch, err := mc.CurrentBranch()
	if err != nil {
		return "", err
	}
	return mc.ReadBranch(branch)
}

// HeadCommit returns the commit HEAD currently resolves to.
func (mc *MetaContext) HeadCommit() (*Commit, error) {
	fp, err := mc.HeadCommitID()
	if err != nil {
		return nil, err
	}
	return mc.GetCommit(fp)
}
