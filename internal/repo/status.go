package repo

import (
	"sort"
	"strings"

	"github.com/keshon/gitlet/internal/util"
)

// Status renders the five status sections. The current branch is listed
// first, starred; the other branches and the staged, removed and untracked
// files are sorted. Unstaged modifications list the sorted "(modified)"
// entries, then the sorted "(deleted)" entries.
func (r *Repository) Status() (string, error) {
	branch, err := r.Meta.CurrentBranch()
	if err != nil {
		return "", err
	}
	branches, err := r.Meta.ListBranches()
	if err != nil {
		return "", err
	}
	addition, err := r.Stage.ReadAddition()
	if err != nil {
		return "", err
	}
	removal, err := r.Stage.ReadRemoval()
	if err != nil {
		return "", err
	}
	tracked, err := r.headTree()
	if err != nil {
		return "", err
	}
	working, err := r.Worktree.FingerprintAll()
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	sb.WriteString("=== Branches ===\n")
	sb.WriteString("*" + branch + "\n")
	for _, b := range branches {
		if b != branch {
			sb.WriteString(b + "\n")
		}
	}
	sb.WriteString("\n")

	sb.WriteString("=== Staged Files ===\n")
	for _, name := range util.SortedKeys(addition) {
		sb.WriteString(name + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString("=== Removed Files ===\n")
	for _, name := range util.SortedKeys(removal) {
		sb.WriteString(name + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString("=== Modifications Not Staged For Commit ===\n")
	for _, name := range modifiedNotStaged(working, tracked, addition) {
		sb.WriteString(name + " (modified)\n")
	}
	for _, name := range deletedNotStaged(working, tracked, addition, removal) {
		sb.WriteString(name + " (deleted)\n")
	}
	sb.WriteString("\n")

	sb.WriteString("=== Untracked Files ===\n")
	for _, name := range util.SortedKeys(working) {
		_, staged := addition[name]
		_, isTracked := tracked[name]
		if !staged && !isTracked {
			sb.WriteString(name + "\n")
		}
	}
	sb.WriteString("\n")

	return sb.String(), nil
}

// modifiedNotStaged: present in the working tree with contents differing
// from what is staged (or, if unstaged, from what the commit tracks).
func modifiedNotStaged(working, tracked, addition map[string]string) []string {
	var out []string
	for name, fp := range working {
		if stagedFP, ok := addition[name]; ok {
			if stagedFP != fp {
				out = append(out, name)
			}
		} else if trackedFP, ok := tracked[name]; ok && trackedFP != fp {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// deletedNotStaged: tracked or staged for addition, but missing from the
// working tree (and, for tracked files, not already staged for removal).
func deletedNotStaged(working, tracked, addition map[string]string, removal map[string]struct{}) []string {
	seen := map[string]struct{}{}
	for name := range tracked {
		if _, ok := working[name]; ok {
			continue
		}
		if _, staged := removal[name]; staged {
			continue
		}
		seen[name] = struct{}{}
	}
	for name := range addition {
		if _, ok := working[name]; !ok {
			seen[name] = struct{}{}
		}
	}
	out := util.SortedKeys(seen)
	return out
}
