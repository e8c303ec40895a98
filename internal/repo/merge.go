package repo

import (
	"fmt"
	"strings"

	"github.com/keshon/gitlet/internal/repo/meta"
	"github.com/keshon/gitlet/internal/util"
)

// Merge merges the given branch into the current one with a three-way merge
// against the split point. The returned string is the output to print:
// short-circuit notices or the conflict notice; empty on a clean merge.
func (r *Repository) Merge(other string) (string, error) {
	empty, err := r.Stage.IsEmpty()
	if err != nil {
		return "", err
	}
	if !empty {
		return "", ErrUncommittedChanges
	}
	if !r.Meta.BranchExists(other) {
		return "", ErrBranchMissing
	}
	current, err := r.Meta.CurrentBranch()
	if err != nil {
		return "", err
	}
	if other == current {
		return "", ErrMergeSelf
	}

	currID, err := r.Meta.HeadCommitID()
	if err != nil {
		return "", err
	}
	otherID, err := r.Meta.ReadBranch(other)
	if err != nil {
		return "", err
	}

	splitID, err := r.Graph.SplitPoint(currID, otherID)
	if err != nil {
		return "", err
	}
	if splitID == otherID {
		return MsgBranchIsAncestor + "\n", nil
	}
	if splitID == currID {
		if err := r.restoreCommit(otherID); err != nil {
			return "", err
		}
		if err := r.Meta.WriteBranch(current, otherID); err != nil {
			return "", err
		}
		return MsgFastForwarded + "\n", nil
	}

	splitTree, err := r.commitTree(splitID)
	if err != nil {
		return "", err
	}
	currTree, err := r.commitTree(currID)
	if err != nil {
		return "", err
	}
	otherTree, err := r.commitTree(otherID)
	if err != nil {
		return "", err
	}

	plan := planMerge(splitTree, currTree, otherTree)

	if err := r.checkUntrackedAgainst(plan); err != nil {
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

	for _, name := range plan.removes {
		if err := r.Worktree.Delete(name); err != nil {
			return "", err
		}
		delete(addition, name)
		removal[name] = struct{}{}
	}

	for _, name := range plan.adds {
		fp := otherTree[name]
		data, err := r.Blobs.Get(fp)
		if err != nil {
			return "", err
		}
		if err := r.Worktree.Write(name, data); err != nil {
			return "", err
		}
		addition[name] = fp
		delete(removal, name)
	}

	output := ""
	if len(plan.conflicts) > 0 {
		output = MsgMergeConflict + "\n"
		for _, name := range plan.conflicts {
			contents, err := r.conflictContents(name, currTree, otherTree)
			if err != nil {
				return "", err
			}
			if err := r.Worktree.Write(name, contents); err != nil {
				return "", err
			}
			fp, err := r.Blobs.Put(contents)
			if err != nil {
				return "", err
			}
			addition[name] = fp
			delete(removal, name)
		}
	}

	if err := r.Stage.WriteAddition(addition); err != nil {
		return "", err
	}
	if err := r.Stage.WriteRemoval(removal); err != nil {
		return "", err
	}

	tree := currTree
	for name, fp := range addition {
		tree[name] = fp
	}
	for name := range removal {
		delete(tree, name)
	}

	fp, err := r.Meta.SaveCommit(&meta.Commit{
		Message:      fmt.Sprintf("Merged %s into %s.", other, current),
		Timestamp:    r.now().Unix(),
		FirstParent:  currID,
		SecondParent: otherID,
		Tree:         tree,
	})
	if err != nil {
		return "", err
	}
	if err := r.Meta.WriteBranch(current, fp); err != nil {
		return "", err
	}
	if err := r.Stage.Clear(); err != nil {
		return "", err
	}
	return output, nil
}

func (r *Repository) commitTree(id string) (map[string]string, error) {
	c, err := r.Meta.GetCommit(id)
	if err != nil {
		return nil, err
	}
	return c.TreeCopy(), nil
}

// mergePlan lists, in sorted order, the files the merge will remove, the
// files it will take from the other side, and the files in conflict.
type mergePlan struct {
	removes   []string
	adds      []string
	conflicts []string
}

func (p mergePlan) touches(name string) bool {
	for _, set := range [][]string{p.removes, p.adds, p.conflicts} {
		for _, n := range set {
			if n == name {
				return true
			}
		}
	}
	return false
}

// planMerge categorizes files relative to the split point and derives the
// merge actions. Changes on only one side win; divergent changes conflict.
func planMerge(split, curr, other map[string]string) mergePlan {
	currRemoved := removedSince(split, curr)
	otherRemoved := removedSince(split, other)
	currAdded := addedSince(split, curr)
	otherAdded := addedSince(split, other)
	currModified := modifiedSince(split, curr)
	otherModified := modifiedSince(split, other)

	removeSet := map[string]struct{}{}
	addSet := map[string]struct{}{}
	conflictSet := map[string]struct{}{}

	for name := range otherRemoved {
		if _, ok := currModified[name]; ok {
			conflictSet[name] = struct{}{}
		} else if _, ok := currRemoved[name]; !ok {
			removeSet[name] = struct{}{}
		}
	}

	for name := range otherAdded {
		if _, ok := currAdded[name]; !ok {
			addSet[name] = struct{}{}
		} else if curr[name] != other[name] {
			conflictSet[name] = struct{}{}
		}
	}

	for name := range otherModified {
		if _, ok := currRemoved[name]; ok {
			conflictSet[name] = struct{}{}
		} else if _, ok := currModified[name]; !ok {
			addSet[name] = struct{}{}
		} else if curr[name] != other[name] {
			conflictSet[name] = struct{}{}
		}
	}

	return mergePlan{
		removes:   util.SortedKeys(removeSet),
		adds:      util.SortedKeys(addSet),
		conflicts: util.SortedKeys(conflictSet),
	}
}

func removedSince(base, side map[string]string) map[string]struct{} {
	out := map[string]struct{}{}
	for name := range base {
		if _, ok := side[name]; !ok {
			out[name] = struct{}{}
		}
	}
	return out
}

func addedSince(base, side map[string]string) map[string]struct{} {
	out := map[string]struct{}{}
	for name := range side {
		if _, ok := base[name]; !ok {
			out[name] = struct{}{}
		}
	}
	return out
}

func modifiedSince(base, side map[string]string) map[string]struct{} {
	out := map[string]struct{}{}
	for name, fp := range side {
		if baseFP, ok := base[name]; ok && baseFP != fp {
			out[name] = struct{}{}
		}
	}
	return out
}

// checkUntrackedAgainst fails if any untracked working file would be
// written or deleted by the plan. Runs before any mutation.
func (r *Repository) checkUntrackedAgainst(plan mergePlan) error {
	untracked, err := r.untrackedFiles()
	if err != nil {
		return err
	}
	for name := range untracked {
		if plan.touches(name) {
			return ErrUntrackedInTheWay
		}
	}
	return nil
}

// conflictContents frames the two sides of a conflicted file. An absent
// side contributes nothing between its markers.
func (r *Repository) conflictContents(name string, currTree, otherTree map[string]string) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("<<<<<<< HEAD\n")
	if fp, ok := currTree[name]; ok {
		data, err := r.Blobs.Get(fp)
		if err != nil {
			return nil, err
		}
		sb.Write(data)
	}
	sb.WriteString("=======\n")
	if fp, ok := otherTree[name]; ok {
		data, err := r.Blobs.Get(fp)
		if err != nil {
			return nil, err
		}
		sb.Write(data)
	}
	sb.WriteString(">>>>>>>\n")
	return []byte(sb.String()), nil
}
