package dag

import (
	"fmt"

	"github.com/keshon/gitlet/internal/repo/meta"
)

// Graph provides traversal over the commit DAG. Edges are fingerprint
// references resolved through the commit store; commits have at most two
// parents and cycles are impossible by construction.
type Graph struct {
	Meta *meta.MetaContext
}

func NewGraph(mc *meta.MetaContext) *Graph {
	return &Graph{Meta: mc}
}

// Parents returns the ordered parent list {parent1, parent2?} of a commit.
func (g *Graph) Parents(fp string) ([]string, error) {
	c, err := g.Meta.GetCommit(fp)
	if err != nil {
		return nil, err
	}
	var parents []string
	if c.FirstParent != "" {
		parents = append(parents, c.FirstParent)
	}
	if c.SecondParent != "" {
		parents = append(parents, c.SecondParent)
	}
	return parents, nil
}

// Ancestors returns every commit reachable from fp via any parent edge,
// including fp itself.
func (g *Graph) Ancestors(fp string) (map[string]struct{}, error) {
	if !g.Meta.CommitExists(fp) {
		return nil, fmt.Errorf("no such commit %q", fp)
	}
	seen := map[string]struct{}{}
	queue := []string{fp}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		parents, err := g.Parents(id)
		if err != nil {
			return nil, err
		}
		queue = append(queue, parents...)
	}
	return seen, nil
}

// WalkFirstParent visits commits from fp along first-parent edges until the
// initial commit. The walk stops early if visit returns an error.
func (g *Graph) WalkFirstParent(fp string, visit func(id string, c *meta.Commit) error) error {
	for fp != "" {
		c, err := g.Meta.GetCommit(fp)
		if err != nil {
			return err
		}
		if err := visit(fp, c); err != nil {
			return err
		}
		fp = c.FirstParent
	}
	return nil
}

// SplitPoint finds the merge base of a and b:
// if one head is an ancestor of the other, that head wins; otherwise a
// level-order BFS from a (both parent edges) returns the first commit that
// is an ancestor of b. Ties break by discovery order from a. This keeps the
// historical behavior on criss-crossed histories; it is deliberately not a
// full lowest-common-ancestor search.
func (g *Graph) SplitPoint(a, b string) (string, error) {
	ancestorsOfA, err := g.Ancestors(a)
	if err != nil {
		return "", err
	}
	if _, ok := ancestorsOfA[b]; ok {
		return b, nil
	}
	ancestorsOfB, err := g.Ancestors(b)
	if err != nil {
		return "", err
	}
	if _, ok := ancestorsOfB[a]; ok {
		return a, nil
	}

	visited := map[string]struct{}{}
	queue := []string{a}
	for len(queue) > 0 {
		level := len(queue)
		for i := 0; i < level; i++ {
			id := queue[0]
			queue = queue[1:]
			if _, ok := visited[id]; ok {
				continue
			}
			visited[id] = struct{}{}
			if _, ok := ancestorsOfB[id]; ok {
				return id, nil
			}
			parents, err := g.Parents(id)
			if err != nil {
				return "", err
			}
			queue = append(queue, parents...)
		}
	}
	return "", fmt.Errorf("no common ancestor of %q and %q", a, b)
}
