package repo

import (
	"fmt"
	"strings"

	"github.com/keshon/gitlet/internal/repo/meta"
)

// logDateLayout matches "Thu Jan 1 00:00:00 1970 +0000". Dates format in
// UTC so the initial commit prints the same on every host.
const logDateLayout = "Mon Jan 2 15:04:05 2006 -0700"

func formatLogRecord(id string, c *meta.Commit) string {
	var sb strings.Builder
	sb.WriteString("===\n")
	fmt.Fprintf(&sb, "commit %s\n", id)
	if c.SecondParent != "" {
		fmt.Fprintf(&sb, "Merge: %s %s\n", c.FirstParent[:7], c.SecondParent[:7])
	}
	fmt.Fprintf(&sb, "Date: %s\n", c.Date().Format(logDateLayout))
	fmt.Fprintf(&sb, "%s\n", c.Message)
	sb.WriteString("\n")
	return sb.String()
}

// Log renders the history along first-parent edges from HEAD, newest first.
func (r *Repository) Log() (string, error) {
	headID, err := r.Meta.HeadCommitID()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	err = r.Graph.WalkFirstParent(headID, func(id string, c *meta.Commit) error {
		sb.WriteString(formatLogRecord(id, c))
		return nil
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

// GlobalLog renders a record for every stored commit, in store enumeration
// order.
func (r *Repository) GlobalLog() (string, error) {
	ids, err := r.Meta.ListCommitIDs()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, id := range ids {
		c, err := r.Meta.GetCommit(id)
		if err != nil {
			return "", err
		}
		sb.WriteString(formatLogRecord(id, c))
	}
	return sb.String(), nil
}

// Find prints the fingerprints of all commits with the given message.
func (r *Repository) Find(message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyCommitMessage
	}

	ids, err := r.Meta.ListCommitIDs()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, id := range ids {
		c, err := r.Meta.GetCommit(id)
		if err != nil {
			return "", err
		}
		if c.Message == message {
			sb.WriteString(id)
			sb.WriteString("\n")
		}
	}
	if sb.Len() == 0 {
		return MsgNoCommitFound + "\n", nil
	}
	return sb.String(), nil
}
