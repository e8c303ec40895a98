package cli

import (
	"fmt"
	"os"

	"github.com/keshon/gitlet/internal/repo"
)

// Run dispatches one invocation and returns the process exit code. Errors
// print their fixed message and yield a non-zero exit; nothing is written
// to the repository after a failed precondition.
func Run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, repo.ErrNoCommand)
		return 1
	}

	cmd, ok := GetCommand(args[0])
	if !ok {
		fmt.Fprintln(os.Stderr, repo.ErrUnknownCommand)
		return 1
	}

	ctx := &Context{
		Args:     args[1:],
		WorkTree: ".",
	}

	if err := cmd.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
