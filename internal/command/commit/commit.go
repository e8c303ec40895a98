package commit

import (
	"github.com/keshon/gitlet/internal/cli"
	"github.com/keshon/gitlet/internal/repo"
)

type Command struct{}

func (c *Command) Name() string  { return "commit" }
func (c *Command) Usage() string { return "commit <message>" }
func (c *Command) Brief() string { return "Commit staged changes to the current branch" }
func (c *Command) Help() string {
	return `Save a snapshot of the tracked files in the current commit and
staging area, so they can be restored later. The staging area is cleared.`
}

func (c *Command) Run(ctx *cli.Context) error {
	if len(ctx.Args) != 1 {
		return repo.ErrIncorrectOperands
	}
	return repo.NewRepositoryByPath(ctx.WorkTree).Commit(ctx.Args[0])
}

func init() {
	cli.RegisterCommand(cli.ApplyMiddlewares(&Command{}, cli.WithRepoCheck()))
}
