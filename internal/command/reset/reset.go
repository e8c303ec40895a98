package reset

import (
	"github.com/keshon/gitlet/internal/cli"
	"github.com/keshon/gitlet/internal/repo"
)

type Command struct{}

func (c *Command) Name() string  { return "reset" }
func (c *Command) Usage() string { return "reset <commit>" }
func (c *Command) Brief() string { return "Restore the working tree to a commit and move the branch" }
func (c *Command) Help() string {
	return `Check out all files tracked by the given commit, remove tracked
files the commit does not track, move the current branch there and clear
the staging area.`
}

func (c *Command) Run(ctx *cli.Context) error {
	if len(ctx.Args) != 1 {
		return repo.ErrIncorrectOperands
	}
	return repo.NewRepositoryByPath(ctx.WorkTree).Reset(ctx.Args[0])
}

func init() {
	cli.RegisterCommand(cli.ApplyMiddlewares(&Command{}, cli.WithRepoCheck()))
}
