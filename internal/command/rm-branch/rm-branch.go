package rmbranch

import (
	"github.com/keshon/gitlet/internal/cli"
	"github.com/keshon/gitlet/internal/repo"
)

type Command struct{}

func (c *Command) Name() string  { return "rm-branch" }
func (c *Command) Usage() string { return "rm-branch <name>" }
func (c *Command) Brief() string { return "Delete a branch pointer" }
func (c *Command) Help() string {
	return `Delete the branch pointer with the given name. Commits created
under the branch are kept.`
}

func (c *Command) Run(ctx *cli.Context) error {
	if len(ctx.Args) != 1 {
		return repo.ErrIncorrectOperands
	}
	return repo.NewRepositoryByPath(ctx.WorkTree).RmBranch(ctx.Args[0])
}

func init() {
	cli.RegisterCommand(cli.ApplyMiddlewares(&Command{}, cli.WithRepoCheck()))
}
