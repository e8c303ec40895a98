package branch

import (
	"github.com/keshon/gitlet/internal/cli"
	"github.com/keshon/gitlet/internal/repo"
)

type Command struct{}

func (c *Command) Name() string  { return "branch" }
func (c *Command) Usage() string { return "branch <name>" }
func (c *Command) Brief() string { return "Create a new branch at the current head commit" }
func (c *Command) Help() string {
	return `Create a new branch pointing at the current head commit. HEAD
stays on the current branch.`
}

func (c *Command) Run(ctx *cli.Context) error {
	if len(ctx.Args) != 1 {
		return repo.ErrIncorrectOperands
	}
	return repo.NewRepositoryByPath(ctx.WorkTree).Branch(ctx.Args[0])
}

func init() {
	cli.RegisterCommand(cli.ApplyMiddlewares(&Command{}, cli.WithRepoCheck()))
}
