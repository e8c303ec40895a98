package add

import (
	"github.com/keshon/gitlet/internal/cli"
	"github.com/keshon/gitlet/internal/repo"
)

type Command struct{}

func (c *Command) Name() string  { return "add" }
func (c *Command) Usage() string { return "add <file>" }
func (c *Command) Brief() string { return "Stage a file for addition" }
func (c *Command) Help() string {
	return `Stage a copy of the file as it currently exists. Staging an
already-staged file overwrites the previous entry; staging a file whose
contents match the current commit removes the stale entry instead.`
}

func (c *Command) Run(ctx *cli.Context) error {
	if len(ctx.Args) != 1 {
		return repo.ErrIncorrectOperands
	}
	return repo.NewRepositoryByPath(ctx.WorkTree).Add(ctx.Args[0])
}

func init() {
	cli.RegisterCommand(cli.ApplyMiddlewares(&Command{}, cli.WithRepoCheck()))
}
