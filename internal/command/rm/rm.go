package rm

import (
	"github.com/keshon/gitlet/internal/cli"
	"github.com/keshon/gitlet/internal/repo"
)

type Command struct{}

func (c *Command) Name() string  { return "rm" }
func (c *Command) Usage() string { return "rm <file>" }
func (c *Command) Brief() string { return "Unstage a file, or stage it for removal" }
func (c *Command) Help() string {
	return `Unstage the file if it is staged for addition. If the current
commit tracks it, stage it for removal and delete it from the working
directory.`
}

func (c *Command) Run(ctx *cli.Context) error {
	if len(ctx.Args) != 1 {
		return repo.ErrIncorrectOperands
	}
	return repo.NewRepositoryByPath(ctx.WorkTree).Rm(ctx.Args[0])
}

func init() {
	cli.RegisterCommand(cli.ApplyMiddlewares(&Command{}, cli.WithRepoCheck()))
}
