package log

import (
	"fmt"

	"github.com/keshon/gitlet/internal/cli"
	"github.com/keshon/gitlet/internal/repo"
)

type Command struct{}

func (c *Command) Name() string  { return "log" }
func (c *Command) Usage() string { return "log" }
func (c *Command) Brief() string { return "Show history of the current branch" }
func (c *Command) Help() string {
	return `Starting at the current head commit, display each commit
backwards along first-parent links until the initial commit.`
}

func (c *Command) Run(ctx *cli.Context) error {
	if len(ctx.Args) != 0 {
		return repo.ErrIncorrectOperands
	}
	out, err := repo.NewRepositoryByPath(ctx.WorkTree).Log()
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func init() {
	cli.RegisterCommand(cli.ApplyMiddlewares(&Command{}, cli.WithRepoCheck()))
}
