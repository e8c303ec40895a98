package status

import (
	"fmt"

	"github.com/keshon/gitlet/internal/cli"
	"github.com/keshon/gitlet/internal/repo"
)

type Command struct{}

func (c *Command) Name() string  { return "status" }
func (c *Command) Usage() string { return "status" }
func (c *Command) Brief() string { return "Show branches, staged files and working tree state" }
func (c *Command) Help() string {
	return `Display the existing branches (current one starred), staged and
removed files, unstaged modifications, and untracked files.`
}

func (c *Command) Run(ctx *cli.Context) error {
	if len(ctx.Args) != 0 {
		return repo.ErrIncorrectOperands
	}
	out, err := repo.NewRepositoryByPath(ctx.WorkTree).Status()
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func init() {
	cli.RegisterCommand(cli.ApplyMiddlewares(&Command{}, cli.WithRepoCheck()))
}
