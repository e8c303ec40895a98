package globallog

import (
	"fmt"

	"github.com/keshon/gitlet/internal/cli"
	"github.com/keshon/gitlet/internal/repo"
)

type Command struct{}

func (c *Command) Name() string  { return "global-log" }
func (c *Command) Usage() string { return "global-log" }
func (c *Command) Brief() string { return "Show every commit ever made" }
func (c *Command) Help() string {
	return `Display a record for every commit in the store, in store
enumeration order.`
}

func (c *Command) Run(ctx *cli.Context) error {
	if len(ctx.Args) != 0 {
		return repo.ErrIncorrectOperands
	}
	out, err := repo.NewRepositoryByPath(ctx.WorkTree).GlobalLog()
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func init() {
	cli.RegisterCommand(cli.ApplyMiddlewares(&Command{}, cli.WithRepoCheck()))
}
