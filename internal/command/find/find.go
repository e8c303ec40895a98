package find

import (
	"fmt"

	"github.com/keshon/gitlet/internal/cli"
	"github.com/keshon/gitlet/internal/repo"
)

type Command struct{}

func (c *Command) Name() string  { return "find" }
func (c *Command) Usage() string { return "find <message>" }
func (c *Command) Brief() string { return "Print ids of commits with the given message" }
func (c *Command) Help() string {
	return `Print the fingerprints of all commits whose message equals the
argument, one per line.`
}

func (c *Command) Run(ctx *cli.Context) error {
	if len(ctx.Args) != 1 {
		return repo.ErrIncorrectOperands
	}
	out, err := repo.NewRepositoryByPath(ctx.WorkTree).Find(ctx.Args[0])
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func init() {
	cli.RegisterCommand(cli.ApplyMiddlewares(&Command{}, cli.WithRepoCheck()))
}
