package merge

import (
	"fmt"

	"github.com/keshon/gitlet/internal/cli"
	"github.com/keshon/gitlet/internal/repo"
)

type Command struct{}

func (c *Command) Name() string  { return "merge" }
func (c *Command) Usage() string { return "merge <branch>" }
func (c *Command) Brief() string { return "Merge another branch into the current branch" }
func (c *Command) Help() string {
	return `Perform a three-way merge of the given branch into the current
branch against their split point. Divergent changes to the same file leave
conflict markers to resolve.`
}

func (c *Command) Run(ctx *cli.Context) error {
	if len(ctx.Args) != 1 {
		return repo.ErrIncorrectOperands
	}
	out, err := repo.NewRepositoryByPath(ctx.WorkTree).Merge(ctx.Args[0])
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func init() {
	cli.RegisterCommand(cli.ApplyMiddlewares(&Command{}, cli.WithRepoCheck()))
}
