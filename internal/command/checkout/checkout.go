package checkout

import (
	"github.com/keshon/gitlet/internal/cli"
	"github.com/keshon/gitlet/internal/repo"
)

type Command struct{}

func (c *Command) Name() string { return "checkout" }
func (c *Command) Usage() string {
	return "checkout -- <file> | checkout <commit> -- <file> | checkout <branch>"
}
func (c *Command) Brief() string { return "Restore a file or switch to a branch" }
func (c *Command) Help() string {
	return `Restore a file from the head commit or a named commit, or switch
the working tree to the head of another branch.`
}

func (c *Command) Run(ctx *cli.Context) error {
	r := repo.NewRepositoryByPath(ctx.WorkTree)
	switch len(ctx.Args) {
	case 1:
		return r.CheckoutBranch(ctx.Args[0])
	case 2:
		if ctx.Args[0] != "--" {
			return repo.ErrIncorrectOperands
		}
		return r.CheckoutFile(ctx.Args[1])
	case 3:
		if ctx.Args[1] != "--" {
			return repo.ErrIncorrectOperands
		}
		return r.CheckoutFileAt(ctx.Args[0], ctx.Args[2])
	default:
		return repo.ErrIncorrectOperands
	}
}

func init() {
	cli.RegisterCommand(cli.ApplyMiddlewares(&Command{}, cli.WithRepoCheck()))
}
