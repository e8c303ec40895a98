package initialize

import (
	"github.com/keshon/gitlet/internal/cli"
	"github.com/keshon/gitlet/internal/repo"
)

type Command struct{}

func (c *Command) Name() string  { return "init" }
func (c *Command) Usage() string { return "init" }
func (c *Command) Brief() string { return "Create a new version-control system in the current directory" }
func (c *Command) Help() string {
	return `Create a new repository in the current directory, with a single
initial commit on the master branch.`
}

func (c *Command) Run(ctx *cli.Context) error {
	if len(ctx.Args) != 0 {
		return repo.ErrIncorrectOperands
	}
	return repo.NewRepositoryByPath(ctx.WorkTree).Init()
}

func init() {
	cli.RegisterCommand(&Command{})
}
