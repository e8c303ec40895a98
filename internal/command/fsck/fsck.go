package fsck

import (
	"fmt"

	"github.com/keshon/gitlet/internal/cli"
	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/repotools"
)

type Command struct{}

func (c *Command) Name() string  { return "fsck" }
func (c *Command) Usage() string { return "fsck" }
func (c *Command) Brief() string { return "Verify object store integrity" }
func (c *Command) Help() string {
	return `Re-hash every blob and commit record and compare the digest to
the file name it is stored under.`
}

func (c *Command) Run(ctx *cli.Context) error {
	cfg := config.NewRepoConfig(ctx.WorkTree)
	report, err := repotools.VerifyObjects(cfg, fs.NewOSFS(), true)
	if err != nil {
		return err
	}
	fmt.Println(report)
	if !report.OK() {
		return fmt.Errorf("object store is corrupt")
	}
	return nil
}

func init() {
	cli.RegisterCommand(cli.ApplyMiddlewares(&Command{}, cli.WithRepoCheck()))
}
