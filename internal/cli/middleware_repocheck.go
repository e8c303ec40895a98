package cli

import "github.com/keshon/gitlet/internal/repo"

// WithRepoCheck refuses to run the command outside an initialized
// repository.
func WithRepoCheck() Middleware {
	return func(cmd Command) Command {
		return &WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *Context) error {
				if !repo.NewRepositoryByPath(ctx.WorkTree).IsInitialized() {
					return repo.ErrNotInitialized
				}
				return cmd.Run(ctx)
			},
		}
	}
}
