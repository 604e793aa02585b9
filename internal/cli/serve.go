package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/nqueens/internal/server"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve solves over an HTTP API",
		Long: `Serve solves over an HTTP API.

Endpoints:
  GET  /healthz        liveness probe
  POST /api/v1/solve   run one solve; accepts the same options as the
                       solve command as a JSON body

Deterministic results are cached with the configured backend; set
cache.redis_addr in the config file to share the cache across instances.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner := c.newRunner(ctx, noCache)
			defer runner.Close()

			srv := server.New(runner, c.Logger)
			printInfo("Listening on %s", addr)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", c.config.Serve.Addr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")

	return cmd
}
