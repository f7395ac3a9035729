package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Indusoptima/plotsync-sub001/internal/api"
)

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr  string
		flags cacheFlags
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the PlotSync HTTP API",
		Long: `Run the PlotSync HTTP API.

The server exposes POST /v1/solve and POST /v1/validate plus a /healthz
liveness probe. Solves share the same cache backends as the CLI; use
--cache-backend to point several instances at one redis or mongo store.

The server shuts down gracefully on SIGINT/SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(cmd.Context(), flags)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			return api.NewServer(runner, c.Logger).Serve(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	flags.register(cmd)

	return cmd
}
