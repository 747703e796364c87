package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/ghprofile/internal/server"
)

// serveCommand creates the command that serves the search page.
func (c *CLI) serveCommand() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the profile search page over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := c.Config.Listen
			if listen != "" {
				addr = listen
			}

			srv := server.New(server.Options{
				Addr:   addr,
				Runner: c.newRunner(),
				Logger: c.Logger,
			})
			printInfo(cmd.OutOrStdout(), "Serving on http://%s", addr)
			printDetail(cmd.OutOrStdout(), "API: %s", c.Config.APIURL)
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "address to listen on (overrides config)")
	return cmd
}
