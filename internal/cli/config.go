package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ghprofile/internal/config"
)

// configCommand creates the config inspection command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect ghprofile configuration",
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath
			if path == "" {
				p, err := config.Path()
				if err != nil {
					return fmt.Errorf("get config path: %w", err)
				}
				path = p
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if raw {
				out, err := c.Config.Encode()
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}

			timeout := "none"
			if c.Config.Timeout.Duration > 0 {
				timeout = c.Config.Timeout.String()
			}
			out := cmd.OutOrStdout()
			printKeyValue(out, "api_url", c.Config.APIURL)
			printKeyValue(out, "listen", c.Config.Listen)
			printKeyValue(out, "timeout", timeout)
			printKeyValue(out, "user_agent", c.Config.UserAgent)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "toml", false, "print as TOML")
	return cmd
}
