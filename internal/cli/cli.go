// Package cli implements the ghprofile command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ghprofile/internal/config"
	"github.com/matzehuels/ghprofile/pkg/buildinfo"
	"github.com/matzehuels/ghprofile/pkg/integrations"
	"github.com/matzehuels/ghprofile/pkg/integrations/github"
	"github.com/matzehuels/ghprofile/pkg/lookup"
	"github.com/matzehuels/ghprofile/pkg/observability"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "ghprofile",
		Short:        "ghprofile looks up GitHub user profiles",
		Long:         `ghprofile fetches a GitHub user's public profile and latest repositories and renders them in the terminal, as HTML, or through a small web page.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/ghprofile/config.toml)")

	root.AddCommand(c.lookupCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file and environment and registers the
// logging hooks.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	hooks := &logHooks{logger: c.Logger}
	observability.SetLookupHooks(hooks)
	observability.SetHTTPHooks(hooks)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a lookup runner backed by the configured GitHub API.
func (c *CLI) newRunner() *lookup.Runner {
	client := github.NewClient(github.Options{
		BaseURL:    c.Config.APIURL,
		HTTPClient: integrations.NewHTTPClient(c.Config.Timeout.Duration),
		UserAgent:  c.Config.UserAgent,
	})
	return lookup.NewRunner(client, c.Logger)
}
