package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ghprofile/pkg/lookup"
)

// searchCommand creates the interactive search command.
func (c *CLI) searchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search",
		Short: "Search GitHub profiles interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := lookup.NewController(c.newRunner())
			model := NewSearchModel(cmd.Context(), ctrl)

			p := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}
}
