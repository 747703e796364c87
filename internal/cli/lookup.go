package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ghprofile/pkg/lookup"
	"github.com/matzehuels/ghprofile/pkg/profile"
)

// lookupOpts holds the flags of the lookup command.
type lookupOpts struct {
	html   string
	asJSON bool
}

// lookupCommand creates the one-shot lookup command.
func (c *CLI) lookupCommand() *cobra.Command {
	var opts lookupOpts

	cmd := &cobra.Command{
		Use:   "lookup <username>",
		Short: "Look up a GitHub user and print their profile",
		Long: `Look up a GitHub user and print their profile and latest repositories.

By default the profile is rendered for the terminal. Use --json for the
formatted view model or --html to write the search page with the result.`,
		Example: `  ghprofile lookup octocat
  ghprofile lookup octocat --json
  ghprofile lookup octocat --html octocat.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLookup(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.html, "html", "", "write the rendered page to this file")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the formatted profile as JSON")

	return cmd
}

func (c *CLI) runLookup(cmd *cobra.Command, input string, opts lookupOpts) error {
	prog := newProgress(c.Logger)
	state, res, err := lookup.Resolve(cmd.Context(), c.newRunner(), input)

	if opts.html != "" {
		if err := writePage(opts.html, state); err != nil {
			return err
		}
		printSuccess(cmd.ErrOrStderr(), "Rendered page")
		printFile(cmd.ErrOrStderr(), opts.html)
	}

	if err != nil {
		return &lookupError{message: state.ErrorMessage, err: err}
	}
	prog.done(fmt.Sprintf("Fetched %s", res.Username))

	switch {
	case opts.asJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(state.Profile)
	case opts.html == "":
		fmt.Fprintln(cmd.OutOrStdout(), renderProfile(state.Profile))
	}
	return nil
}

// lookupError reads as the message shown in the error region and keeps the
// failure for errors.Is, so a cancelled lookup still matches context.Canceled.
type lookupError struct {
	message string
	err     error
}

func (e *lookupError) Error() string { return e.message }

func (e *lookupError) Unwrap() error { return e.err }

func writePage(path string, state profile.ViewState) error {
	var buf bytes.Buffer
	if err := profile.Render(&buf, state); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
