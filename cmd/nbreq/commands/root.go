// Package commands implements the CLI commands for nbreq.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/nbreq/internal/app"
	"go.trai.ch/nbreq/internal/build"
)

// CLI represents the command line interface for nbreq.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "nbreq",
		Short:         "Manage the Python requirements of Jupyter notebooks",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log collaborator output and workflow transitions")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newAddCmd())
	rootCmd.AddCommand(c.newRemoveCmd())
	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newHistoryCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetVerboseHook sets up a PersistentPreRun function that retrieves the
// verbose flag and calls the provided callback with its value.
func (c *CLI) SetVerboseHook(fn func(bool)) {
	c.rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return err
		}
		fn(verbose)
		return nil
	}
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects the output of every command. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
