package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <notebook> <package[specifier]>...",
		Short: "Declare packages in the notebook metadata",
		Example: `  nbreq add analysis.ipynb flask "numpy>=1.26"
  nbreq add analysis.ipynb pandas==2.2.0`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			packages := make(domain.PackageMap, len(args)-1)
			for _, arg := range args[1:] {
				name, version := parseRequirement(arg)
				if name == "" {
					return zerr.With(zerr.Wrap(domain.ErrInvalidRequirement, "missing package name"), "argument", arg)
				}
				packages[name] = version
			}

			state, err := c.app.Add(cmd.Context(), args[0], packages)
			if err != nil {
				return err
			}
			printState(cmd.OutOrStdout(), state)
			return nil
		},
	}
}

func (c *CLI) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <notebook> <package>...",
		Short: "Remove declared packages from the notebook metadata",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := c.app.Remove(cmd.Context(), args[0], args[1:])
			if err != nil {
				return err
			}
			printState(cmd.OutOrStdout(), state)
			return nil
		},
	}
}
