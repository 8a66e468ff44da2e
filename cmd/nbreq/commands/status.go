package commands

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/nbreq/internal/core/domain"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <notebook>",
		Short: "Compare declared, locked and installed requirements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := c.app.Status(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printState(cmd.OutOrStdout(), state)
			return nil
		},
	}
}

func printState(w io.Writer, state domain.WorkflowState) {
	_, _ = fmt.Fprintf(w, "\nkernel:              %s\n", state.KernelName)
	_, _ = fmt.Fprintf(w, "python:              %s\n", state.Requirements.PythonVersion)
	_, _ = fmt.Fprintf(w, "recommendation type: %s\n", state.RecommendationType)
	if state.ErrorMessage != "" {
		_, _ = fmt.Fprintf(w, "error:               %s\n", state.ErrorMessage)
	}

	if len(state.Saved) == 0 {
		return
	}
	_, _ = fmt.Fprintln(w, "packages:")
	for _, name := range slices.Sorted(maps.Keys(state.Saved)) {
		mark := " "
		if _, ok := state.Installed[name]; ok {
			mark = "✓"
		}
		_, _ = fmt.Fprintf(w, "  %s %s %s\n", mark, name, state.Saved[name])
	}
}

// parseRequirement splits "flask>=3.0" into its name and version specifier.
// A bare name accepts any version.
func parseRequirement(arg string) (string, string) {
	i := strings.IndexAny(arg, "=<>!~")
	if i < 0 {
		return strings.TrimSpace(arg), domain.AnyVersion
	}
	name := strings.TrimSpace(arg[:i])
	version := strings.TrimSpace(arg[i:])
	if version == "" {
		version = domain.AnyVersion
	}
	return name, version
}
