package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/nbreq/internal/app"
	"go.trai.ch/nbreq/internal/core/domain"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	types := make([]string, 0, len(domain.RecommendationTypes()))
	for _, rt := range domain.RecommendationTypes() {
		types = append(types, string(rt))
	}

	cmd := &cobra.Command{
		Use:   "install <notebook>",
		Short: "Lock, install and create the kernel for the declared requirements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kernelName, _ := cmd.Flags().GetString("kernel-name")
			recommendationType, _ := cmd.Flags().GetString("recommendation-type")

			state, err := c.app.Install(cmd.Context(), args[0], app.InstallOptions{
				KernelName:         kernelName,
				RecommendationType: recommendationType,
			})
			if err == nil || errors.Is(err, domain.ErrWorkflowFailed) {
				printState(cmd.OutOrStdout(), state)
			}
			return err
		},
	}
	cmd.Flags().StringP("kernel-name", "k", "", "Name of the kernel to create")
	cmd.Flags().StringP("recommendation-type", "r", "",
		fmt.Sprintf("Recommendation type for the resolver (%s)", strings.Join(types, ", ")))
	return cmd
}
