package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func (c *CLI) newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List the recorded locks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := c.app.History()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no locks recorded")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "TIME\tKERNEL\tRESOLVER\tREQUESTED\tLOCKED\tFINGERPRINT")
			for _, e := range entries {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
					e.Timestamp.Local().Format(time.DateTime),
					e.KernelName,
					e.Resolver,
					e.Requested,
					e.Locked,
					e.Fingerprint,
				)
			}
			return w.Flush()
		},
	}
}
