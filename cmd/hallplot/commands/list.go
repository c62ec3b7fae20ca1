package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the known variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSHEET\tGRID\tTREND\tPOINTS\tOUTPUT")
			for _, n := range registry.Names() {
				v := registry[n]
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n", v.Name, v.Sheet, v.Grid, v.Trend, len(v.Data), v.Output)
			}
			return tw.Flush()
		},
	}
}
