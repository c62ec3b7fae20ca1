package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vdobler/hallplot"
	"github.com/vdobler/hallplot/stat"
)

func fitCmd() *cobra.Command {
	var weighted bool
	cmd := &cobra.Command{
		Use:   "fit <variant>",
		Short: "Print the fit line, mean and residuals of a variant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := registry.Lookup(args[0])
			if err != nil {
				return err
			}
			rows := v.Data
			if data != nil {
				rows = data
			}
			s, err := hallplot.SeriesFromRows(v.Name, rows)
			if err != nil {
				return err
			}
			p, err := hallplot.NewPrinter(lang)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			mean, err := stat.Mean(s.Y())
			if err != nil {
				return err
			}
			fmt.Fprintln(out, p.FormatMean(mean))

			fit, err := hallplot.Fit(s, weighted)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, p.FormatFit(fit))
			r2, err := stat.RSquared(fit, s.X(), s.Y())
			if err != nil {
				return err
			}
			fmt.Fprintln(out, p.FormatRSquared(r2))

			res, err := stat.Residuals(fit, s.X(), s.Y())
			if err != nil {
				return err
			}
			x := s.X()
			for i, r := range res {
				fmt.Fprintf(out, "%10.4g %+10.4f\n", x[i], r)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&weighted, "weighted", "w", false, "weight the fit by the y uncertainties")
	return cmd
}
