package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vdobler/hallplot"
)

func renderCmd() *cobra.Command {
	var (
		gridMode string
		outDir   string
		weighted bool
	)
	cmd := &cobra.Command{
		Use:   "render [variant...]",
		Short: "Draw variants to image files",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := hallplot.Options{
				Lang:     lang,
				Weighted: weighted,
				Data:     data,
				OutDir:   outDir,
				Logger:   logger,
			}
			if gridMode != "" {
				mode, err := hallplot.ParseGridMode(gridMode)
				if err != nil {
					return err
				}
				opts.Grid = mode
			}
			if outDir != "" {
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					return err
				}
			}

			vs, err := variants(args)
			if err != nil {
				return err
			}
			for _, v := range vs {
				path, err := hallplot.Render(v, opts)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&gridMode, "grid", "g", "", "grid mode physical, data or none (default: per variant)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default: current)")
	cmd.Flags().BoolVarP(&weighted, "weighted", "w", false, "weight the fit by the y uncertainties")
	return cmd
}
