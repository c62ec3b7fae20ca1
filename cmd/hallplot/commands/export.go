package commands

import (
	"github.com/spf13/cobra"

	"github.com/vdobler/hallplot"
)

func exportCmd() *cobra.Command {
	var sheet string
	cmd := &cobra.Command{
		Use:   "export <variant> <file.xlsx>",
		Short: "Write the measurements of a variant to an .xlsx file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := registry.Lookup(args[0])
			if err != nil {
				return err
			}
			rows := v.Data
			if data != nil {
				rows = data
			}
			if sheet == "" {
				sheet = v.Name
			}
			if err := hallplot.SaveRows(args[1], sheet, rows); err != nil {
				return err
			}
			logger.Infof("wrote %d rows to %s", len(rows), args[1])
			return nil
		},
	}
	cmd.Flags().StringVar(&sheet, "sheet", "", "sheet name (default: variant name)")
	return cmd
}
