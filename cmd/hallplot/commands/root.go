package commands

import (
	"github.com/spf13/cobra"

	"github.com/vdobler/hallplot"
)

var (
	configPath string
	dataPath   string
	lang       string
	verbose    bool

	registry hallplot.Registry
	data     []hallplot.Row
	logger   *hallplot.Logger
)

func Execute() error {
	return newRoot().Execute()
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "hallplot",
		Short:        "Charts for the Hall effect lab on millimetre paper",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := hallplot.LevelInfo
			if verbose {
				level = hallplot.LevelDebug
			}
			logger = hallplot.NewLogger(cmd.ErrOrStderr(), level)

			registry = hallplot.Builtin
			if configPath != "" {
				reg, err := hallplot.LoadVariants(configPath)
				if err != nil {
					return err
				}
				registry = registry.Merge(reg)
				logger.Debugf("loaded %d variants from %s", len(reg), configPath)
			}

			data = nil
			if dataPath != "" {
				rows, err := hallplot.LoadRows(dataPath)
				if err != nil {
					return err
				}
				data = rows
				logger.Debugf("loaded %d rows from %s", len(rows), dataPath)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "JSON file with additional or overriding variants")
	root.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "measurements (.xlsx or .csv) replacing those of the variant")
	root.PersistentFlags().StringVar(&lang, "lang", hallplot.DefaultLang, "language of the labels (ru, en)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug output")

	root.AddCommand(renderCmd(), listCmd(), exportCmd(), fitCmd())
	return root
}

// variants looks up the named variants, all in the registry if none
// are named.
func variants(names []string) ([]hallplot.Variant, error) {
	if len(names) == 0 {
		names = registry.Names()
	}
	vs := make([]hallplot.Variant, 0, len(names))
	for _, n := range names {
		v, err := registry.Lookup(n)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}
