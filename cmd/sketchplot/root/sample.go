package root

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/vdobler/sketch"
	"github.com/vdobler/sketch/data"
)

func curveNames() []string {
	names := make([]string, 0, len(data.Curves))
	for name := range data.Curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newSampleCmd() *cobra.Command {
	var (
		output     string
		resolution int
		normalize  bool
		autoscale  bool
		showMean   bool
	)

	cmd := &cobra.Command{
		Use:   "sample <curve>",
		Short: "Sample a built-in curve into a function document",
		Long: heredoc.Docf(`
			Evaluate a built-in curve on resolution equidistant positions in
			[left, right) and store the samples as a function.

			Curves: %s
		`, strings.Join(curveNames(), ", ")),
		Example: heredoc.Doc(`
			$ sketchplot sample well --left -3 --right 3 --resolution 200 -o potential.yaml
			$ sketchplot sample gauss --normalize --autoscale -o wave.toml
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := data.Curves[args[0]]
			if !ok {
				return fmt.Errorf("unknown curve %q, valid curves are %v", args[0], curveNames())
			}
			pos := position()
			dp, err := data.Sample(f, pos.Min, pos.Max, resolution)
			if err != nil {
				return err
			}
			if normalize {
				if err := data.Normalize(dp); err != nil {
					return err
				}
			}

			fn := sketch.NewFunction(args[0], sketch.Formula)
			fn.Formula = args[0]
			fn.ShowMean = showMean
			fn.SetDatapoints(dp)
			if autoscale {
				fn.Autoscale(0.05)
			}
			return writeFunction(cmd, fn, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Function document to write (default stdout)")
	cmd.Flags().IntVar(&resolution, "resolution", 100, "Number of samples")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "Scale the samples to unit norm")
	cmd.Flags().BoolVar(&autoscale, "autoscale", false, "Fit the scale to the samples")
	cmd.Flags().BoolVar(&showMean, "show-mean", false, "Mark the weighted mean when rendering")

	return cmd
}
