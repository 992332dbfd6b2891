package root

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/vdobler/sketch"
	"github.com/vdobler/sketch/experiment"
	"github.com/vdobler/sketch/internal/document"
)

func newSimulateCmd() *cobra.Command {
	var (
		output      string
		momentum    float64
		t           float64
		eigenvector int
	)

	cmd := &cobra.Command{
		Use:   "simulate <potential> <wavefunction>",
		Short: "Evolve a wave function in a potential",
		Long: heredoc.Doc(`
			Run the discrete Schrödinger experiment. The wave function is
			given the mean momentum --momentum, expanded in the stationary
			states of the potential and evolved to time --time. The result
			is the probability density on [left, right).

			With --eigenvector n the stationary state n is written instead.
			Both documents must have the same number of samples.
		`),
		Example: heredoc.Doc(`
			$ sketchplot simulate potential.yaml wave.yaml --momentum 2 --time 10 -o density.yaml
			$ sketchplot simulate potential.yaml wave.yaml --eigenvector 0
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			potential, err := loadSamples(args[0])
			if err != nil {
				return err
			}
			wave, err := loadSamples(args[1])
			if err != nil {
				return err
			}

			var lab experiment.Lab
			if err := lab.Run(*potential, *wave, momentum); err != nil {
				return err
			}

			pos := position()
			var fn *sketch.Function
			if eigenvector >= 0 {
				dp, err := lab.Eigenvector(eigenvector, pos.Min, pos.Max)
				if err != nil {
					return err
				}
				fn = sketch.NewFunction(fmt.Sprintf("eigenvector %d", eigenvector), sketch.Drawing)
				fn.N = &eigenvector
				fn.SetDatapoints(dp)
			} else {
				fn = sketch.NewFunction(fmt.Sprintf("density t=%g", t), sketch.Drawing)
				fn.ShowMean = true
				fn.SetDatapoints(lab.Evolve(t, pos.Min, pos.Max))
			}
			fn.ComplexPhase = &momentum
			fn.ReadOnly = true
			fn.Autoscale(0.05)

			return writeFunction(cmd, fn, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Function document to write (default stdout)")
	cmd.Flags().Float64Var(&momentum, "momentum", 0, "Mean momentum of the wave function")
	cmd.Flags().Float64Var(&t, "time", 0, "Time to evolve to")
	cmd.Flags().IntVar(&eigenvector, "eigenvector", -1, "Write stationary state n instead of the density")

	return cmd
}

func loadSamples(path string) (*sketch.Datapoints, error) {
	fn, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	if !fn.HasDatapoints() {
		return nil, fmt.Errorf("%s: %w", path, sketch.ErrNoDatapoints)
	}
	return fn.Datapoints, nil
}
