// Package root holds the commands of sketchplot.
package root

import (
	"fmt"
	"log/slog"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vdobler/sketch"
	"github.com/vdobler/sketch/internal/document"
)

// NewRootCmd returns the sketchplot command with all its subcommands.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sketchplot <command> [flags]",
		Short: "Render and analyze sketched functions",
		Long: heredoc.Doc(`
			sketchplot works on function documents: a named sequence of
			samples in JSON, YAML or TOML. It renders them as path strings
			or images, computes their weighted mean and runs the discrete
			Schrödinger experiment on a potential and a wave function.
		`),
		Example: heredoc.Doc(`
			$ sketchplot sample gauss -o wave.yaml
			$ sketchplot path wave.yaml --width 640 --height 480
			$ sketchplot render wave.yaml -o wave.svg
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := document.ParseFormat(viper.GetString("format")); err != nil {
				return fmt.Errorf("invalid --format: %w", err)
			}
			level := log.InfoLevel
			if viper.GetBool("verbose") {
				level = log.DebugLevel
			}
			logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
				Level:  level,
				Prefix: "sketchplot",
			})
			sketch.SetLogger(slog.New(logger))
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.Float64("width", 400, "Width of the drawing surface")
	flags.Float64("height", 300, "Height of the drawing surface")
	flags.Float64("left", -1, "Left edge of the horizontal window")
	flags.Float64("right", 1, "Right edge of the horizontal window")
	flags.String("format", "json", "Output format. Accepts 'json', 'yaml' or 'toml'")
	flags.BoolP("verbose", "v", false, "Log debug messages")
	for _, key := range []string{"width", "height", "left", "right", "format", "verbose"} {
		viper.BindPFlag(key, flags.Lookup(key))
	}

	cmd.AddCommand(newPathCmd())
	cmd.AddCommand(newMeanCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newSampleCmd())
	cmd.AddCommand(newSimulateCmd())
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// surface returns the configured drawing size.
func surface() (width, height float64) {
	return viper.GetFloat64("width"), viper.GetFloat64("height")
}

// position returns the configured horizontal window.
func position() sketch.Interval {
	return sketch.Interval{Min: viper.GetFloat64("left"), Max: viper.GetFloat64("right")}
}

// view returns the configured horizontal window combined with amplitude.
func view(amplitude sketch.Interval) sketch.Bounds {
	return sketch.Bounds{Position: position(), Amplitude: amplitude}
}
