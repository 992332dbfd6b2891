package root

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/vdobler/sketch"
	"github.com/vdobler/sketch/internal/document"
)

func newPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path <file>",
		Short: "Print the path string of a function",
		Long: heredoc.Doc(`
			Print the samples of a function as a path string "M x0 y0 x1 y1 ..."
			in screen coordinates of a width x height surface. The horizontal
			window is given by --left and --right, the vertical one is the
			scale of the function.
		`),
		Example: heredoc.Doc(`
			$ sketchplot path wave.json --width 100 --height 50 --left 0 --right 10
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := document.Load(args[0])
			if err != nil {
				return err
			}
			width, height := surface()
			path, err := fn.Path(width, height, position())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	return cmd
}

func newMeanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mean <file>...",
		Short: "Print the weighted mean of functions",
		Long: heredoc.Doc(`
			Print the weighted mean Σ x·y / Σ y of the samples of every
			function, keyed by file. Each entry holds the function name,
			whether the mean is defined and the mean itself. A function whose
			samples sum to zero has no mean; its entry carries the reason
			in error instead.
		`),
		Example: heredoc.Doc(`
			$ sketchplot mean potential.yaml wave.yaml --format yaml
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := map[string]any{}
			for _, file := range args {
				fn, err := document.Load(file)
				if err != nil {
					return err
				}
				entry := map[string]any{"name": fn.Name}
				mean, err := fn.Mean()
				if err != nil {
					entry["defined"] = false
					entry["mean"] = nil
					entry["error"] = err.Error()
					sketch.Logger().Warn("no mean", "file", file, "function", fn.Name, "error", err)
				} else {
					entry["defined"] = true
					entry["mean"] = mean
				}
				result[file] = entry
			}
			return handleOutput(cmd, result)
		},
	}
	return cmd
}
