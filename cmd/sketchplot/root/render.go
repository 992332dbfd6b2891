package root

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	svg "github.com/ajstarks/svgo"
	"github.com/spf13/cobra"
	"github.com/vdobler/sketch"
	"github.com/vdobler/sketch/geom"
	"github.com/vdobler/sketch/internal/document"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

func newRenderCmd() *cobra.Command {
	var output string
	var raw, stack bool

	cmd := &cobra.Command{
		Use:   "render <file>...",
		Short: "Draw functions into an SVG or PNG image",
		Long: heredoc.Doc(`
			Draw the visible functions on a panel with grid lines. Functions
			with show_mean set get a marker at their weighted mean. The image
			type follows the extension of --output.

			With --raw the SVG contains nothing but one path element per
			function, built from the same path strings the path command
			prints.

			With --stack every function gets its own panel; panels are
			stacked top to bottom.
		`),
		Example: heredoc.Doc(`
			$ sketchplot render potential.yaml wave.yaml -o experiment.png
			$ sketchplot render wave.json --raw -o wave.svg
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var fns []*sketch.Function
			for _, file := range args {
				fn, err := document.Load(file)
				if err != nil {
					return err
				}
				fns = append(fns, fn)
			}

			var buf bytes.Buffer
			var err error
			switch ext := strings.ToLower(filepath.Ext(output)); {
			case raw:
				err = renderRaw(&buf, fns)
			case ext == ".png":
				err = renderPNG(&buf, fns, stack)
			case ext == ".svg" || output == "":
				err = renderSVG(&buf, fns, stack)
			default:
				return fmt.Errorf("unsupported image type %q", ext)
			}
			if err != nil {
				return err
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			sketch.Logger().Info("image written", "path", output, "functions", len(fns))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Image file, .svg or .png (default SVG on stdout)")
	cmd.Flags().BoolVar(&raw, "raw", false, "Write a plain SVG of path elements")
	cmd.Flags().BoolVar(&stack, "stack", false, "Draw each function in its own panel")

	return cmd
}

// renderView is the configured window with the scale of the first visible
// function as amplitude.
func renderView(fns []*sketch.Function) sketch.Bounds {
	for _, fn := range fns {
		if fn.Visible {
			return view(fn.Scale)
		}
	}
	return view(sketch.DefaultScale)
}

func drawFunctions(c vg.CanvasSizer, fns []*sketch.Function, stack bool) error {
	if stack {
		return geom.Stack(draw.New(c), position(), vg.Points(8), geom.DefaultStyle(), fns...)
	}
	return geom.Render(draw.New(c), renderView(fns), geom.DefaultStyle(), fns...)
}

func renderSVG(w io.Writer, fns []*sketch.Function, stack bool) error {
	width, height := surface()
	c := vgsvg.New(vg.Length(width), vg.Length(height))
	if err := drawFunctions(c, fns, stack); err != nil {
		return err
	}
	_, err := c.WriteTo(w)
	return err
}

func renderPNG(w io.Writer, fns []*sketch.Function, stack bool) error {
	width, height := surface()
	c := vgimg.New(vg.Length(width), vg.Length(height))
	if err := drawFunctions(c, fns, stack); err != nil {
		return err
	}
	_, err := vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}

// renderRaw writes every visible function with samples as an SVG path.
func renderRaw(w io.Writer, fns []*sketch.Function) error {
	width, height := surface()
	paths := make([]string, 0, len(fns))
	for _, fn := range fns {
		if !fn.Visible || !fn.HasDatapoints() {
			continue
		}
		p, err := fn.Path(width, height, position())
		if err != nil {
			return fmt.Errorf("function %q: %w", fn.Name, err)
		}
		paths = append(paths, p)
	}

	s := svg.New(w)
	// Round the viewport up so that no coordinate falls outside of it.
	s.Start(int(math.Ceil(width)), int(math.Ceil(height)))
	for i, p := range paths {
		s.Path(p, "fill:none;stroke:"+rgb(plotutil.Color(i)))
	}
	s.End()
	return nil
}

func rgb(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("rgb(%d,%d,%d)", r>>8, g>>8, b>>8)
}
