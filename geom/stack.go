package geom

import (
	"fmt"

	"github.com/vdobler/sketch"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Stack

// StackLayout splits r into n rows of equal height separated by pad.
// Rows are returned top to bottom. If the rows would have no height
// StackLayout returns nil.
func StackLayout(r vg.Rectangle, n int, pad vg.Length) []vg.Rectangle {
	if n <= 0 {
		return nil
	}
	height := (r.Max.Y - r.Min.Y - pad*vg.Length(n-1)) / vg.Length(n)
	if height <= 0 {
		return nil
	}

	rows := make([]vg.Rectangle, n)
	// y0 is the upper edge of the current row.
	y0 := r.Max.Y
	for i := range rows {
		rows[i] = vg.Rectangle{
			Min: vg.Point{X: r.Min.X, Y: y0 - height},
			Max: vg.Point{X: r.Max.X, Y: y0},
		}
		y0 -= height + pad
	}
	return rows
}

// Stack draws every visible function of fns into its own panel. The panels
// are stacked top to bottom in the order of fns, separated by pad, and all
// show the horizontal window position. The vertical window of a panel is
// the scale of its function.
func Stack(c draw.Canvas, position sketch.Interval, pad vg.Length, style Style, fns ...*sketch.Function) error {
	var visible []*sketch.Function
	for _, f := range fns {
		if f != nil && f.Visible {
			visible = append(visible, f)
		}
	}
	if len(visible) == 0 {
		return Render(c, sketch.Bounds{Position: position, Amplitude: sketch.DefaultScale}, style)
	}

	rows := StackLayout(c.Rectangle, len(visible), pad)
	if rows == nil {
		return fmt.Errorf("geom: canvas too small for %d panels", len(visible))
	}
	for i, f := range visible {
		pc := c
		pc.Rectangle = rows[i]
		sty := style
		if sty.Curve.Color == nil {
			sty.Curve.Color = plotutil.Color(i)
		}
		if err := Render(pc, f.Bounds(position), sty, f); err != nil {
			return err
		}
	}
	sketch.Logger().Debug("stacked", "panels", len(visible))
	return nil
}
