package geom

import (
	"github.com/vdobler/sketch"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Panel

// A Panel is the area a set of functions is drawn into.
// View.Position is shared by all functions; View.Amplitude is used for
// the grid only as every function brings its own vertical scale.
type Panel struct {
	Canvas draw.Canvas
	View   sketch.Bounds
	Style  Style
}

// NewPanel returns a panel drawing into c with the default style.
func NewPanel(c draw.Canvas, view sketch.Bounds) *Panel {
	return &Panel{Canvas: c, View: view, Style: DefaultStyle()}
}

// MapXY maps the data coordinate (x,y) to a canvas point using the
// horizontal window of p and the given vertical window. The canvas y axis
// grows upward, so amplitude.Min lands on the lower canvas edge.
func (p *Panel) MapXY(amplitude sketch.Interval, x, y float64) vg.Point {
	cx := sketch.Interval{Min: float64(p.Canvas.Min.X), Max: float64(p.Canvas.Max.X)}
	cy := sketch.Interval{Min: float64(p.Canvas.Min.Y), Max: float64(p.Canvas.Max.Y)}
	xu := sketch.LinearTrans.Trans(p.View.Position, cx, x)
	yu := sketch.LinearTrans.Trans(amplitude, cy, y)
	return vg.Point{X: vg.Length(xu), Y: vg.Length(yu)}
}

// InRangeX reports whether x lies in the horizontal window.
func (p *Panel) InRangeX(x float64) bool {
	return p.View.Position.Contains(x)
}
