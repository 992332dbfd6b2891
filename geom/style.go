package geom

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a Panel is drawn.
type Style struct {
	Background color.Color

	Grid struct {
		Major  draw.LineStyle
		Minor  draw.LineStyle
		Ticker plot.Ticker
	}

	// Curve is the line style of function curves. A nil Color selects
	// a color from plotutil's palette by function index.
	Curve draw.LineStyle

	// Mean is the line style of the weighted mean marker. A nil Color
	// uses the color of the curve.
	Mean draw.LineStyle
}

// DefaultStyle mimics the grey panel look of ggplot2.
func DefaultStyle() Style {
	s := Style{}
	s.Background = color.Gray16{0xeeee}

	s.Grid.Major.Color = color.White
	s.Grid.Major.Width = vg.Length(1)
	s.Grid.Minor.Color = color.White
	s.Grid.Minor.Width = vg.Length(0.5)
	s.Grid.Ticker = plot.DefaultTicks{}

	s.Curve.Width = vg.Length(1.5)

	s.Mean.Width = vg.Length(1)
	s.Mean.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	return s
}
