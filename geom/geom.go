// Package geom draws functions onto gonum/plot canvases.
//
// A Panel maps data coordinates to canvas coordinates. Geoms draw
// themselves into a Panel: Background, Grid, Curve and MeanMarker.
// Render combines them for a set of functions.
package geom

import (
	"fmt"
	"image/color"

	"github.com/vdobler/sketch"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Geom is something that can be drawn into a Panel.
type Geom interface {
	Draw(p *Panel)
}

// ----------------------------------------------------------------------------
// Background

// Background fills the panel with the style's background color.
type Background struct{}

func (Background) Draw(p *Panel) {
	if p.Style.Background == nil {
		return
	}
	p.Canvas.SetColor(p.Style.Background)
	p.Canvas.Fill(p.Canvas.Rectangle.Path())
}

// ----------------------------------------------------------------------------
// Grid

// Grid draws vertical grid lines at the ticks of the horizontal window and
// horizontal ones at the ticks of the panel's amplitude window.
type Grid struct{}

func (Grid) Draw(p *Panel) {
	ticker := p.Style.Grid.Ticker
	if ticker == nil || p.Style.Grid.Major.Color == nil {
		return
	}
	pick := func(minor bool) draw.LineStyle {
		if minor {
			return p.Style.Grid.Minor
		}
		return p.Style.Grid.Major
	}

	c := p.Canvas
	amp := p.View.Amplitude
	xmin, xmax := ordered(p.View.Position)
	for _, tick := range ticker.Ticks(xmin, xmax) {
		r := p.MapXY(amp, tick.Value, 0)
		c.StrokeLine2(pick(tick.IsMinor()), r.X, c.Min.Y, r.X, c.Max.Y)
	}
	ymin, ymax := ordered(amp)
	for _, tick := range ticker.Ticks(ymin, ymax) {
		r := p.MapXY(amp, 0, tick.Value)
		c.StrokeLine2(pick(tick.IsMinor()), c.Min.X, r.Y, c.Max.X, r.Y)
	}
}

func ordered(i sketch.Interval) (float64, float64) {
	if i.Min > i.Max {
		return i.Max, i.Min
	}
	return i.Min, i.Max
}

// ----------------------------------------------------------------------------
// Curve

// Curve connects the samples of a function in data order by straight line
// segments, clipped to the panel. The function's Scale is the vertical
// window.
type Curve struct {
	Function *sketch.Function

	// Default overrides the panel's curve style if its Color is set.
	Default draw.LineStyle
}

// Points returns the canvas points of the curve, in data order.
func (cv Curve) Points(p *Panel) []vg.Point {
	dp := cv.Function.Datapoints
	if dp == nil {
		return nil
	}
	pts := make([]vg.Point, dp.Len())
	for i := range pts {
		x, y := dp.XY(i)
		pts[i] = p.MapXY(cv.Function.Scale, x, y)
	}
	return pts
}

func (cv Curve) style(p *Panel) draw.LineStyle {
	if cv.Default.Color != nil {
		return cv.Default
	}
	return p.Style.Curve
}

func (cv Curve) Draw(p *Panel) {
	pts := cv.Points(p)
	if len(pts) < 2 {
		return
	}
	sty := cv.style(p)
	if sty.Color == nil {
		sty.Color = color.Black
	}
	p.Canvas.StrokeLines(sty, p.Canvas.ClipLinesXY(pts)...)
}

// ----------------------------------------------------------------------------
// MeanMarker

// MeanMarker draws a vertical rule at the weighted mean of a function if
// the function's ShowMean flag is set.
type MeanMarker struct {
	Function *sketch.Function
	Default  draw.LineStyle
}

// Position returns the canvas x position of the marker. It reports false
// if no marker is to be drawn: ShowMean is unset, the mean is undefined or
// it lies outside the horizontal window.
func (m MeanMarker) Position(p *Panel) (vg.Length, bool) {
	if !m.Function.ShowMean {
		return 0, false
	}
	mean, err := m.Function.Mean()
	if err != nil {
		sketch.Logger().Debug("no mean marker", "function", m.Function.Name, "err", err)
		return 0, false
	}
	if !p.InRangeX(mean) {
		return 0, false
	}
	return p.MapXY(m.Function.Scale, mean, 0).X, true
}

func (m MeanMarker) Draw(p *Panel) {
	x, ok := m.Position(p)
	if !ok {
		return
	}
	sty := p.Style.Mean
	if m.Default.Color != nil {
		sty = m.Default
	}
	if sty.Color == nil {
		sty.Color = color.Black
	}
	p.Canvas.StrokeLine2(sty, x, p.Canvas.Min.Y, x, p.Canvas.Max.Y)
}

// ----------------------------------------------------------------------------
// Render

// Geoms returns the geoms drawing the visible functions fns on a
// background with grid lines. Curve colors are taken from plotutil's
// default palette unless the style sets one.
func Geoms(style Style, fns ...*sketch.Function) []Geom {
	geoms := []Geom{Background{}, Grid{}}
	for i, f := range fns {
		if f == nil || !f.Visible || !f.HasDatapoints() {
			continue
		}
		line := style.Curve
		if line.Color == nil {
			line.Color = plotutil.Color(i)
		}
		mean := style.Mean
		if mean.Color == nil {
			mean.Color = line.Color
		}
		geoms = append(geoms, Curve{Function: f, Default: line}, MeanMarker{Function: f, Default: mean})
	}
	return geoms
}

// Render draws the visible functions fns into c showing the window view.
func Render(c draw.Canvas, view sketch.Bounds, style Style, fns ...*sketch.Function) error {
	if err := view.Validate(); err != nil {
		return fmt.Errorf("geom: %w", err)
	}
	panel := &Panel{Canvas: c, View: view, Style: style}
	for _, f := range fns {
		if f != nil && f.Visible && f.Scale.Degenerate() {
			return fmt.Errorf("geom: function %q: %w", f.Name, sketch.ErrDegenerateBounds)
		}
	}
	for _, g := range Geoms(style, fns...) {
		g.Draw(panel)
	}
	sketch.Logger().Debug("rendered", "functions", len(fns), "view", view)
	return nil
}
