package sketch

import (
	"math"

	"gonum.org/v1/plot/plotter"
)

// Datapoint is a single sample.
type Datapoint struct {
	X float64 `json:"x" yaml:"x" toml:"x"`
	Y float64 `json:"y" yaml:"y" toml:"y"`
}

// Datapoints is the ordered sample collection of a function. The order of
// Values is the drawing order.
type Datapoints struct {
	Values []Datapoint `json:"values" yaml:"values" toml:"values"`
}

// NewDatapoints returns a collection holding a copy of values.
func NewDatapoints(values []Datapoint) *Datapoints {
	return &Datapoints{Values: append([]Datapoint(nil), values...)}
}

// Len implements plotter.XYer.
func (d Datapoints) Len() int { return len(d.Values) }

// XY implements plotter.XYer.
func (d Datapoints) XY(i int) (x, y float64) { return d.Values[i].X, d.Values[i].Y }

// Clone returns a deep copy of d.
func (d Datapoints) Clone() *Datapoints { return NewDatapoints(d.Values) }

// MapXY maps every sample onto a width x height surface using b, keeping
// the sample order. Unlike Path it does not check its input, so degenerate
// bounds produce infinite or NaN coordinates.
func (d Datapoints) MapXY(width, height float64, b Bounds) plotter.XYs {
	xys := make(plotter.XYs, len(d.Values))
	for i, p := range d.Values {
		xys[i].X, xys[i].Y = b.Map(width, height, p.X, p.Y)
	}
	return xys
}

// Mean returns the y-weighted mean of the x positions:
//     Σ x_i * y_i / Σ y_j
// Samples with negative y reduce the total and may move the result outside
// the covered x range. If the y values sum to zero, which includes the empty
// collection, NaN and ErrZeroTotal are returned.
func (d Datapoints) Mean() (float64, error) {
	total := 0.0
	for _, p := range d.Values {
		total += p.Y
	}
	if total == 0 {
		Logger().Debug("weighted mean undefined: zero total", "samples", len(d.Values))
		return math.NaN(), ErrZeroTotal
	}

	mean := 0.0
	for _, p := range d.Values {
		mean += p.X * p.Y / total
	}
	return mean, nil
}
