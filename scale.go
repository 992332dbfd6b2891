package sketch

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/plotter"
)

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set. Min need not be smaller than Max: a vertical screen window runs
// from top to bottom.
type Interval struct {
	Min float64 `json:"min" yaml:"min" toml:"min"`
	Max float64 `json:"max" yaml:"max" toml:"max"`
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x. NaN values are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j have the same edges. Unset edges compare
// equal to unset edges.
func (i Interval) Equal(j Interval) bool {
	same := func(a, b float64) bool {
		if math.IsNaN(a) {
			return math.IsNaN(b)
		}
		return a == b
	}
	return same(i.Min, j.Min) && same(i.Max, j.Max)
}

// Len returns Max-Min, which is negative for reversed intervals.
func (i Interval) Len() float64 { return i.Max - i.Min }

// Degenerate reports whether i cannot be used as a mapping window: an edge
// is unset or infinite or both edges coincide.
func (i Interval) Degenerate() bool {
	if math.IsNaN(i.Min) || math.IsNaN(i.Max) || math.IsInf(i.Min, 0) || math.IsInf(i.Max, 0) {
		return true
	}
	return i.Min == i.Max
}

// Contains reports whether x lies in i regardless of its orientation.
func (i Interval) Contains(x float64) bool {
	lo, hi := math.Min(i.Min, i.Max), math.Max(i.Min, i.Max)
	return x >= lo && x <= hi
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g:%g]", i.Min, i.Max)
}

// ----------------------------------------------------------------------------
// Autoscaling

// DefaultScale is the vertical window of a new function.
var DefaultScale = Interval{Min: -1, Max: 1}

// AutoScale returns a vertical window covering the y values of dp, expanded
// on both sides by expand times the data range. Without data DefaultScale
// is returned; a single y value v yields [v-1, v+1].
func AutoScale(dp Datapoints, expand float64) Interval {
	if dp.Len() == 0 {
		return DefaultScale
	}

	data := unsetInterval()
	for _, p := range dp.Values {
		data.Update(p.Y)
	}
	if math.IsNaN(data.Min) {
		return DefaultScale
	}
	if data.Min == data.Max {
		return Interval{data.Min - 1, data.Max + 1}
	}

	ext := expand * data.Len()
	return Interval{data.Min - ext, data.Max + ext}
}

// DataRange returns the horizontal and vertical range covered by dp.
// The intervals are unset (NaN) if dp is empty.
func DataRange(dp Datapoints) (x, y Interval) {
	if dp.Len() == 0 {
		return unsetInterval(), unsetInterval()
	}
	xmin, xmax, ymin, ymax := plotter.XYRange(dp)
	return Interval{xmin, xmax}, Interval{ymin, ymax}
}
