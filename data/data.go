// Package data contains helpers to produce and condition the samples of
// a function.
//
// All generated samples lie on the same grid: resolution points starting at
// start with a spacing of (end-start)/resolution, so end itself is not
// included.
package data

import (
	"errors"
	"fmt"
	"math"

	"github.com/vdobler/sketch"
)

var (
	ErrResolution = errors.New("data: resolution must be positive")
	ErrZeroNorm   = errors.New("data: cannot normalize samples of zero norm")
)

// Grid returns the x positions of resolution samples in [start, end).
func Grid(start, end float64, resolution int) ([]float64, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrResolution, resolution)
	}
	step := (end - start) / float64(resolution)
	xs := make([]float64, resolution)
	for i := range xs {
		xs[i] = start + float64(i)*step
	}
	return xs, nil
}

// Sample evaluates f on the grid.
func Sample(f func(x float64) float64, start, end float64, resolution int) (*sketch.Datapoints, error) {
	xs, err := Grid(start, end, resolution)
	if err != nil {
		return nil, err
	}
	dp := &sketch.Datapoints{Values: make([]sketch.Datapoint, len(xs))}
	for i, x := range xs {
		dp.Values[i] = sketch.Datapoint{X: x, Y: f(x)}
	}
	return dp, nil
}

// FromValues places ys on the grid spanning [start, end).
func FromValues(start, end float64, ys []float64) *sketch.Datapoints {
	dp := &sketch.Datapoints{Values: make([]sketch.Datapoint, len(ys))}
	if len(ys) == 0 {
		return dp
	}
	step := (end - start) / float64(len(ys))
	for i, y := range ys {
		dp.Values[i] = sketch.Datapoint{X: start + float64(i)*step, Y: y}
	}
	return dp
}

// Ys returns the y values of dp.
func Ys(dp sketch.Datapoints) []float64 {
	ys := make([]float64, dp.Len())
	for i, p := range dp.Values {
		ys[i] = p.Y
	}
	return ys
}

// Normalize scales the y values of dp in place so that their squares sum
// to one.
func Normalize(dp *sketch.Datapoints) error {
	sum := 0.0
	for _, p := range dp.Values {
		sum += p.Y * p.Y
	}
	if sum == 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return ErrZeroNorm
	}
	norm := math.Sqrt(sum)
	for i := range dp.Values {
		dp.Values[i].Y /= norm
	}
	return nil
}

// Curves are the built-in sample generators, mostly for the command line
// and tests. Formula evaluation is done elsewhere.
var Curves = map[string]func(x float64) float64{
	"zero":     func(x float64) float64 { return 0 },
	"line":     func(x float64) float64 { return x },
	"parabola": func(x float64) float64 { return x * x },
	"sin":      math.Sin,
	"gauss":    func(x float64) float64 { return math.Exp(-x * x / 2) },
	"well": func(x float64) float64 {
		if math.Abs(x) < 1 {
			return 0
		}
		return 1
	},
}
