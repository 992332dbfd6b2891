// Coordinate transformations
//
// A transformation maps one interval onto another. Sample mapping and
// canvas mapping both use LinearTrans.
package sketch

// A Transformation bundles two functions Trans and Inverse together.
// Trans maps from onto to, Inverse maps back.
type Transformation struct {
	Name    string
	Trans   func(from, to Interval, x float64) float64
	Inverse func(from, to Interval, y float64) float64
}

// LinearTrans implements an affine mapping of from to to: from.Min is
// mapped to to.Min and from.Max to to.Max. A degenerate from interval
// yields non-finite results.
var LinearTrans = Transformation{
	Name: "Linear",
	Trans: func(from, to Interval, x float64) float64 {
		return to.Min + (x-from.Min)*(to.Max-to.Min)/(from.Max-from.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		return from.Min + (y-to.Min)*(from.Max-from.Min)/(to.Max-to.Min)
	},
}
