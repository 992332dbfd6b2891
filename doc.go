// Package sketch is the data model behind a small plotting tool: functions
// that are either drawn by hand or computed from a formula, the samples
// they own and the mapping of those samples onto a drawing surface.
//
// Functions and Datapoints
//
// A Function carries display settings and an optional Datapoints
// collection. The collection is replaced as a whole whenever the drawing
// or the formula changes; it is never shared between functions.
//
// Bounds
//
// The visible data window is a Bounds value: a horizontal Position
// interval and a vertical Amplitude interval. The older flat form
// {left, right} plus {top, bottom} is still understood, see FlatBounds
// and FlatScale.
//
// Mapping
//
// Datapoints.Path turns samples into SVG path data for a surface of a given
// pixel size. The horizontal window maps left to 0 and right to the width,
// the vertical window maps top to 0 and bottom to the height because screen
// y grows downward. Datapoints.Mean computes the y-weighted centroid of the
// sample x positions.
//
// Both computations report degenerate input through errors (ErrDegenerateBounds,
// ErrZeroTotal) instead of returning non-finite numbers.
package sketch
