package sketch

import "errors"

var (
	// ErrDegenerateBounds is returned when a window has zero width or
	// height or an unset edge.
	ErrDegenerateBounds = errors.New("sketch: degenerate bounds")

	// ErrInvalidSize is returned for a drawing surface without a positive,
	// finite width and height.
	ErrInvalidSize = errors.New("sketch: invalid surface size")

	// ErrZeroTotal is returned by Mean if the y values sum to zero.
	ErrZeroTotal = errors.New("sketch: y values sum to zero")

	// ErrNoDatapoints is returned for functions without samples.
	ErrNoDatapoints = errors.New("sketch: function has no datapoints")
)
