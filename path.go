package sketch

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// moveTo starts every path.
const moveTo = "M "

// Path returns SVG path data for the polyline through all samples of d on
// a width x height surface showing b. The result is "M " followed by the
// space separated screen coordinates "x y" of every sample in order; an
// empty collection yields just "M ".
//
// Path fails with ErrInvalidSize if width or height is not positive and
// finite and with ErrDegenerateBounds if b cannot be mapped.
func (d Datapoints) Path(width, height float64, b Bounds) (string, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return "", fmt.Errorf("%w: %gx%g", ErrInvalidSize, width, height)
	}
	if err := b.Validate(); err != nil {
		Logger().Debug("path rejected", "err", err)
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(moveTo) + 20*len(d.Values))
	sb.WriteString(moveTo)
	for i, xy := range d.MapXY(width, height, b) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(formatCoord(xy.X))
		sb.WriteByte(' ')
		sb.WriteString(formatCoord(xy.Y))
	}
	return sb.String(), nil
}

// formatCoord formats v with the fewest digits that still parse back to v.
// Plain decimal notation is used unless v is very small or very large.
func formatCoord(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0" // also for -0
	}
	if a := math.Abs(v); a < 1e-6 || a >= 1e21 {
		s := strconv.FormatFloat(v, 'g', -1, 64)
		// Exponents are written without zero padding: 1e-7, not 1e-07.
		s = strings.Replace(s, "e-0", "e-", 1)
		return strings.Replace(s, "e+0", "e+", 1)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
