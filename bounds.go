package sketch

import (
	"encoding/json"
	"fmt"
)

// ----------------------------------------------------------------------------
// Bounds

// Bounds is the data window mapped onto a drawing surface.
// Position is the horizontal window (Min is the left edge), Amplitude the
// vertical one (Min is the bottom edge, Max the top edge).
type Bounds struct {
	Position  Interval `json:"position" yaml:"position" toml:"position"`
	Amplitude Interval `json:"amplitude" yaml:"amplitude" toml:"amplitude"`
}

func (b Bounds) Left() float64   { return b.Position.Min }
func (b Bounds) Right() float64  { return b.Position.Max }
func (b Bounds) Top() float64    { return b.Amplitude.Max }
func (b Bounds) Bottom() float64 { return b.Amplitude.Min }

// Validate returns ErrDegenerateBounds if either window cannot be mapped.
func (b Bounds) Validate() error {
	if b.Position.Degenerate() {
		return fmt.Errorf("%w: position %v", ErrDegenerateBounds, b.Position)
	}
	if b.Amplitude.Degenerate() {
		return fmt.Errorf("%w: amplitude %v", ErrDegenerateBounds, b.Amplitude)
	}
	return nil
}

// screen returns the source and target intervals of the horizontal and
// vertical mapping onto a width x height surface with y growing downward.
func (b Bounds) screen(width, height float64) (xfrom, xto, yfrom, yto Interval) {
	xfrom = Interval{b.Left(), b.Right()}
	xto = Interval{0, width}
	yfrom = Interval{b.Top(), b.Bottom()}
	yto = Interval{0, height}
	return xfrom, xto, yfrom, yto
}

// Map maps the data point (x,y) to screen coordinates on a width x height
// surface. No checks are done: degenerate bounds give non-finite results.
func (b Bounds) Map(width, height, x, y float64) (sx, sy float64) {
	xfrom, xto, yfrom, yto := b.screen(width, height)
	return LinearTrans.Trans(xfrom, xto, x), LinearTrans.Trans(yfrom, yto, y)
}

// Unmap is the inverse of Map: it turns a screen position, e.g. from a
// pen stroke, back into data coordinates.
func (b Bounds) Unmap(width, height, sx, sy float64) (x, y float64) {
	xfrom, xto, yfrom, yto := b.screen(width, height)
	return LinearTrans.Inverse(xfrom, xto, sx), LinearTrans.Inverse(yfrom, yto, sy)
}

// ----------------------------------------------------------------------------
// Flat schema

// FlatBounds is the horizontal window in the older flat schema.
type FlatBounds struct {
	Left  float64 `json:"left" yaml:"left" toml:"left"`
	Right float64 `json:"right" yaml:"right" toml:"right"`
}

// FlatScale is the vertical window in the older flat schema.
type FlatScale struct {
	Top    float64 `json:"top" yaml:"top" toml:"top"`
	Bottom float64 `json:"bottom" yaml:"bottom" toml:"bottom"`
}

// Interval returns s as an amplitude interval.
func (s FlatScale) Interval() Interval { return Interval{Min: s.Bottom, Max: s.Top} }

// NewBounds converts the flat schema into Bounds.
func NewBounds(h FlatBounds, v FlatScale) Bounds {
	return Bounds{
		Position:  Interval{Min: h.Left, Max: h.Right},
		Amplitude: v.Interval(),
	}
}

// Flat converts b into the flat schema.
func (b Bounds) Flat() (FlatBounds, FlatScale) {
	return FlatBounds{Left: b.Left(), Right: b.Right()},
		FlatScale{Top: b.Top(), Bottom: b.Bottom()}
}

// UnmarshalJSON accepts the nested schema
//     {"position": {"min": l, "max": r}, "amplitude": {"min": b, "max": t}}
// as well as the flat one
//     {"left": l, "right": r, "top": t, "bottom": b}
// Mixing both is an error.
func (b *Bounds) UnmarshalJSON(data []byte) error {
	var raw struct {
		Position  *Interval `json:"position"`
		Amplitude *Interval `json:"amplitude"`
		Left      *float64  `json:"left"`
		Right     *float64  `json:"right"`
		Top       *float64  `json:"top"`
		Bottom    *float64  `json:"bottom"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	nested := raw.Position != nil || raw.Amplitude != nil
	flat := raw.Left != nil || raw.Right != nil || raw.Top != nil || raw.Bottom != nil
	if nested && flat {
		return fmt.Errorf("sketch: bounds mix nested and flat fields")
	}

	*b = Bounds{Position: unsetInterval(), Amplitude: unsetInterval()}
	if nested {
		if raw.Position != nil {
			b.Position = *raw.Position
		}
		if raw.Amplitude != nil {
			b.Amplitude = *raw.Amplitude
		}
		return nil
	}

	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&b.Position.Min, raw.Left)
	set(&b.Position.Max, raw.Right)
	set(&b.Amplitude.Max, raw.Top)
	set(&b.Amplitude.Min, raw.Bottom)
	return nil
}

// decodeScale decodes a vertical window given either as {"min": b, "max": t}
// or in the flat form {"top": t, "bottom": b}. Edges missing from data keep
// their value in cur. Mixing both forms is an error.
func decodeScale(data []byte, cur Interval) (Interval, error) {
	var raw struct {
		Min    *float64 `json:"min"`
		Max    *float64 `json:"max"`
		Top    *float64 `json:"top"`
		Bottom *float64 `json:"bottom"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return cur, err
	}
	nested := raw.Min != nil || raw.Max != nil
	flat := raw.Top != nil || raw.Bottom != nil
	if nested && flat {
		return cur, fmt.Errorf("sketch: scale mixes min/max and top/bottom")
	}
	if flat {
		raw.Min, raw.Max = raw.Bottom, raw.Top
	}
	if raw.Min != nil {
		cur.Min = *raw.Min
	}
	if raw.Max != nil {
		cur.Max = *raw.Max
	}
	return cur, nil
}
