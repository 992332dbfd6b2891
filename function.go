package sketch

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ----------------------------------------------------------------------------
// FunctionMode

// FunctionMode tells where the samples of a function come from.
type FunctionMode int

const (
	Drawing FunctionMode = iota // samples come from a freehand stroke
	Formula                     // samples come from evaluating Function.Formula
)

func (m FunctionMode) String() string {
	switch m {
	case Drawing:
		return "drawing"
	case Formula:
		return "formula"
	}
	return fmt.Sprintf("FunctionMode(%d)", int(m))
}

// ParseFunctionMode parses the names returned by String, ignoring case.
func ParseFunctionMode(s string) (FunctionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "drawing":
		return Drawing, nil
	case "formula":
		return Formula, nil
	}
	return 0, fmt.Errorf("sketch: unknown function mode %q", s)
}

// UnmarshalJSON accepts the numeric form Function is encoded with as well
// as the mode names.
func (m *FunctionMode) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if n != int(Drawing) && n != int(Formula) {
			return fmt.Errorf("sketch: unknown function mode %d", n)
		}
		*m = FunctionMode(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("sketch: function mode must be a number or a name: %w", err)
	}
	mode, err := ParseFunctionMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ----------------------------------------------------------------------------
// Function

// A Function is a named plottable curve, drawn by hand or computed from a
// formula.
type Function struct {
	Name string       `json:"name"`
	Mode FunctionMode `json:"mode"`

	// Formula is the source text of the formula. It is not used in
	// Drawing mode.
	Formula string `json:"formula"`

	// Sketching is set while the user is drawing.
	Sketching bool `json:"sketching"`

	// FormulaError is the last message of the formula evaluator,
	// empty if there was none.
	FormulaError string `json:"formula_error"`

	// Datapoints is nil until samples exist.
	Datapoints *Datapoints `json:"datapoints"`

	ShowMean bool `json:"show_mean"`

	// Scale is the vertical window of this function.
	Scale Interval `json:"scale"`

	Visible  bool `json:"visible"`
	ReadOnly bool `json:"readonly"`

	// ComplexPhase is the optional phase parameter of complex valued
	// functions, e.g. the mean momentum of a wave function.
	ComplexPhase *float64 `json:"complex_phase"`

	// N is an optional integer parameter, e.g. the index of an eigenvector.
	N *int `json:"n"`
}

// UnmarshalJSON decodes f. The scale may also be given in the flat form
// {"top": t, "bottom": b}; fields missing from data keep their value.
func (f *Function) UnmarshalJSON(data []byte) error {
	type plain Function
	aux := struct {
		*plain
		Scale json.RawMessage `json:"scale"`
	}{plain: (*plain)(f)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Scale) == 0 || string(aux.Scale) == "null" {
		return nil
	}
	scale, err := decodeScale(aux.Scale, f.Scale)
	if err != nil {
		return err
	}
	f.Scale = scale
	return nil
}

// NewFunction returns a visible function without samples and with
// DefaultScale.
func NewFunction(name string, mode FunctionMode) *Function {
	return &Function{
		Name:    name,
		Mode:    mode,
		Scale:   DefaultScale,
		Visible: true,
	}
}

// SetDatapoints replaces the samples of f by a copy of dp. A nil dp
// removes them.
func (f *Function) SetDatapoints(dp *Datapoints) {
	if dp == nil {
		f.ClearDatapoints()
		return
	}
	f.Datapoints = dp.Clone()
	Logger().Debug("datapoints replaced", "function", f.Name, "mode", f.Mode, "samples", dp.Len())
}

// ClearDatapoints removes the samples of f.
func (f *Function) ClearDatapoints() {
	f.Datapoints = nil
}

// HasDatapoints reports whether f has a sample collection, possibly empty.
func (f *Function) HasDatapoints() bool { return f.Datapoints != nil }

// Bounds returns the window for f with the horizontal window position and
// f's own vertical scale.
func (f *Function) Bounds(position Interval) Bounds {
	return Bounds{Position: position, Amplitude: f.Scale}
}

// Path renders the samples of f, see Datapoints.Path.
func (f *Function) Path(width, height float64, position Interval) (string, error) {
	if f.Datapoints == nil {
		return "", fmt.Errorf("%w: %q", ErrNoDatapoints, f.Name)
	}
	return f.Datapoints.Path(width, height, f.Bounds(position))
}

// Mean returns the weighted mean of the samples of f, see Datapoints.Mean.
func (f *Function) Mean() (float64, error) {
	if f.Datapoints == nil {
		return 0, fmt.Errorf("%w: %q", ErrNoDatapoints, f.Name)
	}
	return f.Datapoints.Mean()
}

// Autoscale sets the vertical scale of f to cover its samples, see AutoScale.
func (f *Function) Autoscale(expand float64) {
	if f.Datapoints == nil {
		f.Scale = DefaultScale
		return
	}
	f.Scale = AutoScale(*f.Datapoints, expand)
}

func (f *Function) String() string {
	if f == nil {
		return "<nil>"
	}
	n := -1
	if f.Datapoints != nil {
		n = f.Datapoints.Len()
	}
	return fmt.Sprintf("%q %s samples=%d scale=%v", f.Name, f.Mode, n, f.Scale)
}
