package sketch

import (
	"encoding/json"
	"errors"
	"strconv"
	"testing"
)

func TestBoundsFlatRoundTrip(t *testing.T) {
	h, v := FlatBounds{Left: -2, Right: 3}, FlatScale{Top: 10, Bottom: -1}
	b := NewBounds(h, v)
	if b.Left() != -2 || b.Right() != 3 || b.Top() != 10 || b.Bottom() != -1 {
		t.Fatalf("NewBounds = %+v", b)
	}
	if b.Position != (Interval{-2, 3}) || b.Amplitude != (Interval{-1, 10}) {
		t.Errorf("nested form = %+v", b)
	}
	gh, gv := b.Flat()
	if gh != h || gv != v {
		t.Errorf("Flat() = %+v %+v, want %+v %+v", gh, gv, h, v)
	}
}

var boundsJSONTests = []struct {
	in      string
	want    Bounds
	wantErr bool
}{
	{`{"position":{"min":0,"max":100},"amplitude":{"min":-1,"max":1}}`,
		Bounds{Interval{0, 100}, Interval{-1, 1}}, false},
	{`{"left":0,"right":100,"top":1,"bottom":-1}`,
		Bounds{Interval{0, 100}, Interval{-1, 1}}, false},
	{`{"left":0,"right":100}`,
		Bounds{Interval{0, 100}, Interval{nan, nan}}, false},
	{`{"position":{"min":0,"max":1},"top":1}`, Bounds{}, true},
	{`[1,2]`, Bounds{}, true},
}

func TestBoundsUnmarshalJSON(t *testing.T) {
	for i, tc := range boundsJSONTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			var got Bounds
			err := json.Unmarshal([]byte(tc.in), &got)
			if tc.wantErr {
				if err == nil {
					t.Errorf("Unmarshal(%s) = %+v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s): %v", tc.in, err)
			}
			if !got.Position.Equal(tc.want.Position) || !got.Amplitude.Equal(tc.want.Amplitude) {
				t.Errorf("Unmarshal(%s) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestBoundsValidate(t *testing.T) {
	if err := unitBounds.Validate(); err != nil {
		t.Errorf("Validate(%+v) = %v", unitBounds, err)
	}
	bad := Bounds{Interval{0, 1}, Interval{nan, 1}}
	if err := bad.Validate(); !errors.Is(err, ErrDegenerateBounds) {
		t.Errorf("Validate(%+v) = %v, want ErrDegenerateBounds", bad, err)
	}
}

func TestBoundsUnmap(t *testing.T) {
	for _, tc := range endpointTests {
		x, y := unitBounds.Unmap(200, 50, tc.sx, tc.sy)
		if !equal64(x, tc.p.X) || !equal64(y, tc.p.Y) {
			t.Errorf("Unmap(%g,%g) = (%g,%g), want %v", tc.sx, tc.sy, x, y, tc.p)
		}
	}
}
