package colour

import (
	"errors"
	"math"
	"testing"
)

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		h, s, l float64
	}{
		{
			name: "black",
			r:    0, g: 0, b: 0,
			h: 0, s: 0, l: 0,
		},
		{
			name: "white",
			r:    255, g: 255, b: 255,
			h: 0, s: 0, l: 1,
		},
		{
			name: "red",
			r:    255, g: 0, b: 0,
			h: 0, s: 1, l: 0.5,
		},
		{
			name: "green",
			r:    0, g: 255, b: 0,
			h: 120, s: 1, l: 0.5,
		},
		{
			name: "blue",
			r:    0, g: 0, b: 255,
			h: 240, s: 1, l: 0.5,
		},
		{
			name: "cyan",
			r:    0, g: 255, b: 255,
			h: 180, s: 1, l: 0.5,
		},
		{
			name: "magenta wraps below red",
			r:    255, g: 0, b: 255,
			h: 300, s: 1, l: 0.5,
		},
		{
			name: "mid grey is achromatic",
			r:    128, g: 128, b: 128,
			h: 0, s: 0, l: 128.0 / 255.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := RGBToHSL(tt.r, tt.g, tt.b)
			if math.Abs(h-tt.h) > 1e-9 {
				t.Errorf("hue = %v, want %v", h, tt.h)
			}
			if math.Abs(s-tt.s) > 1e-9 {
				t.Errorf("saturation = %v, want %v", s, tt.s)
			}
			if math.Abs(l-tt.l) > 1e-9 {
				t.Errorf("lightness = %v, want %v", l, tt.l)
			}
		})
	}
}

func TestRGBToHSLHueRange(t *testing.T) {
	// Hue must land in [0, 360) for every input, including colours on
	// the negative side of the red sector.
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				h, _, _ := RGBToHSL(uint8(r), uint8(g), uint8(b))
				if h < 0 || h >= 360 {
					t.Fatalf("RGBToHSL(%d, %d, %d) hue = %v, outside [0, 360)", r, g, b, h)
				}
			}
		}
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    [3]uint8
	}{
		{
			name: "pure green",
			h:    120, s: 1, l: 0.5,
			want: [3]uint8{0, 255, 0},
		},
		{
			name: "pure red",
			h:    0, s: 1, l: 0.5,
			want: [3]uint8{255, 0, 0},
		},
		{
			name: "white",
			h:    0, s: 0, l: 1,
			want: [3]uint8{255, 255, 255},
		},
		{
			name: "black",
			h:    240, s: 1, l: 0,
			want: [3]uint8{0, 0, 0},
		},
		{
			name: "hue wraps above 360",
			h:    480, s: 1, l: 0.5,
			want: [3]uint8{0, 255, 0},
		},
		{
			name: "negative hue wraps",
			h:    -60, s: 1, l: 0.5,
			want: [3]uint8{255, 0, 255},
		},
		{
			name: "achromatic grey",
			h:    0, s: 0, l: 0.5,
			want: [3]uint8{128, 128, 128},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HSLToRGB(tt.h, tt.s, tt.l)
			if err != nil {
				t.Fatalf("HSLToRGB(%v, %v, %v) returned error: %v", tt.h, tt.s, tt.l, err)
			}
			if got != tt.want {
				t.Errorf("HSLToRGB(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestHSLToRGBInvalid(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
	}{
		{name: "saturation below zero", h: 0, s: -0.1, l: 0.5},
		{name: "saturation above one", h: 0, s: 1.1, l: 0.5},
		{name: "lightness below zero", h: 0, s: 0.5, l: -0.1},
		{name: "lightness above one", h: 0, s: 0.5, l: 1.5},
		{name: "saturation NaN", h: 0, s: math.NaN(), l: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := HSLToRGB(tt.h, tt.s, tt.l)
			if !errors.Is(err, ErrInvalidComponent) {
				t.Errorf("HSLToRGB(%v, %v, %v) error = %v, want ErrInvalidComponent", tt.h, tt.s, tt.l, err)
			}
		})
	}
}

func TestHSLRoundTrip(t *testing.T) {
	// HSLToRGB must invert RGBToHSL exactly. Walk a coarse lattice of
	// the byte cube plus the edges where rounding is most likely to
	// drift.
	values := []int{0, 1, 2, 63, 64, 127, 128, 191, 192, 253, 254, 255}
	for step := 0; step <= 255; step += 7 {
		values = append(values, step)
	}

	for _, r := range values {
		for _, g := range values {
			for _, b := range values {
				h, s, l := RGBToHSL(uint8(r), uint8(g), uint8(b))
				got, err := HSLToRGB(h, s, l)
				if err != nil {
					t.Fatalf("round trip of (%d, %d, %d) failed to convert back: %v", r, g, b, err)
				}
				want := [3]uint8{uint8(r), uint8(g), uint8(b)}
				if got != want {
					t.Fatalf("round trip of (%d, %d, %d) = %v via hsl(%v, %v, %v)", r, g, b, got, h, s, l)
				}
			}
		}
	}
}

func TestRGBToHSLSaturationInRange(t *testing.T) {
	// Near-black and near-white colours push the saturation quotient
	// within a few ulps of 1. The derived values must stay inside
	// [0, 1] and be accepted unchanged by the checked conversion.
	triples := [][3]uint8{
		{0, 0, 1},
		{1, 0, 0},
		{0, 1, 0},
		{0, 1, 1},
		{1, 1, 0},
		{255, 255, 254},
		{254, 255, 255},
		{255, 254, 254},
		{128, 128, 129},
	}

	for _, tr := range triples {
		h, s, l := RGBToHSL(tr[0], tr[1], tr[2])
		if s < 0 || s > 1 {
			t.Errorf("RGBToHSL(%v) saturation = %v, outside [0, 1]", tr, s)
		}
		if l < 0 || l > 1 {
			t.Errorf("RGBToHSL(%v) lightness = %v, outside [0, 1]", tr, l)
		}

		got, err := HSLToRGB(h, s, l)
		if err != nil {
			t.Fatalf("HSLToRGB rejected the output of RGBToHSL(%v): %v", tr, err)
		}
		if got != tr {
			t.Errorf("round trip of %v = %v via hsl(%v, %v, %v)", tr, got, h, s, l)
		}
	}
}

func TestNormalizeHue(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{name: "in range", input: 20, want: 20},
		{name: "exactly 360", input: 360, want: 0},
		{name: "above 360", input: 380, want: 20},
		{name: "negative", input: -90, want: 270},
		{name: "large negative", input: -720, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeHue(tt.input); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("normalizeHue(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
