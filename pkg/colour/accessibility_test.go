package colour

import (
	"errors"
	"math"
	"testing"
)

func TestGammaCorrectBoundaries(t *testing.T) {
	if got := gammaCorrect(0); got != 0 {
		t.Errorf("gammaCorrect(0) = %v, want 0", got)
	}
	if got := gammaCorrect(255); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("gammaCorrect(255) = %v, want 1.0", got)
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    float64
		delta   float64
	}{
		{
			name: "black",
			r:    0, g: 0, b: 0,
			want: 0, delta: 0,
		},
		{
			name: "white",
			r:    255, g: 255, b: 255,
			want: 1.0, delta: 1e-12,
		},
		{
			name: "green dominates the weighting",
			r:    0, g: 255, b: 0,
			want: 0.7152, delta: 1e-12,
		},
		{
			name: "blue carries the least weight",
			r:    0, g: 0, b: 255,
			want: 0.0722, delta: 1e-12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Luminance(tt.r, tt.g, tt.b)
			if math.Abs(got-tt.want) > tt.delta {
				t.Errorf("Luminance(%d, %d, %d) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestPerceivedLightness(t *testing.T) {
	tests := []struct {
		name  string
		lum   float64
		want  float64
		delta float64
	}{
		{
			name: "black",
			lum:  0,
			want: 0, delta: 0,
		},
		{
			name: "white",
			lum:  1,
			want: 1.0, delta: 1e-9,
		},
		{
			name: "linear segment below threshold",
			lum:  0.008856,
			want: 0.008856 * 903.3 / 100.0, delta: 1e-12,
		},
		{
			name: "mid grey card",
			lum:  0.18,
			want: 1.16*math.Cbrt(0.18) - 0.16, delta: 1e-12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PerceivedLightness(tt.lum)
			if math.Abs(got-tt.want) > tt.delta {
				t.Errorf("PerceivedLightness(%v) = %v, want %v", tt.lum, got, tt.want)
			}
		})
	}
}

func TestPerceivedLightnessContinuity(t *testing.T) {
	// The linear and cube-root segments must agree at the threshold to
	// within rounding noise.
	below := PerceivedLightness(0.008856)
	above := PerceivedLightness(0.008857)
	if math.Abs(below-above) > 1e-4 {
		t.Errorf("discontinuity at threshold: %v vs %v", below, above)
	}
}

func TestContrastRatio(t *testing.T) {
	black := MustParse("black")
	white := MustParse("white")

	if got := ContrastRatio(black, white); math.Abs(got-21.0) > 1e-9 {
		t.Errorf("ContrastRatio(black, white) = %v, want 21.0", got)
	}

	// Symmetry: argument order must not matter.
	if a, b := ContrastRatio(black, white), ContrastRatio(white, black); a != b {
		t.Errorf("ContrastRatio not symmetric: %v vs %v", a, b)
	}

	// Self contrast is exactly 1 for any colour.
	for _, s := range []string{"black", "white", "#336699", "coral"} {
		c := MustParse(s)
		if got := ContrastRatio(c, c); got != 1.0 {
			t.Errorf("ContrastRatio(%s, %s) = %v, want 1.0", s, s, got)
		}
	}
}

func TestMeetsContrast(t *testing.T) {
	tests := []struct {
		name      string
		ratio     float64
		level     ContrastLevel
		largeText bool
		want      bool
	}{
		{name: "AA normal at threshold", ratio: 4.5, level: LevelAA, want: true},
		{name: "AA normal below threshold", ratio: 4.49, level: LevelAA, want: false},
		{name: "AA large", ratio: 3.0, level: LevelAA, largeText: true, want: true},
		{name: "AAA normal needs seven", ratio: 4.5, level: LevelAAA, want: false},
		{name: "AAA normal at threshold", ratio: 7.0, level: LevelAAA, want: true},
		{name: "AAA large", ratio: 4.5, level: LevelAAA, largeText: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeetsContrast(tt.ratio, tt.level, tt.largeText); got != tt.want {
				t.Errorf("MeetsContrast(%v, %v, %v) = %v, want %v", tt.ratio, tt.level, tt.largeText, got, tt.want)
			}
		})
	}
}

func TestBestTextColor(t *testing.T) {
	t.Run("medium blue background takes white text", func(t *testing.T) {
		background := MustParse("#336699")
		got, err := BestTextColor(background, Named("white"), Named("black"))
		if err != nil {
			t.Fatalf("BestTextColor returned error: %v", err)
		}
		if !got.Equal(MustParse("white")) {
			t.Errorf("BestTextColor(#336699) = %v, want white", got)
		}
	})

	t.Run("light background takes dark text", func(t *testing.T) {
		background := MustParse("#eeeeee")
		got, err := BestTextColor(background, Named("white"), Named("black"))
		if err != nil {
			t.Fatalf("BestTextColor returned error: %v", err)
		}
		if !got.Equal(MustParse("black")) {
			t.Errorf("BestTextColor(#eeeeee) = %v, want black", got)
		}
	})

	t.Run("equal ratios favour the dark candidate", func(t *testing.T) {
		// Alpha does not influence luminance, so these candidates tie
		// on contrast while remaining distinguishable by byte equality.
		light := MustParse("#80808080")
		dark := MustParse("#808080ff")
		got, err := BestTextColor(MustParse("white"), Value(light), Value(dark))
		if err != nil {
			t.Fatalf("BestTextColor returned error: %v", err)
		}
		if !got.Equal(dark) {
			t.Errorf("tie-break returned %v, want the dark candidate %v", got, dark)
		}
	})

	t.Run("value candidates", func(t *testing.T) {
		got, err := BestTextColor(MustParse("black"), Value(MustParse("white")), Value(MustParse("#222222")))
		if err != nil {
			t.Fatalf("BestTextColor returned error: %v", err)
		}
		if !got.Equal(MustParse("white")) {
			t.Errorf("BestTextColor(black) = %v, want white", got)
		}
	})

	t.Run("unknown name fails", func(t *testing.T) {
		_, err := BestTextColor(MustParse("black"), Named("notacolor"), Named("black"))
		if !errors.Is(err, ErrInvalidName) {
			t.Errorf("BestTextColor error = %v, want ErrInvalidName", err)
		}
	})
}
