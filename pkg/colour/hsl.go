package colour

import (
	"fmt"
	"math"
)

// RGBToHSL converts channel bytes to HSL colour space.
// Returns hue in [0, 360), saturation and lightness in [0, 1].
func RGBToHSL(r, g, b uint8) (h, s, l float64) {
	rf := float64(r) / 255.0
	gf := float64(g) / 255.0
	bf := float64(b) / 255.0

	maxVal := math.Max(rf, math.Max(gf, bf))
	minVal := math.Min(rf, math.Min(gf, bf))
	delta := maxVal - minVal

	l = (maxVal + minVal) / 2.0

	if delta == 0 {
		// Achromatic (grey).
		return 0, 0, l
	}

	// The quotient can drift a few ulps above 1 for near-black and
	// near-white colours; pin it so derived saturation honours [0, 1]
	// and feeds back into HSLToRGB without tripping validation.
	s = clamp01(delta / (1.0 - math.Abs(2.0*l-1.0)))

	switch maxVal {
	case rf:
		h = math.Mod((gf-bf)/delta, 6.0)
	case gf:
		h = (bf-rf)/delta + 2.0
	case bf:
		h = (rf-gf)/delta + 4.0
	}
	h *= 60.0
	if h < 0 {
		h += 360.0
	}
	return h, s, l
}

// HSLToRGB converts HSL values to channel bytes.
// Hue may be any real number and is normalized into [0, 360) first;
// saturation and lightness must be in [0, 1] or the conversion fails
// with ErrInvalidComponent.
//
// HSLToRGB is the exact inverse of RGBToHSL: feeding the output of
// RGBToHSL back through reproduces the original bytes for every triple.
func HSLToRGB(h, s, l float64) ([3]uint8, error) {
	if s < 0 || s > 1 || math.IsNaN(s) {
		return [3]uint8{}, fmt.Errorf("%w: saturation %v outside [0, 1]", ErrInvalidComponent, s)
	}
	if l < 0 || l > 1 || math.IsNaN(l) {
		return [3]uint8{}, fmt.Errorf("%w: lightness %v outside [0, 1]", ErrInvalidComponent, l)
	}
	return hslToRGB(h, s, l), nil
}

// hslToRGB is the unchecked conversion used internally once saturation
// and lightness are known to be in range (or within float noise of it).
func hslToRGB(h, s, l float64) [3]uint8 {
	h = normalizeHue(h)

	c := (1.0 - math.Abs(2.0*l-1.0)) * s
	x := c * (1.0 - math.Abs(math.Mod(h/60.0, 2.0)-1.0))
	m := l - c/2.0

	var rf, gf, bf float64
	switch {
	case h < 60:
		rf, gf, bf = c, x, 0
	case h < 120:
		rf, gf, bf = x, c, 0
	case h < 180:
		rf, gf, bf = 0, c, x
	case h < 240:
		rf, gf, bf = 0, x, c
	case h < 300:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}

	return [3]uint8{
		clampByte((rf + m) * 255.0),
		clampByte((gf + m) * 255.0),
		clampByte((bf + m) * 255.0),
	}
}

// normalizeHue wraps an arbitrary hue angle into [0, 360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360.0)
	if h < 0 {
		h += 360.0
	}
	return h
}

// clampByte rounds a channel value to the nearest byte, clamping the
// float noise that conversion arithmetic can push just outside [0, 255].
func clampByte(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}
