package colour

import "math"

// Luminance calculates the relative luminance of the given channel
// bytes according to WCAG 2.0. Returns a value between 0 (darkest) and
// 1 (lightest). Alpha plays no part in luminance.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(r, g, b uint8) float64 {
	return 0.2126*gammaCorrect(r) + 0.7152*gammaCorrect(g) + 0.0722*gammaCorrect(b)
}

// gammaCorrect applies the sRGB transfer function to a channel byte.
func gammaCorrect(b uint8) float64 {
	c := float64(b) / 255.0
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// PerceivedLightness converts a relative luminance to a CIE L*
// lightness estimate scaled into [0, 1]. Unlike raw luminance this is
// approximately linear in human brightness perception: 0.5 reads as
// "mid grey" rather than the 0.18 luminance of an 18% grey card.
func PerceivedLightness(luminance float64) float64 {
	if luminance <= 0.008856 {
		return luminance * 903.3 / 100.0
	}
	l := 1.16*math.Cbrt(luminance) - 0.16
	return math.Max(0.0, math.Min(1.0, l))
}

// ContrastRatio calculates the contrast ratio between two colours
// according to WCAG 2.0. Returns a value between 1 and 21, where 21 is
// maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b Color) float64 {
	l1 := a.RelativeLuminance()
	l2 := b.RelativeLuminance()

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastLevel identifies a WCAG conformance level for text contrast.
type ContrastLevel int

const (
	// LevelAA requires 4.5:1 for normal text, 3:1 for large text.
	LevelAA ContrastLevel = iota
	// LevelAAA requires 7:1 for normal text, 4.5:1 for large text.
	LevelAAA
)

// MeetsContrast reports whether a contrast ratio satisfies the given
// WCAG conformance level. Large text (18pt, or 14pt bold) is held to
// the lower threshold.
func MeetsContrast(ratio float64, level ContrastLevel, largeText bool) bool {
	min := 4.5
	switch {
	case level == LevelAAA && !largeText:
		min = 7.0
	case level == LevelAAA && largeText:
		min = 4.5
	case largeText:
		min = 3.0
	}
	return ratio >= min
}

// TextOption is a candidate text colour for BestTextColor, supplied
// either as a CSS colour keyword or as an existing Color value. The
// name form is resolved once, before any contrast arithmetic.
type TextOption struct {
	named bool
	name  string
	value Color
}

// Named returns a TextOption that resolves a CSS colour keyword.
func Named(name string) TextOption {
	return TextOption{named: true, name: name}
}

// Value returns a TextOption wrapping an existing colour.
func Value(c Color) TextOption {
	return TextOption{value: c}
}

// resolve turns the option into a concrete colour, failing with
// ErrInvalidName for an unknown keyword.
func (t TextOption) resolve() (Color, error) {
	if !t.named {
		return t.value, nil
	}
	b, err := NameToBytes(t.name)
	if err != nil {
		return Color{}, err
	}
	return FromBytes(b[0], b[1], b[2], b[3]), nil
}

// BestTextColor picks whichever of light or dark reads better on the
// given background, judged by WCAG contrast ratio. When the two ratios
// are exactly equal the dark candidate wins.
func BestTextColor(background Color, light, dark TextOption) (Color, error) {
	lightColour, err := light.resolve()
	if err != nil {
		return Color{}, err
	}
	darkColour, err := dark.resolve()
	if err != nil {
		return Color{}, err
	}

	if ContrastRatio(background, darkColour) >= ContrastRatio(background, lightColour) {
		return darkColour, nil
	}
	return lightColour, nil
}
