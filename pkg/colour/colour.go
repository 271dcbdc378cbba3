// Package colour provides an immutable RGBA colour value with
// CSS-compatible parsing and serialization, RGB/HSL conversion and
// WCAG accessibility calculations.
package colour

import (
	"encoding/json"
	"fmt"
	"math"
	"sync"
)

// Color is an immutable colour value. The four RGBA channel bytes are
// the single source of truth; HSL and luminance figures are pure
// functions of the RGB bytes, computed on first access and cached for
// the lifetime of the value. Because the inputs never change after
// construction, a Color (and its cache) is safe for concurrent use
// without synchronisation by callers.
//
// The zero Color is opaque-less black (all channels zero) and is valid;
// it simply computes its derived values on every access instead of
// caching them.
type Color struct {
	r, g, b, a uint8

	// Shared by copies of the same value; holds derived figures that
	// never change once computed.
	cache *derived
}

// derived holds the lazily-computed values of a Color.
type derived struct {
	hslOnce         sync.Once
	hue, sat, light float64
	lumOnce         sync.Once
	lum             float64
	perceivedOnce   sync.Once
	perceived       float64
}

// newColor wraps validated channel bytes with a fresh cache.
// Transformations never copy caches forward; every new value recomputes
// its derived figures lazily.
func newColor(r, g, b, a uint8) Color {
	return Color{r: r, g: g, b: b, a: a, cache: &derived{}}
}

// Parse constructs a Color from any accepted string form: CSS hex
// syntax (3/4/6/8 digits, optional '#', case-insensitive) or a CSS
// colour keyword. A string matching neither grammar fails with
// ErrInvalidColourString.
func Parse(s string) (Color, error) {
	if b, err := HexToBytes(s); err == nil {
		return FromBytes(b[0], b[1], b[2], b[3]), nil
	}
	if b, err := NameToBytes(s); err == nil {
		return FromBytes(b[0], b[1], b[2], b[3]), nil
	}
	return Color{}, fmt.Errorf("%w: %q is neither a hex colour nor a colour name", ErrInvalidColourString, s)
}

// MustParse is Parse for known-good literals; it panics on error.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromBytes constructs a Color directly from channel bytes.
func FromBytes(r, g, b, a uint8) Color {
	return newColor(r, g, b, a)
}

// FromRGBA constructs a Color from four channel components, each given
// either as Byte or Fraction. Any out-of-range component fails with
// ErrInvalidComponent.
func FromRGBA(r, g, b, a Component) (Color, error) {
	rb, err := r.resolve()
	if err != nil {
		return Color{}, fmt.Errorf("red: %w", err)
	}
	gb, err := g.resolve()
	if err != nil {
		return Color{}, fmt.Errorf("green: %w", err)
	}
	bb, err := b.resolve()
	if err != nil {
		return Color{}, fmt.Errorf("blue: %w", err)
	}
	ab, err := a.resolve()
	if err != nil {
		return Color{}, fmt.Errorf("alpha: %w", err)
	}
	return newColor(rb, gb, bb, ab), nil
}

// FromHSLA constructs a Color from HSL values and an alpha component.
// Hue may be any real number (normalized mod 360); saturation and
// lightness must be in [0, 1].
func FromHSLA(h, s, l float64, a Component) (Color, error) {
	rgb, err := HSLToRGB(h, s, l)
	if err != nil {
		return Color{}, err
	}
	ab, err := a.resolve()
	if err != nil {
		return Color{}, fmt.Errorf("alpha: %w", err)
	}
	return newColor(rgb[0], rgb[1], rgb[2], ab), nil
}

// Red returns the red channel byte.
func (c Color) Red() uint8 { return c.r }

// Green returns the green channel byte.
func (c Color) Green() uint8 { return c.g }

// Blue returns the blue channel byte.
func (c Color) Blue() uint8 { return c.b }

// Alpha returns the alpha channel byte.
func (c Color) Alpha() uint8 { return c.a }

// hsl returns the derived HSL triple, computing and caching it on
// first use. All three figures come from one conversion pass.
func (c Color) hsl() (h, s, l float64) {
	if c.cache == nil {
		return RGBToHSL(c.r, c.g, c.b)
	}
	c.cache.hslOnce.Do(func() {
		c.cache.hue, c.cache.sat, c.cache.light = RGBToHSL(c.r, c.g, c.b)
	})
	return c.cache.hue, c.cache.sat, c.cache.light
}

// Hue returns the derived hue in degrees, [0, 360).
func (c Color) Hue() float64 {
	h, _, _ := c.hsl()
	return h
}

// Saturation returns the derived saturation in [0, 1].
func (c Color) Saturation() float64 {
	_, s, _ := c.hsl()
	return s
}

// Lightness returns the derived lightness in [0, 1].
func (c Color) Lightness() float64 {
	_, _, l := c.hsl()
	return l
}

// RelativeLuminance returns the WCAG relative luminance of the colour
// in [0, 1]. Alpha is ignored.
func (c Color) RelativeLuminance() float64 {
	if c.cache == nil {
		return Luminance(c.r, c.g, c.b)
	}
	c.cache.lumOnce.Do(func() {
		c.cache.lum = Luminance(c.r, c.g, c.b)
	})
	return c.cache.lum
}

// PerceivedLightness returns the CIE L* lightness estimate of the
// colour, scaled into [0, 1].
func (c Color) PerceivedLightness() float64 {
	if c.cache == nil {
		return PerceivedLightness(c.RelativeLuminance())
	}
	c.cache.perceivedOnce.Do(func() {
		c.cache.perceived = PerceivedLightness(c.RelativeLuminance())
	})
	return c.cache.perceived
}

// WithRed returns a copy with the red channel replaced.
func (c Color) WithRed(v Component) (Color, error) {
	b, err := v.resolve()
	if err != nil {
		return Color{}, fmt.Errorf("red: %w", err)
	}
	return newColor(b, c.g, c.b, c.a), nil
}

// WithGreen returns a copy with the green channel replaced.
func (c Color) WithGreen(v Component) (Color, error) {
	b, err := v.resolve()
	if err != nil {
		return Color{}, fmt.Errorf("green: %w", err)
	}
	return newColor(c.r, b, c.b, c.a), nil
}

// WithBlue returns a copy with the blue channel replaced.
func (c Color) WithBlue(v Component) (Color, error) {
	b, err := v.resolve()
	if err != nil {
		return Color{}, fmt.Errorf("blue: %w", err)
	}
	return newColor(c.r, c.g, b, c.a), nil
}

// WithAlpha returns a copy with the alpha channel replaced.
func (c Color) WithAlpha(v Component) (Color, error) {
	b, err := v.resolve()
	if err != nil {
		return Color{}, fmt.Errorf("alpha: %w", err)
	}
	return newColor(c.r, c.g, c.b, b), nil
}

// WithHue returns a copy with the hue replaced, keeping the current
// saturation, lightness and alpha. Any real hue is accepted and
// normalized mod 360, so this never fails.
func (c Color) WithHue(h float64) Color {
	_, s, l := c.hsl()
	rgb := hslToRGB(h, clamp01(s), clamp01(l))
	return newColor(rgb[0], rgb[1], rgb[2], c.a)
}

// WithSaturation returns a copy with the saturation replaced, keeping
// the current hue, lightness and alpha. Saturation must be in [0, 1].
func (c Color) WithSaturation(s float64) (Color, error) {
	if s < 0 || s > 1 || math.IsNaN(s) {
		return Color{}, fmt.Errorf("%w: saturation %v outside [0, 1]", ErrInvalidComponent, s)
	}
	h, _, l := c.hsl()
	rgb := hslToRGB(h, s, clamp01(l))
	return newColor(rgb[0], rgb[1], rgb[2], c.a), nil
}

// WithLightness returns a copy with the lightness replaced, keeping
// the current hue, saturation and alpha. Lightness must be in [0, 1].
func (c Color) WithLightness(l float64) (Color, error) {
	if l < 0 || l > 1 || math.IsNaN(l) {
		return Color{}, fmt.Errorf("%w: lightness %v outside [0, 1]", ErrInvalidComponent, l)
	}
	h, s, _ := c.hsl()
	rgb := hslToRGB(h, clamp01(s), l)
	return newColor(rgb[0], rgb[1], rgb[2], c.a), nil
}

// Complement returns the colour rotated 180 degrees around the colour
// wheel, keeping saturation, lightness and alpha.
func (c Color) Complement() Color {
	return c.WithHue(c.Hue() + 180.0)
}

// Mix blends the colour towards other. frac is the weight of other:
// 0 returns a value equal to the receiver, 1 a value equal to other.
// Each RGBA channel blends independently. A frac outside [0, 1] fails
// with ErrInvalidComponent.
func (c Color) Mix(other Color, frac float64) (Color, error) {
	if frac < 0 || frac > 1 || math.IsNaN(frac) {
		return Color{}, fmt.Errorf("%w: mix fraction %v outside [0, 1]", ErrInvalidComponent, frac)
	}
	blend := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a)*(1.0-frac) + float64(b)*frac))
	}
	return newColor(
		blend(c.r, other.r),
		blend(c.g, other.g),
		blend(c.b, other.b),
		blend(c.a, other.a),
	), nil
}

// Average returns the arithmetic mean of the given colours, computed
// per RGBA channel and rounded to the nearest byte. Calling it with no
// colours fails with ErrEmptyInput.
func Average(colours ...Color) (Color, error) {
	if len(colours) == 0 {
		return Color{}, fmt.Errorf("%w: average requires at least one colour", ErrEmptyInput)
	}

	var rSum, gSum, bSum, aSum int
	for _, c := range colours {
		rSum += int(c.r)
		gSum += int(c.g)
		bSum += int(c.b)
		aSum += int(c.a)
	}

	n := float64(len(colours))
	mean := func(sum int) uint8 {
		return uint8(math.Round(float64(sum) / n))
	}
	return newColor(mean(rSum), mean(gSum), mean(bSum), mean(aSum)), nil
}

// Equal reports whether two colours have identical RGBA bytes. Derived
// values are pure functions of the bytes, so byte equality is both
// necessary and sufficient.
func (c Color) Equal(other Color) bool {
	return c.r == other.r && c.g == other.g && c.b == other.b && c.a == other.a
}

// Hex formats the colour as a hex string according to opts.
func (c Color) Hex(opts HexOptions) string {
	return HexFromBytes([4]uint8{c.r, c.g, c.b, c.a}, opts)
}

// String returns the default string form: eight-digit lowercase hex
// with a '#' prefix.
func (c Color) String() string {
	return c.Hex(HexOptions{IncludeAlpha: true, IncludeHash: true})
}

// RGBString formats the colour in modern CSS rgb() syntax, with alpha
// as a unit fraction at full floating precision.
func (c Color) RGBString() string {
	return fmt.Sprintf("rgb(%d %d %d / %v)", c.r, c.g, c.b, float64(c.a)/255.0)
}

// HSLString formats the colour in modern CSS hsl() syntax, with
// saturation and lightness as percentages and alpha as a unit fraction,
// all at full floating precision.
func (c Color) HSLString() string {
	h, s, l := c.hsl()
	return fmt.Sprintf("hsl(%vdeg %v%% %v%% / %v)", h, s*100.0, l*100.0, float64(c.a)/255.0)
}

// RGBAArray returns the four channel bytes in RGBA order.
func (c Color) RGBAArray() [4]uint8 {
	return [4]uint8{c.r, c.g, c.b, c.a}
}

// HSLArray returns the derived hue, saturation and lightness.
func (c Color) HSLArray() [3]float64 {
	h, s, l := c.hsl()
	return [3]float64{h, s, l}
}

// Array returns the union of RGBAArray and HSLArray: the four channel
// bytes (as floats) followed by hue, saturation and lightness.
func (c Color) Array() [7]float64 {
	h, s, l := c.hsl()
	return [7]float64{float64(c.r), float64(c.g), float64(c.b), float64(c.a), h, s, l}
}

// RGBA implements image/color.Color. The returned values are
// alpha-premultiplied in the 16-bit range, matching the behaviour of
// color.NRGBA for the same bytes.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.r)
	r |= r << 8
	r *= uint32(c.a)
	r /= 0xff
	g = uint32(c.g)
	g |= g << 8
	g *= uint32(c.a)
	g /= 0xff
	b = uint32(c.b)
	b |= b << 8
	b *= uint32(c.a)
	b /= 0xff
	a = uint32(c.a)
	a |= a << 8
	return
}

// MarshalJSON encodes the colour as its default hex string form.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a colour from any accepted string form.
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// clamp01 pins float conversion noise back into [0, 1].
func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}
