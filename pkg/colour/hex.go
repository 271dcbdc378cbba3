package colour

import (
	"fmt"
	"strconv"
	"strings"
)

// HexOptions controls hex string formatting. The three options are
// independent: any combination of alpha digits, '#' prefix and casing
// is valid.
type HexOptions struct {
	// IncludeAlpha appends the two alpha digits (RRGGBBAA).
	IncludeAlpha bool
	// IncludeHash prepends the '#' separator.
	IncludeHash bool
	// Uppercase emits A-F instead of a-f.
	Uppercase bool
}

// NormalizeHex canonicalises a CSS hex colour string to eight lowercase
// hex digits with no '#' prefix.
//
// Accepted input forms (with or without a leading '#', case-insensitive):
//   - rgb      (3 digits, each doubled, alpha defaults to ff)
//   - rgba     (4 digits, each doubled)
//   - rrggbb   (6 digits, alpha defaults to ff)
//   - rrggbbaa (8 digits)
//
// Any other length, or any non-hex character, fails with ErrInvalidHex.
func NormalizeHex(s string) (string, error) {
	h := strings.ToLower(strings.TrimPrefix(s, "#"))

	for _, r := range h {
		if !isHexDigit(r) {
			return "", fmt.Errorf("%w: %q contains non-hex character %q", ErrInvalidHex, s, r)
		}
	}

	switch len(h) {
	case 3, 4:
		// Double each digit: "f80" -> "ff8800".
		var b strings.Builder
		b.Grow(len(h) * 2)
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	case 6, 8:
	default:
		return "", fmt.Errorf("%w: %q has unsupported length %d", ErrInvalidHex, s, len(h))
	}

	if len(h) == 6 {
		h += "ff"
	}
	return h, nil
}

// HexToBytes parses a CSS hex colour string into RGBA channel bytes.
func HexToBytes(s string) ([4]uint8, error) {
	h, err := NormalizeHex(s)
	if err != nil {
		return [4]uint8{}, err
	}

	var out [4]uint8
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseUint(h[i*2:i*2+2], 16, 8)
		if err != nil {
			// Unreachable after NormalizeHex, but never trust a parse.
			return [4]uint8{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		out[i] = uint8(v)
	}
	return out, nil
}

// HexFromBytes formats RGBA channel bytes as a hex colour string
// according to opts. It is the inverse of HexToBytes for the
// fully-specified form.
func HexFromBytes(b [4]uint8, opts HexOptions) string {
	format := "%02x%02x%02x"
	if opts.Uppercase {
		format = "%02X%02X%02X"
	}
	s := fmt.Sprintf(format, b[0], b[1], b[2])

	if opts.IncludeAlpha {
		alphaFormat := "%02x"
		if opts.Uppercase {
			alphaFormat = "%02X"
		}
		s += fmt.Sprintf(alphaFormat, b[3])
	}
	if opts.IncludeHash {
		s = "#" + s
	}
	return s
}

// isHexDigit reports whether r is an ASCII hex digit. Input is already
// lowercased by the caller.
func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
}
