package colour

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/image/colornames"
)

// namedColours maps lowercase CSS colour keywords to their normalized
// eight-digit hex value. The table is derived once from the SVG 1.1 /
// CSS3 extended keyword set shipped with golang.org/x/image, plus the
// CSS "transparent" keyword.
var namedColours = buildNameTable()

func buildNameTable() map[string]string {
	m := make(map[string]string, len(colornames.Map)+1)
	for name, c := range colornames.Map {
		m[name] = fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	m["transparent"] = "00000000"
	return m
}

// ValidName reports whether name is a recognised CSS colour keyword.
// Matching is case-insensitive.
func ValidName(name string) bool {
	_, ok := namedColours[strings.ToLower(name)]
	return ok
}

// NameToHex resolves a CSS colour keyword to its normalized eight-digit
// lowercase hex value. Unknown names fail with ErrInvalidName.
func NameToHex(name string) (string, error) {
	hex, ok := namedColours[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return hex, nil
}

// NameToBytes resolves a CSS colour keyword to RGBA channel bytes.
func NameToBytes(name string) ([4]uint8, error) {
	hex, err := NameToHex(name)
	if err != nil {
		return [4]uint8{}, err
	}
	return HexToBytes(hex)
}

// Names returns all recognised colour keywords in sorted order.
func Names() []string {
	names := make([]string, 0, len(namedColours))
	for name := range namedColours {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
