package colour

import (
	"fmt"
	"math"
)

// Component is a single channel value supplied to construction and
// transformation functions. A channel can be given either as an 8-bit
// byte in [0, 255] or as a unit fraction in [0.0, 1.0]; the two forms
// overlap at 0 and 1, so the caller picks the interpretation explicitly
// with Byte or Fraction rather than having it guessed from magnitude.
type Component struct {
	fraction bool
	intVal   int
	fracVal  float64
}

// Byte returns a Component interpreted as an 8-bit channel value.
// Values outside [0, 255] fail with ErrInvalidComponent when resolved.
func Byte(v int) Component {
	return Component{intVal: v}
}

// Fraction returns a Component interpreted as a unit fraction.
// The fraction maps to a byte via round(v * 255). Values outside
// [0.0, 1.0] fail with ErrInvalidComponent when resolved; an integral
// 0 or 1 passed here still follows the fraction interpretation.
func Fraction(v float64) Component {
	return Component{fraction: true, fracVal: v}
}

// resolve validates the component and converts it to a channel byte.
func (c Component) resolve() (uint8, error) {
	if c.fraction {
		if c.fracVal < 0 || c.fracVal > 1 || math.IsNaN(c.fracVal) {
			return 0, fmt.Errorf("%w: fraction %v outside [0, 1]", ErrInvalidComponent, c.fracVal)
		}
		return uint8(math.Round(c.fracVal * 255)), nil
	}
	if c.intVal < 0 || c.intVal > 255 {
		return 0, fmt.Errorf("%w: byte %d outside [0, 255]", ErrInvalidComponent, c.intVal)
	}
	return uint8(c.intVal), nil
}

// Opaque is the default alpha component (fully opaque).
var Opaque = Byte(255)
