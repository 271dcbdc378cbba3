package colour

import "errors"

// Sentinel errors returned by parsing, construction and transformation.
// All of them represent invalid input supplied by the caller; none are
// transient. Failure sites wrap these with fmt.Errorf("%w: ...") so
// callers can test with errors.Is while still seeing the offending value.
var (
	// ErrInvalidComponent indicates a channel byte or unit fraction
	// outside its declared range.
	ErrInvalidComponent = errors.New("invalid colour component")

	// ErrInvalidHex indicates a malformed hex colour string
	// (unsupported length or a non-hex character).
	ErrInvalidHex = errors.New("invalid hex colour")

	// ErrInvalidName indicates an unrecognised CSS colour keyword.
	ErrInvalidName = errors.New("invalid colour name")

	// ErrInvalidColourString indicates a string that matched neither
	// the hex nor the keyword grammar.
	ErrInvalidColourString = errors.New("invalid colour string")

	// ErrEmptyInput indicates an operation that requires at least one
	// colour received none.
	ErrEmptyInput = errors.New("no colours given")
)
