package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// outputFormat is an enum flag value selecting how a colour is printed.
type outputFormat string

const (
	formatHex  outputFormat = "hex"
	formatHexU outputFormat = "HEX"
	formatRGB  outputFormat = "rgb"
	formatHSL  outputFormat = "hsl"
	formatJSON outputFormat = "json"
)

var _ pflag.Value = (*outputFormat)(nil)

// String implements pflag.Value.
func (f *outputFormat) String() string {
	return string(*f)
}

// Set implements pflag.Value, validating the format at parse time.
func (f *outputFormat) Set(v string) error {
	switch outputFormat(v) {
	case formatHex, formatHexU, formatRGB, formatHSL, formatJSON:
		*f = outputFormat(v)
		return nil
	}
	return fmt.Errorf("unknown format %q (expected one of: %s)", v, strings.Join(formatNames(), ", "))
}

// Type implements pflag.Value.
func (f *outputFormat) Type() string {
	return "format"
}

func formatNames() []string {
	return []string{string(formatHex), string(formatHexU), string(formatRGB), string(formatHSL), string(formatJSON)}
}
