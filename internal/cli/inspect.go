package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jmylchreest/pigment/pkg/colour"
	"github.com/spf13/cobra"
)

// inspectJSON is the JSON output shape of the inspect command.
type inspectJSON struct {
	Hex                string  `json:"hex"`
	Red                uint8   `json:"red"`
	Green              uint8   `json:"green"`
	Blue               uint8   `json:"blue"`
	Alpha              uint8   `json:"alpha"`
	Hue                float64 `json:"hue"`
	Saturation         float64 `json:"saturation"`
	Lightness          float64 `json:"lightness"`
	RelativeLuminance  float64 `json:"relative_luminance"`
	PerceivedLightness float64 `json:"perceived_lightness"`
}

// newInspectCmd builds the inspect command.
func newInspectCmd() *cobra.Command {
	var format outputFormat = formatHex

	cmd := &cobra.Command{
		Use:   "inspect <colour>",
		Short: "Show everything about a colour",
		Long: `Inspect parses a colour given in any accepted string form and prints
its channel bytes, HSL representation, WCAG relative luminance and
perceived lightness.

Accepted input forms: #rgb, #rgba, #rrggbb, #rrggbbaa (with or without
the '#'), or any of the 147 standard CSS colour keywords plus
"transparent".

Examples:
  # Inspect a hex colour
  pigment inspect "#336699"

  # Inspect a named colour as JSON
  pigment inspect --format json coral`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0], format)
		},
	}

	cmd.Flags().VarP(&format, "format", "f", "output format (hex, HEX, rgb, hsl, json)")
	return cmd
}

// runInspect executes the inspect command.
func runInspect(input string, format outputFormat) error {
	c, err := colour.Parse(input)
	if err != nil {
		return err
	}
	logger.Debug("parsed colour", "input", input, "normalized", c.String())

	if format == formatJSON {
		out, err := json.MarshalIndent(inspectJSON{
			Hex:                c.String(),
			Red:                c.Red(),
			Green:              c.Green(),
			Blue:               c.Blue(),
			Alpha:              c.Alpha(),
			Hue:                c.Hue(),
			Saturation:         c.Saturation(),
			Lightness:          c.Lightness(),
			RelativeLuminance:  c.RelativeLuminance(),
			PerceivedLightness: c.PerceivedLightness(),
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println(formatWithSwatch(c, renderColour(c, format)))
	fmt.Printf("  red        %3d\n", c.Red())
	fmt.Printf("  green      %3d\n", c.Green())
	fmt.Printf("  blue       %3d\n", c.Blue())
	fmt.Printf("  alpha      %3d\n", c.Alpha())
	fmt.Printf("  hue        %.2f\n", c.Hue())
	fmt.Printf("  saturation %.4f\n", c.Saturation())
	fmt.Printf("  lightness  %.4f\n", c.Lightness())
	fmt.Printf("  luminance  %.6f\n", c.RelativeLuminance())
	fmt.Printf("  perceived  %.4f\n", c.PerceivedLightness())
	return nil
}

// renderColour serializes a colour in the requested output format.
// The json format is handled separately by each command.
func renderColour(c colour.Color, format outputFormat) string {
	switch format {
	case formatHexU:
		return c.Hex(colour.HexOptions{IncludeAlpha: true, IncludeHash: true, Uppercase: true})
	case formatRGB:
		return c.RGBString()
	case formatHSL:
		return c.HSLString()
	default:
		return c.String()
	}
}
