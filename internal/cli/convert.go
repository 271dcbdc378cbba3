package cli

import (
	"fmt"

	"github.com/jmylchreest/pigment/pkg/colour"
	"github.com/spf13/cobra"
)

// newConvertCmd builds the convert command.
func newConvertCmd() *cobra.Command {
	var (
		to        outputFormat = formatHex
		withAlpha bool
		withHash  bool
	)

	cmd := &cobra.Command{
		Use:   "convert <colour>",
		Short: "Re-serialize a colour in another form",
		Long: `Convert parses a colour and prints it in the requested output form.

The hex forms honour the --alpha and --hash flags; rgb and hsl always
carry alpha as a unit fraction in the modern CSS slash syntax.

Examples:
  # Keyword to hex
  pigment convert cornflowerblue

  # Short hex to uppercase hex with '#' and alpha digits
  pigment convert --to HEX --hash --alpha f80

  # Hex to modern CSS hsl() syntax
  pigment convert --to hsl "#336699"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colour.Parse(args[0])
			if err != nil {
				return err
			}
			logger.Debug("parsed colour", "input", args[0], "normalized", c.String())

			switch to {
			case formatHex, formatHexU:
				fmt.Println(c.Hex(colour.HexOptions{
					IncludeAlpha: withAlpha,
					IncludeHash:  withHash,
					Uppercase:    to == formatHexU,
				}))
			case formatRGB:
				fmt.Println(c.RGBString())
			case formatHSL:
				fmt.Println(c.HSLString())
			case formatJSON:
				out, err := c.MarshalJSON()
				if err != nil {
					return err
				}
				fmt.Println(string(out))
			}
			return nil
		},
	}

	cmd.Flags().Var(&to, "to", "target format (hex, HEX, rgb, hsl, json)")
	cmd.Flags().BoolVar(&withAlpha, "alpha", false, "include alpha digits in hex output")
	cmd.Flags().BoolVar(&withHash, "hash", false, "include '#' prefix in hex output")
	return cmd
}
