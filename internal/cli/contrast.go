package cli

import (
	"fmt"

	"github.com/jmylchreest/pigment/pkg/colour"
	"github.com/spf13/cobra"
)

// newContrastCmd builds the contrast command.
func newContrastCmd() *cobra.Command {
	var (
		lightCandidate string
		darkCandidate  string
	)

	cmd := &cobra.Command{
		Use:   "contrast <background> [foreground]",
		Short: "WCAG contrast ratio and readable text colour",
		Long: `Contrast computes the WCAG 2.0 contrast ratio between two colours and
reports which conformance levels the pair satisfies.

With a single argument the command instead suggests a text colour for
that background, picking whichever of the light and dark candidates
(white and black unless overridden) has the higher contrast ratio.

Examples:
  # Ratio and WCAG grades for a text/background pair
  pigment contrast "#336699" white

  # Best text colour for a background
  pigment contrast "#336699"

  # Best text colour from custom candidates
  pigment contrast --light "#eeeeee" --dark navy "#88ccff"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			background, err := colour.Parse(args[0])
			if err != nil {
				return fmt.Errorf("background: %w", err)
			}

			if len(args) == 2 {
				foreground, err := colour.Parse(args[1])
				if err != nil {
					return fmt.Errorf("foreground: %w", err)
				}
				return runContrastPair(background, foreground)
			}
			return runBestText(background, lightCandidate, darkCandidate)
		},
	}

	cmd.Flags().StringVar(&lightCandidate, "light", "white", "light text candidate (hex or keyword)")
	cmd.Flags().StringVar(&darkCandidate, "dark", "black", "dark text candidate (hex or keyword)")
	return cmd
}

// runContrastPair prints the ratio and WCAG grade table for a pair.
func runContrastPair(background, foreground colour.Color) error {
	ratio := colour.ContrastRatio(background, foreground)

	fmt.Printf("%s on %s\n",
		formatWithSwatch(foreground, foreground.String()),
		formatWithSwatch(background, background.String()))
	fmt.Printf("contrast ratio: %.2f:1\n\n", ratio)

	grade := func(ok bool) string {
		if ok {
			return "pass"
		}
		return "fail"
	}

	table := NewTable([]string{"LEVEL", "NORMAL TEXT", "LARGE TEXT"})
	table.AddRow("AA",
		grade(colour.MeetsContrast(ratio, colour.LevelAA, false)),
		grade(colour.MeetsContrast(ratio, colour.LevelAA, true)))
	table.AddRow("AAA",
		grade(colour.MeetsContrast(ratio, colour.LevelAAA, false)),
		grade(colour.MeetsContrast(ratio, colour.LevelAAA, true)))
	fmt.Print(table.Render())
	return nil
}

// runBestText prints the better-reading text colour for a background.
// Candidates accept either hex strings or colour keywords; a bare
// keyword goes through the name path so that unknown keywords surface
// an ErrInvalidName rather than a generic parse failure.
func runBestText(background colour.Color, light, dark string) error {
	best, err := colour.BestTextColor(background, textOption(light), textOption(dark))
	if err != nil {
		return err
	}

	fmt.Println(formatWithSwatch(background, fmt.Sprintf("background %s", background)))
	fmt.Println(formatWithSwatch(best, fmt.Sprintf("text       %s", best)))
	fmt.Printf("contrast ratio: %.2f:1\n", colour.ContrastRatio(background, best))
	return nil
}

// textOption wraps a CLI argument as a BestTextColor candidate. Hex
// strings become concrete values; everything else resolves by name.
func textOption(s string) colour.TextOption {
	if b, err := colour.HexToBytes(s); err == nil {
		return colour.Value(colour.FromBytes(b[0], b[1], b[2], b[3]))
	}
	return colour.Named(s)
}
