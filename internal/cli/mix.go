package cli

import (
	"fmt"

	"github.com/jmylchreest/pigment/pkg/colour"
	"github.com/spf13/cobra"
)

// newMixCmd builds the mix command.
func newMixCmd() *cobra.Command {
	var (
		ratio      float64
		average    bool
		complement bool
	)

	cmd := &cobra.Command{
		Use:   "mix <colour>...",
		Short: "Mix, average or complement colours",
		Long: `Mix blends colours channel by channel.

With two colours the first is blended towards the second by --ratio
(0 keeps the first colour, 1 yields the second). With --average the
arithmetic mean of all given colours is taken instead. With
--complement each colour is rotated 180 degrees around the colour
wheel, preserving saturation and lightness.

Examples:
  # Even blend of two colours
  pigment mix red blue

  # 25% of the second colour
  pigment mix --ratio 0.25 "#ff8040" "#004080"

  # Average a whole palette
  pigment mix --average coral teal gold navy

  # Complements
  pigment mix --complement red "#336699"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colours := make([]colour.Color, len(args))
			for i, arg := range args {
				c, err := colour.Parse(arg)
				if err != nil {
					return err
				}
				colours[i] = c
			}

			switch {
			case complement:
				for _, c := range colours {
					comp := c.Complement()
					fmt.Println(formatWithSwatch(comp, comp.String()))
				}
				return nil
			case average:
				mean, err := colour.Average(colours...)
				if err != nil {
					return err
				}
				fmt.Println(formatWithSwatch(mean, mean.String()))
				return nil
			case len(colours) == 2:
				mixed, err := colours[0].Mix(colours[1], ratio)
				if err != nil {
					return err
				}
				logger.Debug("mixed", "a", colours[0].String(), "b", colours[1].String(), "ratio", ratio)
				fmt.Println(formatWithSwatch(mixed, mixed.String()))
				return nil
			default:
				return fmt.Errorf("mix needs exactly two colours (got %d); use --average or --complement for other counts", len(colours))
			}
		},
	}

	cmd.Flags().Float64VarP(&ratio, "ratio", "r", 0.5, "weight of the second colour, 0 to 1")
	cmd.Flags().BoolVar(&average, "average", false, "average all given colours")
	cmd.Flags().BoolVar(&complement, "complement", false, "rotate each colour 180 degrees")
	return cmd
}
