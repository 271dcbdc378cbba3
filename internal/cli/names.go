package cli

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/pigment/pkg/colour"
	"github.com/spf13/cobra"
)

// newNamesCmd builds the names command.
func newNamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "names [filter]",
		Short: "List the recognised CSS colour keywords",
		Long: `Names lists the CSS colour keywords pigment understands (the 147
standard keywords plus "transparent") with their hex values and, in a
capable terminal, a colour swatch.

An optional filter argument restricts the list to names containing the
given substring.

Examples:
  # All keywords
  pigment names

  # Just the blues
  pigment names blue`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ""
			if len(args) == 1 {
				filter = strings.ToLower(args[0])
			}
			return runNames(filter)
		},
	}
	return cmd
}

// runNames executes the names command.
func runNames(filter string) error {
	table := NewTable([]string{"NAME", "HEX", ""})

	matched := 0
	for _, name := range colour.Names() {
		if filter != "" && !strings.Contains(name, filter) {
			continue
		}
		hex, err := colour.NameToHex(name)
		if err != nil {
			// Names() only yields table members.
			return err
		}
		c := colour.MustParse(name)
		table.AddRow(name, "#"+hex, swatch(c))
		matched++
	}

	if matched == 0 {
		return fmt.Errorf("no colour names match %q", filter)
	}
	logger.Debug("listed colour names", "matched", matched, "filter", filter)
	fmt.Print(table.Render())
	return nil
}
