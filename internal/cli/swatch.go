package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jmylchreest/pigment/pkg/colour"
	"golang.org/x/term"
)

// ANSI escape codes for truecolor terminal output.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	swatchWidth  = 8
)

// supportsColour reports whether stdout can usefully render ANSI
// truecolor sequences. Respects the --no-color flag and the NO_COLOR
// convention, and requires stdout to be a terminal with a TERM set.
func supportsColour() bool {
	if flagNoColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if t := os.Getenv("TERM"); t == "" || t == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// swatch returns a solid colour block for the given colour, or an
// empty string when colour output is unavailable. Uses the background
// colour with spaces so the block renders at full saturation.
func swatch(c colour.Color) string {
	if !supportsColour() {
		return ""
	}
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.Red(), c.Green(), c.Blue(), ansiSuffix)
	return bg + strings.Repeat(" ", swatchWidth) + ansiReset
}

// swatchWithText renders text over a colour block, picking whichever
// of black or white text reads better against it.
func swatchWithText(c colour.Color, text string) string {
	if !supportsColour() {
		return text
	}

	fgColour, err := colour.BestTextColor(c, colour.Named("white"), colour.Named("black"))
	if err != nil {
		// Both candidates are fixed keywords; resolution cannot fail.
		fgColour = colour.MustParse("white")
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.Red(), c.Green(), c.Blue(), ansiSuffix)
	fg := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fgColour.Red(), fgColour.Green(), fgColour.Blue(), ansiSuffix)

	return bg + fg + centreText(text, swatchWidth) + ansiReset
}

// centreText pads text with spaces to the given visible width. Width
// accounting matches the table renderer, so multi-byte labels centre
// correctly. Text already at or beyond the width passes through.
func centreText(text string, width int) string {
	w := visibleLen(text)
	if w >= width {
		return text
	}
	pad := (width - w) / 2
	return strings.Repeat(" ", pad) + text + strings.Repeat(" ", width-w-pad)
}

// formatWithSwatch prefixes a label with its colour block when colour
// output is available.
func formatWithSwatch(c colour.Color, label string) string {
	block := swatch(c)
	if block == "" {
		return label
	}
	return fmt.Sprintf("%s %s", block, label)
}
