// Pigment - a CSS colour inspection toolbox
//
// Pigment parses CSS colour values and answers questions about them:
// channel values, HSL representation, WCAG contrast and readable text
// colour suggestions.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/pigment/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
