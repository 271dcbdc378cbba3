// Package cli provides the command-line interface for Pigment.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/pigment/internal/version"
	"github.com/spf13/cobra"
)

var (
	// Global flags shared by all commands.
	flagVerbose bool
	flagQuiet   bool
	flagNoColor bool

	// logger is the shared CLI logger. Commands log diagnostics here;
	// results always go to stdout unlogged.
	logger = hclog.NewNullLogger()
)

// NewRootCmd builds the root command with all subcommands attached.
// This is called by main.main().
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pigment",
		Short: "A CSS colour inspection toolbox",
		Long: `Pigment parses CSS colour values (hex and keyword syntax) and answers
questions about them: channel values, HSL representation, WCAG relative
luminance and contrast ratios, and readable text colour suggestions.

Colours can be mixed, averaged and complemented, and re-serialized in
any of the supported output forms.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable ANSI colour previews")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newContrastCmd())
	rootCmd.AddCommand(newMixCmd())
	rootCmd.AddCommand(newNamesCmd())

	return rootCmd
}

// newLogger builds the CLI logger from the global flags.
func newLogger() hclog.Logger {
	level := hclog.Warn
	if flagVerbose {
		level = hclog.Debug
	}
	if flagQuiet {
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "pigment",
		Level:  level,
		Output: os.Stderr,
	})
}

// newVersionCmd builds the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}
}
