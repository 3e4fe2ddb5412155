// Package cli provides the Cobra command structure for jwslint.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/jwslint/internal/logging"
	"github.com/yaklabco/jwslint/internal/ui/pretty"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root jwslint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var verbose, quiet bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "jwslint",
		Short: "Checks whitespace around Java tokens",
		Long: `jwslint reports whitespace that separates Java tokens from their operands.

It implements the Checkstyle NoWhitespaceAfter and NoWhitespaceBefore checks:
no space after unary operators, array brackets, annotations and member
selection dots, and no space before commas, semicolons, postfix operators
and similar tokens. Each construct can be switched on or off, and line
breaks before or after a token can be allowed.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			switch {
			case verbose && quiet:
				return fmt.Errorf("%w: --verbose and --quiet are mutually exclusive", ErrUsage)
			case verbose:
				logging.SetLevel("debug")
			case quiet:
				logging.SetLevel("error")
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", pretty.ColorAuto,
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newLintCommand(info))
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
