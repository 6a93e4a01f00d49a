// Package commands provides the CLI commands for the velt tool.
package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veltlang/velt/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "velt [file.vt]",
	Short: "Velt language compiler",
	Long: `Velt is a statically-typed language with enums and pattern matching.

This tool provides:
  - Compilation of Velt sources to HIR artifacts
  - Static checking without producing artifacts

Usage:
  velt file.vt           Build a single file (shorthand)
  velt build [path...]   Build files or a project directory
  velt check [path...]   Check without writing artifacts
  velt version           Print version`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 && strings.HasSuffix(args[0], config.SourceFileExt) {
			runBuild(cmd, args)
			return nil
		}
		if len(args) == 0 {
			return cmd.Help()
		}
		return fmt.Errorf("unknown command %q for \"velt\"\nRun 'velt --help' for usage", args[0])
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}
