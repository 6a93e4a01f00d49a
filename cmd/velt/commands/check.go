package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/veltlang/velt/pkg/cli"
)

var checkCmd = &cobra.Command{
	Use:   "check [path...]",
	Short: "Check sources without writing artifacts",
	Long: `Check runs the full pipeline (lexing, parsing, analysis and match
compilation) and reports diagnostics, but writes nothing to disk.

Examples:
  velt check main.vt
  velt check .`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			args = []string{"."}
		}
		os.Exit(cli.Check(args))
	},
}
