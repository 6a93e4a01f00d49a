package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/veltlang/velt/pkg/cli"
)

var buildOutput string

var buildCmd = &cobra.Command{
	Use:   "build [path...]",
	Short: "Compile sources and write HIR artifacts",
	Long: `Build compiles Velt sources and writes one HIR artifact per file
into the output directory, recording each artifact in the incremental
build cache.

A path may be a source file, a project directory containing velt.yaml,
or a plain directory of sources.

Examples:
  velt build main.vt
  velt build .
  velt build src -o out`,
	Run: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Artifact output directory")
}

func runBuild(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		args = []string{"."}
	}
	os.Exit(cli.Build(args, buildOutput))
}
