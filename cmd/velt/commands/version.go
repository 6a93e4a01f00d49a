package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information - can be set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of velt",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("velt version %s\n", Version)
		if GitCommit != "unknown" {
			fmt.Printf("  Git commit: %s\n", GitCommit)
		}
	},
}
