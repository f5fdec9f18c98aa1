package cmd

import (
	"fmt"
	"os"

	"hellotutor/internal/version"

	"github.com/spf13/cobra"
)

var versionShort bool

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the version, commit hash, and build time of this binary.

Use --short to print only the version number.`,
	Run: func(cmd *cobra.Command, _ []string) {
		if err := version.Get().Write(cmd.OutOrStdout(), versionShort); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing version: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
	rootCmd.AddCommand(versionCmd)
}
