package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the resolved configuration as YAML, after defaults, the config
file, environment variables, and flags have all been applied. Useful for
verifying what the server will actually run with.`,
	Run: func(cmd *cobra.Command, _ []string) {
		out, err := yaml.Marshal(GetConfig())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error marshaling configuration: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
