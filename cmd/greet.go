package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"hellotutor/internal/client"

	"github.com/spf13/cobra"
)

// greetCmd represents the greet command
var greetCmd = &cobra.Command{
	Use:   "greet [name]",
	Short: "Fetch a greeting from a running server",
	Long: `Fetch a greeting from a running hellotutor server. With no argument
the server returns its default greeting; server-side validation failures are
printed with their classification.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGreet,
}

func runGreet(cmd *cobra.Command, args []string) {
	apiClient, err := newAPIClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating client: %v\n", err)
		os.Exit(1)
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	greeting, err := apiClient.GetGreeting(context.Background(), name)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintf(os.Stderr, "Server rejected the request: %v (recoverable=%t)\n",
				apiErr, apiErr.Recoverable)
		} else {
			fmt.Fprintf(os.Stderr, "Request failed: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Fprintln(cmd.OutOrStdout(), greeting.Message)
}

func init() {
	rootCmd.AddCommand(greetCmd)
}
