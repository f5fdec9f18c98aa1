package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"hellotutor/internal/client"

	"github.com/spf13/cobra"
)

const healthcheckTimeout = 5 * time.Second

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Probe a running server's health endpoint",
	Long: `Probe the /health endpoint of a running hellotutor server and report
its status. Exits non-zero when the server is unreachable or unhealthy,
which makes this suitable as a container health probe.`,
	Run: runHealthcheck,
}

func runHealthcheck(cmd *cobra.Command, _ []string) {
	apiClient, err := newAPIClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating client: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), healthcheckTimeout)
	defer cancel()

	health, err := apiClient.GetHealth(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Health check failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "status=%s version=%s uptime=%ds\n",
		health.Status, health.Version, health.UptimeSeconds)

	if health.Status != "healthy" {
		os.Exit(1)
	}
}

func newAPIClient() (*client.Client, error) {
	config, err := client.LoadConfig()
	if err != nil {
		return nil, err
	}
	return client.NewClient(&config)
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
}
