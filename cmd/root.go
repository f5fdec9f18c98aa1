package cmd

import (
	"fmt"
	"os"
	"strings"

	"hellotutor/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hellotutor",
	Short: "A tutorial HTTP greeting service with a diagnostic subsystem",
	Long: `Hellotutor is a small HTTP greeting service built to demonstrate
production-style diagnostics in a minimal setting.

The service supports:
- A /hello route with an optional name path segment
- Structured, level-filtered logging with correlation IDs
- A closed error taxonomy with recoverability classification
- Educational error responses with guidance for learners
- Coordinated process recovery with graceful termination`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "json", "Log format (json, text)")
	rootCmd.PersistentFlags().String("environment", "", "Runtime environment (development, production, educational)")

	// Bind flags to viper
	if err := viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-level flag: %v\n", err)
	}
	if err := viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-format flag: %v\n", err)
	}
	if err := viper.BindPFlag("diagnostics.environment", rootCmd.PersistentFlags().Lookup("environment")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding environment flag: %v\n", err)
	}
}

func initConfig() {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Set config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// Environment variables
	v.SetEnvPrefix("HELLOTUTOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read configuration
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
		// Config file not found; use defaults and environment
	}

	// Load configuration
	cfg = config.New(v)
}

func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.read_timeout", "10s")
	v.SetDefault("api.write_timeout", "10s")
	v.SetDefault("api.enable_default_middleware", true)

	// Diagnostics defaults
	v.SetDefault("diagnostics.environment", config.EnvDevelopment)
	v.SetDefault("diagnostics.verbose_error_creation", false)
	v.SetDefault("diagnostics.exit_grace_delay", "100ms")

	// Logging defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.tutorial_prefix", "")
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	return cfg
}
