// Package cmd provides the CLI commands for customer-pricing.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"customer-pricing/core/ui"
	"customer-pricing/internal/config"
	"customer-pricing/internal/logging"
)

// Version is the tool version
const Version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "customer-pricing",
	Short: "Price customer quotes from materials and labor",
	Long: `customer-pricing computes a customer-facing price quote from material and
labor inputs. Commission is a share of profit and profit is a share of the
final price, so the price is resolved to a self-consistent value before it is
printed and rendered as a PDF report.

Examples:
  customer-pricing quote
  customer-pricing quote --config job.yaml --pdf job.pdf
  customer-pricing quote --format json --no-pdf
  customer-pricing config init job.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

// Execute runs the CLI and prints any failure once to stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		ui.NewWriter(rootCmd.ErrOrStderr(), noColor).Error("%v", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "quote file (.json, .yaml, .yml or .hcl); built-in defaults when empty")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig returns the configuration named by --config, or the defaults
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.Load(cfgFile)
}

func initLogging() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if noColor || cfg.Output.NoColor {
		cfg.Logging.NoColor = true
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	return nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "customer-pricing version %s\n", Version)
	},
}
