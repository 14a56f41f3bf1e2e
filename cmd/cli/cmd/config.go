// Package cmd - config commands
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"customer-pricing/core/ui"
	"customer-pricing/internal/config"
	"customer-pricing/internal/errors"
)

var forceInit bool

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage quote configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default quote configuration",
	Long: `Write the built-in quote configuration to a file that can be edited and
passed back with --config. The format follows the extension (.json, .yaml, .yml).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := "customer-pricing.yaml"
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !forceInit {
		return errors.Inputf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.Default().Save(path); err != nil {
		return err
	}

	ui.NewWriter(cmd.OutOrStdout(), true).Success("Wrote %s", path)
	return nil
}
