package cmd

import (
	"github.com/spf13/cobra"
)

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage affine configuration",
	Long: `Provides commands for managing the user configuration file.

The configuration holds the default keys used when -a and -b are not given,
history settings, and display settings.

Examples:
  # Write a config file with the default settings
  affine config init

  # Show the current settings
  affine config show

  # Change the default keys
  affine config set-keys 7 3`,
}

func init() {
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configSetKeysCmd)
}

// resetConfigCommandState resets the config commands' global state for testing.
func resetConfigCommandState() {
	configShowJSON = false
	configInitForce = false
}
