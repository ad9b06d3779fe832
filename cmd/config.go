package cmd

import (
	"github.com/spf13/cobra"
)

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage Sator configuration",
	Long: `Provides commands for viewing and changing the defaults used when
generating keys.

Examples:
  # Show the current configuration
  sator config show

  # Use '*' as padding and 32 transformations for new keys
  sator config set --padding '*' --transforms 32`,
}

func init() {
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configSetCmd)
}

// resetConfigCommandState resets all config command global variables for testing.
func resetConfigCommandState() {
	resetConfigShowState()
	resetConfigSetState()
}
