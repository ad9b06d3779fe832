package cmd

import (
	"github.com/spf13/cobra"
)

// KeyCmd is the top-level key command.
var KeyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage cipher keys",
	Long: `Provides commands for generating and inspecting cipher keys.

Keys are saved as TOML files in the keys directory and can be referred to
by path or by ID.

Examples:
  # Generate a key for messages up to 100 characters
  sator key generate --length 100

  # List saved keys
  sator key list

  # Show a key and its square
  sator key show 3f2c... --square`,
}

func init() {
	KeyCmd.AddCommand(keyGenerateCmd)
	KeyCmd.AddCommand(keyShowCmd)
	KeyCmd.AddCommand(keyListCmd)
}

// resetKeyCommandState resets the key commands' global state for testing.
func resetKeyCommandState() {
	resetKeyGenerateState()
	resetKeyShowState()
}
