package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/sator/internal/ui"
	"github.com/PolarWolf314/sator/internal/workflows"
	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Long: `Displays the user configuration and where Sator keeps its files.

Examples:
  sator config show
  sator config show --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")

		result, err := workflows.ShowConfig(context.Background())
		if err != nil {
			return formatError(fmt.Errorf("failed to load user config: %w", err))
		}

		if configShowJSON {
			output := map[string]interface{}{
				"user_uuid":   result.Config.User.UUID,
				"padding":     result.Config.Defaults.Padding,
				"transforms":  result.Config.Defaults.Transforms,
				"config_path": result.ConfigPath,
				"keys_path":   result.KeysPath,
			}
			data, err := json.MarshalIndent(output, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal config to JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Println(ui.Info.Sprint("User Configuration") + " " + ui.Muted.Sprint(result.ConfigPath))
		fmt.Println()
		fmt.Printf("  %-12s %s\n", "User ID:", result.Config.User.UUID)
		fmt.Printf("  %-12s %q\n", "Padding:", result.Config.Defaults.Padding)
		fmt.Printf("  %-12s %d\n", "Transforms:", result.Config.Defaults.Transforms)
		fmt.Printf("  %-12s %s\n", "Keys:", ui.Path.Sprint(result.KeysPath))
		return nil
	},
}
