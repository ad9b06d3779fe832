package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/sator/internal/ui"
	"github.com/PolarWolf314/sator/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	configSetPadding    string
	configSetTransforms int
)

func init() {
	configSetCmd.Flags().StringVar(&configSetPadding, "padding", "", "default padding character")
	configSetCmd.Flags().IntVar(&configSetTransforms, "transforms", 0, "default number of transformations")
}

// resetConfigSetState resets the config set command's global state for testing.
func resetConfigSetState() {
	configSetPadding = ""
	configSetTransforms = 0
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change key generation defaults",
	Long: `Changes the defaults used by 'sator key generate' and by 'sator encrypt'
when it generates a key.

Examples:
  sator config set --padding '.'
  sator config set --transforms 0`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config set command")

		var opts workflows.SetConfigOptions
		if cmd.Flags().Changed("padding") {
			opts.Padding = &configSetPadding
		}
		if cmd.Flags().Changed("transforms") {
			opts.Transforms = &configSetTransforms
		}
		if opts.Padding == nil && opts.Transforms == nil {
			return formatError(fmt.Errorf("nothing to set, use --padding or --transforms"))
		}

		result, err := workflows.SetConfig(context.Background(), opts)
		if err != nil {
			return formatError(err)
		}
		Logger.Debugf("Saved config to %s", result.ConfigPath)

		fmt.Println(ui.Success.Sprint("✓") + " Configuration saved to " + ui.Path.Sprint(result.ConfigPath))
		fmt.Printf("  %-12s %q\n", "Padding:", result.Config.Defaults.Padding)
		fmt.Printf("  %-12s %d\n", "Transforms:", result.Config.Defaults.Transforms)
		return nil
	},
}
