package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/sator/internal/configs"
	"github.com/PolarWolf314/sator/internal/ui"
	"github.com/PolarWolf314/sator/internal/workflows"
	"github.com/spf13/cobra"
)

var keyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved keys",
	Long: `Lists the key files in the keys directory, oldest first.

Sealed keys only show their ID until they are opened with a passphrase.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting key list command")
		Logger.Debugf("Keys directory: %s", configs.UserSatorSettings.UserKeysPath)

		summaries, err := workflows.ListKeys(context.Background())
		if err != nil {
			return formatError(err)
		}

		if len(summaries) == 0 {
			fmt.Println(ui.Info.Sprint("ℹ") + " No keys found in " + ui.Path.Sprint(configs.UserSatorSettings.UserKeysPath))
			fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("sator key generate --length N") + " to create one")
			return nil
		}

		for _, s := range summaries {
			switch {
			case s.Err != nil:
				Logger.Warnf("Skipping unreadable key %s: %v", s.Path, s.Err)
				fmt.Printf("%-36s  %s\n", s.ID, ui.Warning.Sprint("unreadable"))
			case s.Sealed:
				fmt.Printf("%-36s  %s\n", s.ID, ui.Muted.Sprint("sealed"))
			default:
				fmt.Printf("%-36s  order %-4d %-12s %3d transforms  %s\n",
					s.ID, s.Order, s.Method, s.Transforms, s.CreatedAt.Local().Format("2006-01-02 15:04"))
			}
		}
		return nil
	},
}
