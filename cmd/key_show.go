package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/sator/internal/ui"
	"github.com/PolarWolf314/sator/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	keyShowToken           string
	keyShowSquare          bool
	keyShowLayout          bool
	keyShowPassphraseStdin bool
)

func init() {
	keyShowCmd.Flags().StringVar(&keyShowToken, "token", "", "show a key given as a token")
	keyShowCmd.Flags().BoolVar(&keyShowSquare, "square", false, "print the key's scrambled square")
	keyShowCmd.Flags().BoolVar(&keyShowLayout, "layout", false, "print only the square layout")
	keyShowCmd.Flags().BoolVar(&keyShowPassphraseStdin, "passphrase-stdin", false, "read the key passphrase from the first line of stdin")
}

func resetKeyShowState() {
	keyShowToken = ""
	keyShowSquare = false
	keyShowLayout = false
	keyShowPassphraseStdin = false
}

var keyShowCmd = &cobra.Command{
	Use:   "show [key]",
	Short: "Show a key's details",
	Long: `Shows the recipe stored in a key: the square order, the construction
method, the padding character and the transformations.

The key is a file path, a key ID or a token given with --token. Use --layout
to export the scrambled square for 'sator decrypt --layout'.

Examples:
  sator key show 3f2c...
  sator key show ./mine.satorkey --square
  sator key show --token sator1/4/doubly-even/95/cw,rows1-2 --layout`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting key show command")

		src := workflows.KeySource{
			Token:      keyShowToken,
			Passphrase: passphrasePrompt("Key passphrase: ", keyShowPassphraseStdin),
		}
		if len(args) > 0 {
			src.Ref = args[0]
		}

		result, err := workflows.ShowKey(context.Background(), src)
		if err != nil {
			Logger.Errorf("Failed to load key: %v", err)
			return formatError(err)
		}

		if keyShowLayout {
			fmt.Println(result.Layout)
			return nil
		}

		key := result.Key
		if key.ID != "" {
			fmt.Printf("%-12s %s\n", "ID", ui.Highlight.Sprint(key.ID))
		}
		if result.KeyPath != "" {
			fmt.Printf("%-12s %s\n", "Path", ui.Path.Sprint(result.KeyPath))
		}
		fmt.Printf("%-12s %d\n", "Order", key.Order)
		fmt.Printf("%-12s %s\n", "Method", key.Method)
		fmt.Printf("%-12s %d characters\n", "Capacity", key.Capacity())
		fmt.Printf("%-12s %q\n", "Padding", string(key.Padding))
		fmt.Printf("%-12s %d\n", "Transforms", len(key.Transformations))
		if !key.CreatedAt.IsZero() {
			fmt.Printf("%-12s %s\n", "Created", key.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		}
		fmt.Printf("%-12s %s\n", "Token", ui.Secret.Sprint(result.Token))

		if keyShowSquare {
			fmt.Println()
			fmt.Print(ui.FormatGrid(result.Square.Rows(), result.Square.MagicConstant()))
		}
		return nil
	},
}
