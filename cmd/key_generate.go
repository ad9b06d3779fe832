package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/sator/internal/ui"
	"github.com/PolarWolf314/sator/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	keyGenLength          int
	keyGenPadding         string
	keyGenTransforms      int
	keyGenOut             string
	keyGenForce           bool
	keyGenSeal            bool
	keyGenPassphraseStdin bool
)

func init() {
	keyGenerateCmd.Flags().IntVarP(&keyGenLength, "length", "l", 0, "number of characters the key must hold")
	keyGenerateCmd.Flags().StringVar(&keyGenPadding, "padding", "", "padding character")
	keyGenerateCmd.Flags().IntVar(&keyGenTransforms, "transforms", 0, "number of random transformations")
	keyGenerateCmd.Flags().StringVarP(&keyGenOut, "out", "o", "", "key file path (defaults to the keys directory)")
	keyGenerateCmd.Flags().BoolVarP(&keyGenForce, "force", "f", false, "overwrite an existing key file")
	keyGenerateCmd.Flags().BoolVar(&keyGenSeal, "seal", false, "seal the key file with a passphrase")
	keyGenerateCmd.Flags().BoolVar(&keyGenPassphraseStdin, "passphrase-stdin", false, "read the passphrase from the first line of stdin")
	_ = keyGenerateCmd.MarkFlagRequired("length")
}

func resetKeyGenerateState() {
	keyGenLength = 0
	keyGenPadding = ""
	keyGenTransforms = 0
	keyGenOut = ""
	keyGenForce = false
	keyGenSeal = false
	keyGenPassphraseStdin = false
}

var keyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a key for a message length",
	Long: `Generates a random key whose square holds at least --length characters.

The square order is the smallest constructible order n with n² >= length.
Padding and transformation count default to the values in your config.

Examples:
  sator key generate --length 40
  sator key generate --length 40 --transforms 64 --padding '*'
  sator key generate --length 40 --seal -o ~/secret.satorkey`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting key generate command")
		Logger.Debugf("Flags: length=%d, padding=%q, out=%q, seal=%t", keyGenLength, keyGenPadding, keyGenOut, keyGenSeal)

		if keyGenLength < 0 {
			return formatError(fmt.Errorf("--length must not be negative"))
		}
		padding, err := parsePadding(keyGenPadding)
		if err != nil {
			return formatError(err)
		}

		opts := workflows.GenerateKeyOptions{
			Length:     keyGenLength,
			Padding:    padding,
			OutputPath: keyGenOut,
			Force:      keyGenForce,
		}
		if cmd.Flags().Changed("transforms") {
			opts.Transforms = &keyGenTransforms
		}
		if keyGenSeal {
			pass, err := newPassphrase(keyGenPassphraseStdin)
			if err != nil {
				return formatError(err)
			}
			opts.Seal = pass
		}

		spinner, cleanup := startSpinner("Generating key...", verbose)
		defer cleanup()

		result, err := workflows.GenerateKey(context.Background(), opts)
		if err != nil {
			Logger.Errorf("Key generation failed: %v", err)
			return formatError(err)
		}
		Logger.Infof("Generated key %s with %d transformations", result.Key.ID, len(result.Key.Transformations))

		msg := ui.Success.Sprint("✓") + " Generated key " + ui.Highlight.Sprint(result.Key.ID) +
			" " + ui.Muted.Sprintf("order %d, %s, holds %d characters", result.Key.Order, result.Key.Method, result.Key.Capacity()) +
			"\n" + ui.Info.Sprint("→") + " Saved to " + ui.Path.Sprint(result.KeyPath)
		if result.Sealed {
			msg += " " + ui.Muted.Sprint("sealed")
		}
		msg += "\n" + ui.Info.Sprint("→") + " Token " + ui.Secret.Sprint(result.Key.Token())
		spinner.FinalMSG = msg
		return nil
	},
}
