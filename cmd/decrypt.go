package cmd

import (
	"context"
	"fmt"
	"os"

	serrors "github.com/PolarWolf314/sator/internal/errors"
	"github.com/PolarWolf314/sator/internal/ui"
	"github.com/PolarWolf314/sator/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	decryptIn              string
	decryptOut             string
	decryptKey             string
	decryptToken           string
	decryptLayout          string
	decryptPadding         string
	decryptPassphraseStdin bool
)

func init() {
	decryptCmd.Flags().StringVar(&decryptIn, "in", "", "read ciphertext from file (- for stdin)")
	decryptCmd.Flags().StringVarP(&decryptOut, "out", "o", "", "write plaintext to file")
	decryptCmd.Flags().StringVarP(&decryptKey, "key", "k", "", "key file path or key ID")
	decryptCmd.Flags().StringVar(&decryptToken, "token", "", "key token")
	decryptCmd.Flags().StringVar(&decryptLayout, "layout", "", "square layout (values joined with /) to use instead of a key")
	decryptCmd.Flags().StringVar(&decryptPadding, "padding", "", "padding character stripped from a layout decryption")
	decryptCmd.Flags().BoolVar(&decryptPassphraseStdin, "passphrase-stdin", false, "read the key passphrase from the first line of stdin")
}

// resetDecryptCommandState resets the decrypt command's global state for testing.
func resetDecryptCommandState() {
	decryptIn = ""
	decryptOut = ""
	decryptKey = ""
	decryptToken = ""
	decryptLayout = ""
	decryptPadding = ""
	decryptPassphraseStdin = false
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt [text]",
	Short: "Decrypts text encrypted with a magic square key",
	Long: `Decrypts ciphertext produced by 'sator encrypt'.

The key is given as a key file or ID (--key), a token (--token) or the
square's layout (--layout). Trailing padding is removed from the result.

Examples:
  sator decrypt --key 3f2c... "e_m te..."
  sator decrypt --token sator1/3/siamese/95/ "_A_C____B"
  sator decrypt --layout 8/1/6/3/5/7/4/9/2 --in secret.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecrypt,
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting decrypt command")

	if decryptPassphraseStdin && textFromStdin(args, decryptIn) {
		return formatError(fmt.Errorf("--passphrase-stdin needs the text as an argument or with --in FILE"))
	}

	text, err := readText(args, decryptIn)
	if err != nil {
		return formatError(err)
	}
	if text == "" {
		return formatError(serrors.ErrEmptyInput)
	}

	padding, err := parsePadding(decryptPadding)
	if err != nil {
		return formatError(err)
	}

	opts := workflows.DecryptOptions{
		Text: text,
		Key: workflows.KeySource{
			Ref:        decryptKey,
			Token:      decryptToken,
			Passphrase: passphrasePrompt("Key passphrase: ", decryptPassphraseStdin),
		},
		Layout:  decryptLayout,
		Padding: padding,
	}

	result, err := workflows.Decrypt(context.Background(), opts)
	if err != nil {
		Logger.Errorf("Decrypt failed: %v", err)
		return formatError(err)
	}

	warnLoosePermissions(result.KeyPath)
	Logger.Infof("Decrypted %d characters", len([]rune(result.Plaintext)))

	if err := writeText(result.Plaintext, decryptOut); err != nil {
		return formatError(err)
	}
	if decryptOut != "" {
		fmt.Fprintln(os.Stderr, ui.Success.Sprint("✓")+" Plaintext written to "+ui.Path.Sprint(decryptOut))
	}
	return nil
}
