package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/PolarWolf314/sator/internal/ui"
	"github.com/PolarWolf314/sator/internal/utils"
	"github.com/PolarWolf314/sator/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	encryptIn              string
	encryptOut             string
	encryptKey             string
	encryptToken           string
	encryptKeyOut          string
	encryptPadding         string
	encryptTransforms      int
	encryptSeal            bool
	encryptPassphraseStdin bool
)

func init() {
	encryptCmd.Flags().StringVar(&encryptIn, "in", "", "read plaintext from file (- for stdin)")
	encryptCmd.Flags().StringVarP(&encryptOut, "out", "o", "", "write ciphertext to file")
	encryptCmd.Flags().StringVarP(&encryptKey, "key", "k", "", "key file path or key ID")
	encryptCmd.Flags().StringVar(&encryptToken, "token", "", "key token")
	encryptCmd.Flags().StringVar(&encryptKeyOut, "key-out", "", "where to save a generated key")
	encryptCmd.Flags().StringVar(&encryptPadding, "padding", "", "padding character for a generated key")
	encryptCmd.Flags().IntVar(&encryptTransforms, "transforms", 0, "number of transformations for a generated key")
	encryptCmd.Flags().BoolVar(&encryptSeal, "seal", false, "seal a generated key with a passphrase")
	encryptCmd.Flags().BoolVar(&encryptPassphraseStdin, "passphrase-stdin", false, "read the passphrase from the first line of stdin")
}

// resetEncryptCommandState resets the encrypt command's global state for testing.
func resetEncryptCommandState() {
	encryptIn = ""
	encryptOut = ""
	encryptKey = ""
	encryptToken = ""
	encryptKeyOut = ""
	encryptPadding = ""
	encryptTransforms = 0
	encryptSeal = false
	encryptPassphraseStdin = false
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt [text]",
	Short: "Encrypts text with a magic square key",
	Long: `Encrypts text by placing its characters on the cells of a scrambled
magic square.

Without --key or --token a new key sized for the text is generated and saved
to the keys directory. Its token is printed so the message can be decrypted
without the key file.

Examples:
  sator encrypt "meet me at noon"             # Generate a key and encrypt
  sator encrypt --key 3f2c... "meet me"       # Encrypt with a saved key
  sator encrypt --in message.txt -o out.txt   # Read and write files
  echo "meet me" | sator encrypt --seal       # Seal the generated key`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEncrypt,
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting encrypt command")

	if encryptPassphraseStdin && textFromStdin(args, encryptIn) {
		return formatError(fmt.Errorf("--passphrase-stdin needs the text as an argument or with --in FILE"))
	}

	text, err := readText(args, encryptIn)
	if err != nil {
		return formatError(err)
	}
	Logger.Debugf("Read %d bytes of plaintext", len(text))

	padding, err := parsePadding(encryptPadding)
	if err != nil {
		return formatError(err)
	}

	opts := workflows.EncryptOptions{
		Text: text,
		Key: workflows.KeySource{
			Ref:        encryptKey,
			Token:      encryptToken,
			Passphrase: passphrasePrompt("Key passphrase: ", encryptPassphraseStdin),
		},
		Generate: workflows.GenerateKeyOptions{
			Padding:    padding,
			OutputPath: encryptKeyOut,
		},
	}
	if cmd.Flags().Changed("transforms") {
		opts.Generate.Transforms = &encryptTransforms
	}
	if encryptSeal {
		pass, err := newPassphrase(encryptPassphraseStdin)
		if err != nil {
			return formatError(err)
		}
		opts.Generate.Seal = pass
	}

	// Passphrase prompts need the terminal, so the spinner starts afterwards.
	spinner, cleanup := startSpinner("Encrypting...", verbose)
	defer cleanup()

	result, err := workflows.Encrypt(context.Background(), opts)
	if err != nil {
		Logger.Errorf("Encrypt failed: %v", err)
		return formatError(err)
	}
	if !result.Generated {
		warnLoosePermissions(result.KeyPath)
	}
	Logger.Infof("Encrypted %d characters with key %s (order %d)", len([]rune(text)), result.Key.ID, result.Key.Order)

	if err := writeText(result.Ciphertext, encryptOut); err != nil {
		return formatError(err)
	}

	var msg strings.Builder
	if result.Key.ID != "" {
		msg.WriteString(ui.Success.Sprint("✓") + " Encrypted with key " + ui.Highlight.Sprint(result.Key.ID))
	} else {
		msg.WriteString(ui.Success.Sprint("✓") + " Encrypted with token key")
	}
	var written []string
	if result.Generated {
		written = append(written, result.KeyPath)
	}
	if encryptOut != "" {
		written = append(written, encryptOut)
	}
	if len(written) > 0 {
		msg.WriteString("\nThe following files were created: " + strings.TrimSuffix(utils.FormatPaths(written), "\n"))
	}
	if result.Generated {
		if len(opts.Generate.Seal) > 0 {
			msg.WriteString("\n" + ui.Info.Sprint("→") + " The key file is sealed with your passphrase")
		}
		msg.WriteString("\n" + ui.Info.Sprint("→") + " Token " + ui.Secret.Sprint(result.Key.Token()))
	}
	spinner.FinalMSG = msg.String()
	return nil
}
