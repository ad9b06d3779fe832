package cmd

import (
	"fmt"
	"os"

	serrors "github.com/PolarWolf314/sator/internal/errors"
	"github.com/PolarWolf314/sator/internal/ui"
	"github.com/PolarWolf314/sator/internal/utils"
	"github.com/PolarWolf314/sator/internal/workflows"
)

// readText returns the command's input text: the first argument, the
// contents of inPath ("-" for stdin), or stdin when neither is given. A
// single trailing newline is dropped from file and stdin input.
func readText(args []string, inPath string) (string, error) {
	if len(args) > 0 && inPath != "" {
		return "", fmt.Errorf("give the text as an argument or with --in, not both")
	}
	if len(args) > 0 {
		return args[0], nil
	}
	if inPath == "" {
		inPath = "-"
	}

	Logger.Debugf("Reading input from %s", inPath)
	data, err := utils.ReadInput(inPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", serrors.ErrEmptyInput, err)
	}
	return utils.TrimFinalNewline(string(data)), nil
}

// textFromStdin reports whether readText would consume stdin.
func textFromStdin(args []string, inPath string) bool {
	return len(args) == 0 && (inPath == "" || inPath == "-")
}

// writeText prints text to stdout, or writes it to outPath when set.
func writeText(text, outPath string) error {
	if outPath == "" {
		fmt.Println(text)
		return nil
	}
	Logger.Debugf("Writing output to %s", outPath)
	if err := os.WriteFile(outPath, []byte(text), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}

// warnLoosePermissions warns when a key file can be read by other users.
func warnLoosePermissions(path string) {
	if path == "" {
		return
	}
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if perm := info.Mode().Perm(); perm&0077 != 0 {
		Logger.WarnfAlways("Key file %s has overly permissive permissions (%o), consider running %s",
			path, perm, ui.Code.Sprintf("chmod 600 %s", path))
	}
}

// passphrasePrompt returns a PassphraseFunc reading from stdin when
// fromStdin is set and from the terminal otherwise.
func passphrasePrompt(prompt string, fromStdin bool) workflows.PassphraseFunc {
	return func() ([]byte, error) {
		if fromStdin {
			line, err := utils.ReadLine(os.Stdin)
			if err != nil {
				return nil, err
			}
			return []byte(line), nil
		}
		return utils.ReadPassphrase(prompt)
	}
}

// newPassphrase reads the passphrase for sealing a new key. Terminal input
// is asked for twice.
func newPassphrase(fromStdin bool) ([]byte, error) {
	pass, err := passphrasePrompt("Passphrase: ", fromStdin)()
	if err != nil {
		return nil, err
	}
	if len(pass) == 0 {
		return nil, fmt.Errorf("passphrase must not be empty")
	}
	if fromStdin {
		return pass, nil
	}

	again, err := utils.ReadPassphrase("Repeat passphrase: ")
	if err != nil {
		return nil, err
	}
	if string(again) != string(pass) {
		return nil, fmt.Errorf("passphrases do not match")
	}
	return pass, nil
}

// parsePadding converts a --padding value to a rune. Empty means "use the
// configured default" and yields 0.
func parsePadding(value string) (rune, error) {
	runes := []rune(value)
	switch len(runes) {
	case 0:
		return 0, nil
	case 1:
		if runes[0] == 0 {
			return 0, fmt.Errorf("padding must not be NUL")
		}
		return runes[0], nil
	}
	return 0, fmt.Errorf("padding must be a single character, got %q", value)
}
