package cmd

import (
	"errors"

	serrors "github.com/PolarWolf314/sator/internal/errors"
	"github.com/PolarWolf314/sator/internal/ui"
)

// commandError carries a message formatted for the terminal while keeping
// the underlying error available to errors.Is.
type commandError struct {
	msg string
	err error
}

func (e *commandError) Error() string { return e.msg }
func (e *commandError) Unwrap() error { return e.err }

// formatError wraps err with a user-facing message and hint.
func formatError(err error) error {
	if err == nil {
		return nil
	}
	var already *commandError
	if errors.As(err, &already) {
		return err
	}
	return &commandError{msg: describeError(err), err: err}
}

func describeError(err error) string {
	fail := ui.Error.Sprint("✗") + " "
	hint := "\n" + ui.Info.Sprint("→") + " "

	switch {
	case errors.Is(err, serrors.ErrPlaintextTooLong):
		return fail + "The text does not fit in the key's square: " + err.Error() +
			hint + "Omit " + ui.Flag.Sprint("--key") + " to generate a key sized for the text"

	case errors.Is(err, serrors.ErrCiphertextLengthMismatch):
		return fail + "The ciphertext does not fill the key's square: " + err.Error() +
			hint + "Check that this text was encrypted with this key"

	case errors.Is(err, serrors.ErrKeyNotFound):
		return fail + "Key not found: " + err.Error() +
			hint + "Run " + ui.Code.Sprint("sator key list") + " to see saved keys"

	case errors.Is(err, serrors.ErrKeyExists):
		return fail + "A key file already exists: " + err.Error() +
			hint + "Use " + ui.Flag.Sprint("--force") + " to overwrite it"

	case errors.Is(err, serrors.ErrSealedKey):
		return fail + "The key file is sealed with a passphrase" +
			hint + "Run from a terminal or pass " + ui.Flag.Sprint("--passphrase-stdin")

	case errors.Is(err, serrors.ErrUnsealFailed):
		return fail + "Could not unseal the key file. Is the passphrase correct?"

	case errors.Is(err, serrors.ErrInvalidKey):
		return fail + "Invalid key: " + err.Error()

	case errors.Is(err, serrors.ErrInvalidLayout), errors.Is(err, serrors.ErrNotMagic):
		return fail + "Invalid layout: " + err.Error() +
			hint + "A layout lists every value 1..n² row by row, joined with " + ui.Code.Sprint("/")

	case errors.Is(err, serrors.ErrUnsupportedOrder), errors.Is(err, serrors.ErrInvalidIndex):
		return fail + err.Error()

	case errors.Is(err, serrors.ErrNoConstructibleOrder):
		return fail + "The text is too long to encrypt: " + err.Error()

	case errors.Is(err, serrors.ErrEmptyInput):
		return fail + "No text to process" +
			hint + "Pass the text as an argument, with " + ui.Flag.Sprint("--in") + " or on stdin"

	case errors.Is(err, serrors.ErrInvalidDateFormat):
		return fail + err.Error()

	default:
		return fail + err.Error()
	}
}
