// Package workflows provides high-level orchestration for sator commands.
//
// Workflows tie the cipher core (magic, keys, cipher) to configuration,
// key files and the audit log. Each command has one workflow, independent
// of CLI concerns like flag parsing, spinners and output formatting.
//
// # Available Workflows
//
//   - GenerateKey: generates a key for a text length and saves it
//   - Encrypt: encrypts text with a key file, a token or a new key
//   - Decrypt: decrypts text with a key file, a token or a raw layout
//   - ListKeys / ShowKey: inspect saved keys
//   - BuildSquare: builds and transforms a square for display
//   - ShowConfig / SetConfig: read and change defaults
//   - Log: reads and filters the audit log
//
// # Error Handling
//
// Workflows return errors wrapping the sentinels in internal/errors, so the
// CLI layer can pick a message with errors.Is:
//
//	result, err := workflows.Decrypt(ctx, opts)
//	if errors.Is(err, serrors.ErrCiphertextLengthMismatch) {
//	    // Show user-friendly message
//	}
package workflows
