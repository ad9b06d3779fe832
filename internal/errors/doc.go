// Package errors provides typed error values for sator.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Construction errors: the square cannot be built or transformed
//     (ErrUnsupportedOrder, ErrInvalidIndex, ErrNoConstructibleOrder)
//   - Cipher errors: the text does not fit the key (ErrPlaintextTooLong,
//     ErrCiphertextLengthMismatch)
//   - Key errors: malformed or missing key material (ErrInvalidKey,
//     ErrKeyNotFound, ErrSealedKey)
//   - Audit errors: the audit log is missing or a filter is malformed
//
// # Usage
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("%w: order %d with %s", errors.ErrUnsupportedOrder, order, method)
//
// Handle errors in the CLI layer:
//
//	if errors.Is(err, serrors.ErrPlaintextTooLong) {
//	    // Show user-friendly message
//	}
package errors
