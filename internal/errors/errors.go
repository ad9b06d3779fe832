package errors

import "errors"

// Construction errors indicate a magic square could not be built or transformed.
var (
	// ErrUnsupportedOrder indicates the order/method combination cannot produce a magic square.
	ErrUnsupportedOrder = errors.New("unsupported magic square order")

	// ErrInvalidIndex indicates transformation parameters are out of range for the square's order.
	ErrInvalidIndex = errors.New("transformation index out of range")

	// ErrNoConstructibleOrder indicates no supported order could hold the plaintext.
	ErrNoConstructibleOrder = errors.New("no constructible order for plaintext length")

	// ErrInvalidLayout indicates a layout is not a permutation of 1..n² arranged as a square.
	ErrInvalidLayout = errors.New("invalid square layout")

	// ErrNotMagic indicates a grid violates the row, column or diagonal sums.
	ErrNotMagic = errors.New("grid is not a magic square")
)

// Cipher errors indicate the input text does not fit the key.
var (
	// ErrPlaintextTooLong indicates the plaintext has more characters than the square has cells.
	ErrPlaintextTooLong = errors.New("plaintext too long for key")

	// ErrCiphertextLengthMismatch indicates the ciphertext does not fill the square exactly.
	ErrCiphertextLengthMismatch = errors.New("ciphertext length does not match key")

	// ErrEmptyInput indicates no text was provided.
	ErrEmptyInput = errors.New("empty input")
)

// Key errors indicate issues with key encoding or key files.
var (
	// ErrInvalidKey indicates a key token or key file is malformed.
	ErrInvalidKey = errors.New("invalid cipher key")

	// ErrKeyNotFound indicates a key file could not be located.
	ErrKeyNotFound = errors.New("cipher key not found")

	// ErrKeyExists indicates a key file already exists at the target path.
	ErrKeyExists = errors.New("cipher key already exists")

	// ErrSealedKey indicates the key file is sealed and no passphrase was given.
	ErrSealedKey = errors.New("cipher key is sealed with a passphrase")

	// ErrUnsealFailed indicates the passphrase did not open the sealed key.
	ErrUnsealFailed = errors.New("failed to unseal cipher key")
)

// Audit errors indicate issues reading the audit log.
var (
	// ErrNoAuditLog indicates no audit log exists yet.
	ErrNoAuditLog = errors.New("no audit log found")

	// ErrInvalidDateFormat indicates a date filter could not be parsed.
	ErrInvalidDateFormat = errors.New("invalid date format")
)
