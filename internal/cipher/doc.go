// Package cipher encrypts and decrypts text with a magic square key.
//
// The plaintext is padded to fill the square, then each cell receives the
// plaintext character whose 1-based position equals the cell's value:
//
//	ciphertext[cell] = plaintext[value(cell) - 1]
//
// Cells are read in row-major order. Decryption applies the inverse
// permutation and strips the trailing run of padding characters. Interior
// padding characters are kept.
//
// Both directions rebuild the grid from the key on every call, so a key can
// be shared by concurrent callers.
package cipher
