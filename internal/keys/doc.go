// Package keys generates and encodes sator cipher keys.
//
// A CipherKey is a recipe rather than a grid: the order, the construction
// method, the padding character and the ordered list of transformations
// applied to the base square. Replaying the recipe (Square) rebuilds the
// exact grid used when the key was generated, for encryption and decryption
// alike. Transformations are always replayed forward in recorded order.
//
// # Generation
//
// Generate picks the smallest constructible order that can hold the
// plaintext, builds the base square and scrambles it with randomly drawn
// transformations:
//
//	key, err := keys.Generate(len(text), '_', 16, keys.NewRandomSource())
//
// The random source is injected so tests can use a seeded generator.
//
// # Encodings
//
// Keys travel in two forms:
//
//   - Token: a single line, e.g. sator1/5/siamese/95/cw,outer3,rows1-2
//   - Key file: a TOML document, optionally sealed with a passphrase
//     using scrypt and NaCl secretbox
//
// Layout exports the scrambled grid itself as "/"-joined values.
package keys
