// Package magic builds and transforms magic squares.
//
// A magic square of order n holds every integer in 1..n² exactly once and
// every row, column and main diagonal sums to the magic constant
// n·(n²+1)/2. Squares are the key material of the sator cipher: a cell's
// value names the plaintext position that lands in that cell.
//
// # Construction
//
// Two methods are supported, selected by the order:
//
//   - Siamese: odd orders. Values step diagonally up and to the right,
//     dropping one row when the target cell is taken.
//   - GenericDoublyEven: orders divisible by 4. The square is filled in
//     natural order and the cells on the diagonals of every 4×4 block are
//     complemented (v becomes n²+1-v).
//
// Singly-even orders (n ≡ 2 mod 4) are rejected with ErrUnsupportedOrder.
//
// # Transformations
//
// A Transformation rearranges a square without breaking the magic
// invariants:
//
//	sq, _ := magic.Build(5, magic.Siamese)
//	_ = magic.Apply(sq, magic.Transformation{Kind: magic.RotateCW})
//	_ = magic.Apply(sq, magic.RowPairSwap(1, 2))
//
// Every transformation has an inverse (Inverse), so a sequence can be
// undone by applying the inverses in reverse order.
package magic
