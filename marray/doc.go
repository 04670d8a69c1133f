// Package marray defines the shared in-memory array model for the
// iomatrix codecs: an immutable, rectangular 1-D or 2-D array of
// float64 values in row-major order.
//
// 🚀 What is marray?
//
//	Every codec in iomatrix parses into and serializes from the same
//	artifact, a *Matrix:
//		• dimension is exactly 1 (vector of length N) or 2 (rows×cols)
//		• every row of a 2-D array has identical length — never jagged
//		• element count always equals the product of the shape
//
// ✨ Guarantees:
//
//   - Immutable once constructed: accessors copy, nothing mutates
//   - Codecs return freshly owned instances — safe across goroutines
//   - Typed sentinel errors (ErrRaggedRow, ErrUnsupportedRank, ...)
//     matched via errors.Is; constructors never panic on user input
//
// Construction happens either directly (NewVector, NewFromRows) or
// inside a codec's parse operation. The zero value of Matrix has
// dimension 0 and is rejected by every codec with ErrUnsupportedRank.
package marray
