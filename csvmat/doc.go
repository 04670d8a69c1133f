// Package csvmat parses and serializes the tabular notation: one array
// per document, comma-delimited cells, one physical line per row, no
// header.
//
// 🚀 What is csvmat?
//
//	The tabular form is the only notation that distinguishes row from
//	column vectors, and it does so by line structure alone:
//		• a one-dimensional grid on a single physical line  → 1×N row
//		• a one-dimensional grid across several lines       → N×1 column
//		• anything else keeps its rows×cols shape as read
//
// ✨ Behavior highlights:
//
//   - Cells are numeric only: non-finite values are the bare lowercase
//     literals nan, inf, -inf, parsed by the standard float path (no
//     notation token table)
//   - A document with zero cells fails ErrEmptyInput — unlike the other
//     codecs, an empty tabular document is an error, because the format
//     carries exactly one array
//   - A wrong delimiter is indistinguishable from one malformed wide
//     cell and fails the same way (numfmt.ErrInvalidNumber)
//
// Errors: ErrEmptyInput, numfmt.ErrInvalidNumber, marray.ErrRaggedRow,
// marray.ErrUnsupportedRank.
package csvmat
