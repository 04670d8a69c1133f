// Package jsonmat parses and serializes the structured (nested-list)
// notation: a document is a single vector (flat list), a single matrix
// (list of row-lists), or a list of several such arrays.
//
// 🚀 What is jsonmat?
//
//	The notation is JSON-shaped, with one extension inherited from its
//	host format: non-finite values appear as the bare literals NaN,
//	Infinity and -Infinity. Decoding goes through a YAML reader (JSON is
//	a YAML subset), which passes those literals through as strings; the
//	shared numfmt parser then recovers them as float64 specials. The
//	decoded tree is converted exactly once, at the root, into a tagged
//	Number | String | List variant — no duck-typing below that point.
//
// ✨ Behavior highlights:
//
//   - Root disambiguation: the document holds multiple arrays iff every
//     top-level element is a list AND every element of the first
//     top-level element is a list; otherwise the whole root is one array
//   - Parsed arrays are always 2-D (a single-row result is NOT collapsed
//     to a vector — an intentional contrast with csvmat)
//   - Serialization emits precision-reduced values as bare numbers, never
//     strings, and pretty-prints at a caller-configurable indent width
//
// Edge cases pinned by tests (ambiguous in the notation itself): an
// empty root yields zero arrays; [[]] yields one empty array; a root
// mixing list and non-list elements fails ErrMalformedRow.
//
// Errors: ErrMalformedRow, ErrUnsupportedElement, marray.ErrRaggedRow,
// marray.ErrUnsupportedRank, numfmt.ErrInvalidNumber.
package jsonmat
