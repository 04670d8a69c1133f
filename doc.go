// Package iomatrix converts numeric matrices and vectors between three
// textual notations — typeset (LaTeX), structured (JSON nested lists) and
// tabular (CSV) — preserving values, including NaN and ±Inf, across
// round trips.
//
// 🚀 What is iomatrix?
//
//	A small, deterministic conversion library built around one shared
//	in-memory artifact:
//		• marray  — immutable rectangular 1-D/2-D float64 arrays
//		• numfmt  — one numeric formatting/parsing policy for every codec
//		• texmat  — LaTeX matrix environments (matrix, pmatrix, bmatrix, vmatrix, Vmatrix)
//		• jsonmat — nested-list documents (single array or list of arrays)
//		• csvmat  — comma-delimited lines with a row/column shape heuristic
//
// ✨ Why choose iomatrix?
//
//   - Lossless up to a configurable significant-digit precision
//   - One special-value convention per notation, agreed on by all codecs
//   - Pure functions over immutable inputs — safe to call concurrently
//   - Typed sentinel errors, matched with errors.Is; no panics on input
//
// Every parse consumes a whole document and returns either complete
// results or a single typed error; no partial arrays ever escape.
//
// Quick example:
//
//	arrays, err := texmat.Parse(`\begin{bmatrix}1 & 2 \\ 3 & 4\end{bmatrix}`)
//	if err != nil { ... }
//	out, err := csvmat.Serialize(arrays[0], numfmt.DefaultSpec())
//	// out == "1,2\n3,4\n"
//
// The cmd/iomatrix binary wires the codecs to files, dispatching by
// extension (.tex, .json, .csv).
//
//	go get github.com/katalvlaran/iomatrix
package iomatrix
