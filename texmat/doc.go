// Package texmat parses and serializes the typeset (LaTeX) matrix
// notation: blocks of the form \begin{env} ... \end{env} where env is
// one of the five equivalent bracket environments.
//
// 🚀 What is texmat?
//
//	The five environments — matrix, pmatrix, bmatrix, vmatrix, Vmatrix —
//	differ only in the bracket glyphs a renderer draws; their internal
//	row/column syntax is identical: rows separated by \\, cells by &.
//	texmat extracts every such block from a larger document (prose and
//	% line comments are tolerated) and renders arrays back into any of
//	the five environments.
//
// ✨ Behavior highlights:
//
//   - Scanning is plain string matching — no regular expressions, no
//     lookahead; blocks are non-nested and non-overlapping, and an end
//     marker only closes a begin marker carrying the same name
//   - All matched blocks come back in source order; a document with no
//     blocks yields an empty slice, not an error
//   - NaN renders as \mathrm{NaN}, ±Inf as \infty / -\infty, and all
//     three parse back exactly
//
// ⚙️ Usage:
//
//	arrays, err := texmat.Parse(doc)
//	out, err := texmat.Serialize(m, texmat.EnvBracket, numfmt.DefaultSpec())
//
// Errors: ErrInvalidEnvironment (serialize only — parsing accepts all
// five names and skips everything else), marray.ErrRaggedRow,
// marray.ErrUnsupportedRank, numfmt.ErrInvalidNumber.
package texmat
