// Package numfmt is the single numeric formatting and parsing policy
// shared by every iomatrix codec.
//
// 🚀 What is numfmt?
//
//	Round-trip fidelity requires all three notations to agree on how a
//	scalar is rendered and recovered, even though each embeds special
//	values differently (\infty vs Infinity vs inf). numfmt centralizes:
//		• Spec    — closed precision policy: significant digits or fixed decimals
//		• Tokens  — per-notation spellings for NaN and ±Inf
//		• Parse   — one parser for decimals, scientific notation and the
//		            canonical special tokens (case-insensitive)
//
// ✨ Design notes:
//
//   - Precision styles form a closed enum mapped directly onto
//     strconv.FormatFloat verbs — no format-string rewriting anywhere
//   - DefaultPrecision (3 significant digits) is the single default,
//     threaded explicitly through every codec call
//   - General formatting follows conventional %g rules: fixed notation
//     unless the exponent leaves the normal display range, then
//     mantissa e±NN
package numfmt
