// SPDX-License-Identifier: MIT
// Package texmat: environment names, separators and special-value tokens.
// This file is the single source of truth for every literal the typeset
// notation uses; parse.go and serialize.go contain no free-standing strings.

package texmat

import "github.com/katalvlaran/iomatrix/numfmt"

// Env names one of the five recognized bracket environments. All five share
// identical internal syntax; the name only selects the bracket glyphs.
type Env string

const (
	// EnvPlain is the bare "matrix" environment (no brackets).
	EnvPlain Env = "matrix"

	// EnvParen is "pmatrix" (parentheses).
	EnvParen Env = "pmatrix"

	// EnvBracket is "bmatrix" (square brackets).
	EnvBracket Env = "bmatrix"

	// EnvBars is "vmatrix" (single vertical bars).
	EnvBars Env = "vmatrix"

	// EnvDoubleBars is "Vmatrix" (double vertical bars).
	EnvDoubleBars Env = "Vmatrix"
)

// Envs lists the recognized environments in a stable order.
// Parsing tries each name at every begin marker; serialization validates
// against this set.
func Envs() []Env {
	return []Env{EnvPlain, EnvParen, EnvBracket, EnvBars, EnvDoubleBars}
}

// Valid reports whether e is one of the five recognized environments.
// Complexity: O(1).
func (e Env) Valid() bool {
	switch e {
	case EnvPlain, EnvParen, EnvBracket, EnvBars, EnvDoubleBars:
		return true
	}

	return false
}

// Notation literals. Row and column separators are fixed by the notation;
// serialization pads them with spaces for readability, parsing trims.
const (
	beginPrefix = `\begin{` // start of a begin marker; env name follows
	endPrefix   = `\end{`   // start of an end marker; must repeat the name
	nameClose   = "}"       // closes the env name in both markers

	rowSep = `\\` // row separator inside a block
	colSep = "&"  // cell separator inside a row

	commentMark = '%'  // line comment: from unescaped % to end of line
	escapeMark  = '\\' // \% is a literal percent, not a comment
)

// Special-value cell tokens for the typeset notation.
const (
	tokenNaN    = `\mathrm{NaN}`
	tokenPosInf = `\infty`
	tokenNegInf = `-\infty`
)

// tokens is the numfmt table used by serialization.
var tokens = numfmt.Tokens{NaN: tokenNaN, PosInf: tokenPosInf, NegInf: tokenNegInf}
