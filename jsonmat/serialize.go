// SPDX-License-Identifier: MIT
// Package jsonmat: rendering arrays into structured documents.
//
// Purpose:
//   - Emit a single array as nested lists: 1-D as a flat list, 2-D as a
//     list of row-lists, pretty-printed at a configurable indent width.
//   - Formatted values are emitted as bare numbers whenever the formatted
//     text is itself numeric, so precision-reduced values stay numbers.
//     Non-finite values use the host format's literals NaN, Infinity,
//     -Infinity — which is why emission is hand-built: encoding/json
//     cannot represent non-finite numbers at all.

package jsonmat

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/iomatrix/marray"
	"github.com/katalvlaran/iomatrix/numfmt"
)

// DefaultIndent is the pretty-print indent width used by callers that have
// no opinion. Zero or negative indent produces compact single-line output.
const DefaultIndent = 2

// tokens is the host structured-format's spelling of non-finite values.
var tokens = numfmt.Tokens{NaN: "NaN", PosInf: "Infinity", NegInf: "-Infinity"}

// Serialize renders m as a structured document.
// Stage 1 (Validate): m must be 1-D or 2-D (marray.ErrUnsupportedRank).
// Stage 2 (Format): every element passes through the shared numeric policy.
// Stage 3 (Emit): flat list for vectors, list of row-lists for matrices,
// indented by indent spaces per depth (compact when indent <= 0).
// Complexity: O(r*c).
func Serialize(m *marray.Matrix, spec numfmt.Spec, indent int) (string, error) {
	if err := marray.ValidateRank(m); err != nil {
		return "", err
	}

	if m.Dims() == 1 {
		return emitList(renderCells(m.Values(), spec), indent, 0), nil
	}

	rows := make([]string, 0, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		r, _ := m.Row(i) // i is in range by construction
		rows = append(rows, emitList(renderCells(r, spec), indent, 1))
	}

	return emitList(rows, indent, 0), nil
}

// renderCells formats one row of values into emit-ready tokens.
// A token that re-parses as a number is emitted bare, so precision-reduced
// values stay numbers; the host's non-finite literals re-parse too. The
// quote fallback keeps the document well-formed should a token ever not.
func renderCells(values []float64, spec numfmt.Spec) []string {
	out := make([]string, len(values))
	for i, v := range values {
		tok := spec.FormatWith(v, tokens)
		if _, err := strconv.ParseFloat(tok, 64); err == nil {
			out[i] = tok
		} else {
			out[i] = strconv.Quote(tok)
		}
	}

	return out
}

// emitList writes items as a bracketed list at the given depth.
// Compact mode joins with ", "; indented mode puts one item per line,
// indent*(depth+1) spaces deep, closing bracket at indent*depth.
func emitList(items []string, indent, depth int) string {
	if len(items) == 0 {
		return "[]"
	}
	if indent <= 0 {
		return "[" + strings.Join(items, ", ") + "]"
	}

	inner := strings.Repeat(" ", indent*(depth+1))
	outer := strings.Repeat(" ", indent*depth)
	var b strings.Builder
	b.WriteString("[\n")
	for i, item := range items {
		b.WriteString(inner)
		b.WriteString(item)
		if i < len(items)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString(outer)
	b.WriteByte(']')

	return b.String()
}
