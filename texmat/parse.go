// SPDX-License-Identifier: MIT
// Package texmat: document scanning and block parsing.
//
// Purpose:
//   - Extract every recognized \begin{env}...\end{env} block from a document
//     that may contain arbitrary prose and % line comments.
//   - Plain strings.Index matching only — no regular expressions, no
//     lookahead. Blocks are non-nested and non-overlapping; an end marker
//     must repeat the exact name of its begin marker to close it.
//
// Determinism & Policy:
//   - Matches are returned in source order.
//   - A document with zero matches yields an empty slice, nil error.
//   - Any malformed cell or ragged block fails the whole call atomically.

package texmat

import (
	"math"
	"strings"

	"github.com/katalvlaran/iomatrix/marray"
	"github.com/katalvlaran/iomatrix/numfmt"
)

// Parse extracts all typeset matrix blocks from a full document.
// Stage 1 (Prepare): strip line comments so commented-out markers never match.
// Stage 2 (Scan): walk begin markers left to right; for each recognized
// environment name, locate the end marker with the same name and cut the body.
// Stage 3 (Decode): split the body into rows and cells, parse every cell.
// Returns the arrays in source order, or the first typed error.
// Complexity: O(len(text)) scan + O(cells) decode.
func Parse(text string) ([]*marray.Matrix, error) {
	doc := stripComments(text)
	out := make([]*marray.Matrix, 0)

	pos := 0
	for {
		rel := strings.Index(doc[pos:], beginPrefix)
		if rel < 0 {
			break
		}
		begin := pos + rel
		nameStart := begin + len(beginPrefix)
		nameEnd := strings.Index(doc[nameStart:], nameClose)
		if nameEnd < 0 {
			// Unterminated begin marker: nothing after it can match either.
			break
		}
		env := Env(doc[nameStart : nameStart+nameEnd])
		bodyStart := nameStart + nameEnd + len(nameClose)
		if !env.Valid() {
			// Foreign environment (align, figure, ...): skip the marker.
			pos = bodyStart
			continue
		}
		// The end marker must repeat the begin marker's name; a mismatched
		// pair is not a match at all.
		endMarker := endPrefix + string(env) + nameClose
		endRel := strings.Index(doc[bodyStart:], endMarker)
		if endRel < 0 {
			pos = bodyStart
			continue
		}

		m, err := parseBlock(doc[bodyStart : bodyStart+endRel])
		if err != nil {
			return nil, err
		}
		out = append(out, m)
		pos = bodyStart + endRel + len(endMarker)
	}

	return out, nil
}

// parseBlock decodes one block body into a 2-D array.
// Rows split on \\, cells on &, whitespace trimmed per cell. A single row
// with no row separator yields a 1×N single-row shape. An empty body yields
// a legal empty array. Ragged rows surface marray.ErrRaggedRow.
func parseBlock(body string) (*marray.Matrix, error) {
	if strings.TrimSpace(body) == "" {
		return marray.NewFromRows(nil)
	}

	rawRows := strings.Split(body, rowSep)
	rows := make([][]float64, 0, len(rawRows))
	for _, raw := range rawRows {
		cells := strings.Split(raw, colSep)
		row := make([]float64, 0, len(cells))
		for _, cell := range cells {
			v, err := parseCell(cell)
			if err != nil {
				return nil, err
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return marray.NewFromRows(rows)
}

// parseCell decodes one cell: the typeset special tokens first, then the
// shared numeric/token parser. Fails with numfmt.ErrInvalidNumber.
func parseCell(cell string) (float64, error) {
	tok := strings.TrimSpace(cell)
	switch tok {
	case tokenNaN:
		return math.NaN(), nil
	case tokenPosInf:
		return math.Inf(+1), nil
	case tokenNegInf:
		return math.Inf(-1), nil
	}

	return numfmt.Parse(tok)
}

// stripComments removes every line's unescaped-% tail while preserving line
// structure, so marker positions stay meaningful for error reporting.
func stripComments(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(cutComment(line))
	}

	return b.String()
}

// cutComment returns line up to the first unescaped comment marker.
func cutComment(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] == commentMark && (i == 0 || line[i-1] != escapeMark) {
			return line[:i]
		}
	}

	return line
}
