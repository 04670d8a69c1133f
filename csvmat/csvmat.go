// SPDX-License-Identifier: MIT
// Package csvmat: tabular parse/serialize and the shape heuristic.

package csvmat

import (
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/iomatrix/marray"
	"github.com/katalvlaran/iomatrix/numfmt"
)

// Non-finite cell literals. The tabular form uses the bare lowercase
// spellings and no sign variant for nan; they parse through the standard
// float path, not a notation token table.
const (
	tokenNaN    = "nan"
	tokenPosInf = "inf"
	tokenNegInf = "-inf"
)

// Parse decodes a whole tabular document, counting physical lines itself.
// Equivalent to ParseLines(text, n) with n derived from the text; use
// ParseLines when a line-oriented collaborator already knows the count.
// Complexity: O(len(text)).
func Parse(text string) (*marray.Matrix, error) {
	return ParseLines(text, countPhysicalLines(text))
}

// ParseLines decodes a tabular document given its physical line count.
// Stage 1 (Read): split records on commas; surrounding cell whitespace is
// insignificant.
// Stage 2 (Decode): every cell must pass standard float parsing (the
// lowercase nan/inf/-inf literals do); failure → numfmt.ErrInvalidNumber.
// Stage 3 (Shape): a one-dimensional grid reshapes by line count — one
// physical line → 1×N row, several lines → N×1 column; 2-D grids keep
// their shape. Unequal record lengths → marray.ErrRaggedRow.
// Zero cells → ErrEmptyInput.
// Complexity: O(cells).
func ParseLines(text string, physicalLines int) (*marray.Matrix, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1 // rectangularity is checked by the data model
	r.TrimLeadingSpace = true
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvmat.Parse: %w", err)
	}

	rows := make([][]float64, 0, len(records))
	cellCount := 0
	for _, record := range records {
		row := make([]float64, 0, len(record))
		for _, cell := range record {
			v, perr := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if perr != nil {
				return nil, fmt.Errorf("csvmat.Parse: cell %q: %w", cell, numfmt.ErrInvalidNumber)
			}
			row = append(row, v)
		}
		cellCount += len(row)
		rows = append(rows, row)
	}
	if cellCount == 0 {
		return nil, ErrEmptyInput
	}

	// Shape heuristic: a 1-D grid (single record of N cells, or N records
	// of one cell each) reshapes by physical line structure.
	if len(rows) == 1 || oneCellEach(rows) {
		cells := make([]float64, 0, cellCount)
		for _, r := range rows {
			cells = append(cells, r...)
		}
		if physicalLines <= 1 {
			// One physical line: a 1×N row.
			return marray.NewFromRows([][]float64{cells})
		}
		// Several physical lines: an N×1 column.
		col := make([][]float64, len(cells))
		for i, v := range cells {
			col[i] = []float64{v}
		}

		return marray.NewFromRows(col)
	}

	return marray.NewFromRows(rows)
}

// Serialize renders m as tabular text: one physical line per array row,
// cells comma-joined, trailing newline per line, no header.
// 1-D arrays write a single line; a zero-element array produces empty
// output with no trailing content; dims outside {1,2} fail
// marray.ErrUnsupportedRank. Non-finite values render as nan/inf/-inf.
// Complexity: O(r*c).
func Serialize(m *marray.Matrix, spec numfmt.Spec) (string, error) {
	if err := marray.ValidateRank(m); err != nil {
		return "", err
	}
	if m.Len() == 0 {
		return "", nil
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if m.Dims() == 1 {
		if err := w.Write(renderRecord(m.Values(), spec)); err != nil {
			return "", fmt.Errorf("csvmat.Serialize: %w", err)
		}
	} else {
		for i := 0; i < m.Rows(); i++ {
			row, _ := m.Row(i) // i is in range by construction
			if err := w.Write(renderRecord(row, spec)); err != nil {
				return "", fmt.Errorf("csvmat.Serialize: %w", err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("csvmat.Serialize: %w", err)
	}

	return sb.String(), nil
}

// renderRecord formats one row of values into csv fields.
func renderRecord(values []float64, spec numfmt.Spec) []string {
	record := make([]string, len(values))
	for i, v := range values {
		switch {
		case math.IsNaN(v):
			record[i] = tokenNaN
		case math.IsInf(v, +1):
			record[i] = tokenPosInf
		case math.IsInf(v, -1):
			record[i] = tokenNegInf
		default:
			record[i] = spec.Format(v)
		}
	}

	return record
}

// oneCellEach reports whether every row holds exactly one cell.
func oneCellEach(rows [][]float64) bool {
	for _, r := range rows {
		if len(r) != 1 {
			return false
		}
	}

	return true
}

// countPhysicalLines counts newline-terminated lines, treating a trailing
// fragment without a final newline as one more line.
func countPhysicalLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}

	return n
}
