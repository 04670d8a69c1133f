// SPDX-License-Identifier: MIT
// Package jsonmat: document parsing.

package jsonmat

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/iomatrix/marray"
	"github.com/katalvlaran/iomatrix/numfmt"
)

// Parse decodes a structured document into its arrays.
// Stage 1 (Decode): read the text through the YAML decoder (JSON is a YAML
// subset; the host format's non-finite literals NaN/Infinity/-Infinity
// arrive as strings and are recovered by numfmt.Parse downstream).
// Stage 2 (Convert): build the tagged value variant once, at the root.
// Stage 3 (Disambiguate): the root holds multiple arrays iff every
// top-level element is a list AND every element of the first top-level
// element is a list; otherwise the whole root is a single array.
// Stage 4 (Decode arrays): each array becomes a 2-D *marray.Matrix; a
// single-row result is NOT collapsed to a vector.
// An empty or list-less document yields zero arrays, nil error.
// Complexity: O(len(text)) decode + O(cells).
func Parse(text string) ([]*marray.Matrix, error) {
	var raw interface{}
	if err := yaml.Unmarshal([]byte(text), &raw); err != nil {
		// Decoder failure from the external collaborator, surfaced as-is.
		return nil, fmt.Errorf("jsonmat.Parse: %w", err)
	}
	if raw == nil {
		return []*marray.Matrix{}, nil
	}

	root, err := convert(raw)
	if err != nil {
		return nil, err
	}
	if root.k != kindList {
		return nil, fmt.Errorf("jsonmat.Parse: document root is not a list: %w", ErrMalformedRow)
	}
	if len(root.list) == 0 {
		// Empty root: zero arrays, mirroring the typeset codec's
		// zero-match behavior.
		return []*marray.Matrix{}, nil
	}

	if allLists(root.list) && allLists(root.list[0].list) {
		// Multi-array document: each top-level element is one array.
		out := make([]*marray.Matrix, 0, len(root.list))
		for _, arr := range root.list {
			m, err := parseArray(arr.list)
			if err != nil {
				return nil, err
			}
			out = append(out, m)
		}

		return out, nil
	}

	// Single-array document: the whole root is the array.
	m, err := parseArray(root.list)
	if err != nil {
		return nil, err
	}

	return []*marray.Matrix{m}, nil
}

// parseArray decodes one array: either a flat list of scalars (one row) or
// a list of equal-length row-lists. Mixing the two fails ErrMalformedRow;
// unequal rows fail marray.ErrRaggedRow.
func parseArray(elems []value) (*marray.Matrix, error) {
	if len(elems) == 0 {
		return marray.NewFromRows(nil)
	}

	if !containsList(elems) {
		// Flat vector document: a single row.
		row, err := parseCells(elems)
		if err != nil {
			return nil, err
		}

		return marray.NewFromRows([][]float64{row})
	}

	rows := make([][]float64, 0, len(elems))
	for i, rowVal := range elems {
		if rowVal.k != kindList {
			return nil, fmt.Errorf("jsonmat: row %d: %w", i, ErrMalformedRow)
		}
		row, err := parseCells(rowVal.list)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return marray.NewFromRows(rows)
}

// parseCells decodes one row of cells. Numbers pass through; strings go
// through the shared numeric/special-token parser; a list-valued cell means
// the array has rank ≥3, which the data model cannot represent.
func parseCells(cells []value) ([]float64, error) {
	row := make([]float64, 0, len(cells))
	for _, cell := range cells {
		switch cell.k {
		case kindNumber:
			row = append(row, cell.num)
		case kindString:
			v, err := numfmt.Parse(cell.str)
			if err != nil {
				return nil, err
			}
			row = append(row, v)
		case kindList:
			return nil, fmt.Errorf("jsonmat: nested list cell: %w", marray.ErrUnsupportedRank)
		}
	}

	return row, nil
}

// containsList reports whether any element of list is itself a list.
func containsList(list []value) bool {
	for _, v := range list {
		if v.k == kindList {
			return true
		}
	}

	return false
}
