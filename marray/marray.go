// SPDX-License-Identifier: MIT
// Package marray: the Matrix value type and its constructors.
// Matrix is a row-major, immutable array of float64 with an explicit
// dimension tag (1 for vectors, 2 for matrices). Codecs consume and produce
// *Matrix exclusively; they never share or mutate instances.

package marray

import (
	"fmt"
	"strconv"
	"strings"
)

// Matrix is an immutable rectangular array of float64 values.
// r and c are the shape (a vector has r == 1 and c == len), data holds
// r*c elements in row-major order, and dims records whether the value
// was constructed as 1-D or 2-D. The zero value has dims == 0 and is
// rejected by ValidateRank.
type Matrix struct {
	dims int       // 1 (vector) or 2 (matrix); 0 for the zero value
	r, c int       // shape; vectors store r == 1
	data []float64 // flat backing storage, length == r*c
}

// NewVector constructs a 1-D array of length len(values).
// Stage 1 (Prepare): copy the caller's buffer — instances never alias input.
// Stage 2 (Finalize): return the immutable vector.
// Complexity: O(n) time and memory.
func NewVector(values []float64) *Matrix {
	data := make([]float64, len(values))
	copy(data, values)

	return &Matrix{dims: 1, r: 1, c: len(values), data: data}
}

// NewFromRows constructs a 2-D array from row slices.
// Stage 1 (Validate): every row must have the same length (rectangular).
// Stage 2 (Prepare): copy all rows into flat row-major storage.
// Stage 3 (Finalize): return the immutable matrix or ErrRaggedRow.
// An empty rows slice yields a legal 0×0 array.
// Complexity: O(r*c) time and memory.
func NewFromRows(rows [][]float64) (*Matrix, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	// Validate rectangularity against the first row.
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d cells, want %d: %w",
				i, len(rows[i]), c, ErrRaggedRow)
		}
	}
	// Copy into flat storage.
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		data = append(data, rows[i]...)
	}

	return &Matrix{dims: 2, r: r, c: c, data: data}, nil
}

// Dims returns 1 for vectors, 2 for matrices, 0 for the zero value.
// Complexity: O(1).
func (m *Matrix) Dims() int { return m.dims }

// Rows returns the number of rows (1 for vectors).
// Complexity: O(1).
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns (the length, for vectors).
// Complexity: O(1).
func (m *Matrix) Cols() int { return m.c }

// Len returns the total element count (product of the shape).
// Complexity: O(1).
func (m *Matrix) Len() int { return len(m.data) }

// At retrieves the element at (row, col).
// Returns ErrOutOfRange on invalid indices; never panics.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Matrix.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Row returns a copy of row i. The returned slice is independent of the
// matrix — mutating it cannot violate immutability.
// Complexity: O(c) time and memory.
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Matrix.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Values returns a copy of the full row-major backing data.
// Complexity: O(r*c) time and memory.
func (m *Matrix) Values() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Matrix{dims: m.dims, r: m.r, c: m.c, data: data}
}

// ValidateRank ensures m is non-nil and 1-D or 2-D. Serialize entry points
// in every codec call this first, so rank rejection is uniform.
// Returns ErrNilMatrix or ErrUnsupportedRank; nil on success.
// Complexity: O(1).
func ValidateRank(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.dims != 1 && m.dims != 2 {
		return ErrUnsupportedRank
	}

	return nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		b.WriteString("]\n")
	}

	return b.String()
}
