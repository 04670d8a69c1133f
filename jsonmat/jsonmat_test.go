package jsonmat_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/iomatrix/jsonmat"
	"github.com/katalvlaran/iomatrix/marray"
	"github.com/katalvlaran/iomatrix/numfmt"
	"github.com/stretchr/testify/require"
)

// -----------------------------
// PARSE: root disambiguation
// -----------------------------

func TestParse_FlatVectorDocument(t *testing.T) {
	arrays, err := jsonmat.Parse("[1, 2, 3]")
	require.NoError(t, err)
	require.Len(t, arrays, 1)
	// Single-row results are NOT collapsed to vectors in this notation.
	require.Equal(t, 2, arrays[0].Dims())
	require.Equal(t, 1, arrays[0].Rows())
	require.Equal(t, 3, arrays[0].Cols())
	require.Equal(t, []float64{1, 2, 3}, arrays[0].Values())
}

func TestParse_RowVectorDocument(t *testing.T) {
	arrays, err := jsonmat.Parse("[[1, 2, 3]]")
	require.NoError(t, err)
	require.Len(t, arrays, 1)
	require.Equal(t, 1, arrays[0].Rows())
	require.Equal(t, 3, arrays[0].Cols())
}

func TestParse_ColumnVectorDocument(t *testing.T) {
	arrays, err := jsonmat.Parse("[[1], [2], [3]]")
	require.NoError(t, err)
	require.Len(t, arrays, 1)
	require.Equal(t, 3, arrays[0].Rows())
	require.Equal(t, 1, arrays[0].Cols())
}

func TestParse_MatrixDocument(t *testing.T) {
	arrays, err := jsonmat.Parse("[[1, 2], [3, 4]]")
	require.NoError(t, err)
	require.Len(t, arrays, 1)
	require.Equal(t, 2, arrays[0].Rows())
	require.Equal(t, 2, arrays[0].Cols())
	require.Equal(t, []float64{1, 2, 3, 4}, arrays[0].Values())
}

func TestParse_MultiArrayDocument(t *testing.T) {
	doc := `
[
    [[1, 2, 3]],
    [[4, 5], [6, 7]]
]
`
	arrays, err := jsonmat.Parse(doc)
	require.NoError(t, err)
	require.Len(t, arrays, 2)
	require.Equal(t, 1, arrays[0].Rows())
	require.Equal(t, 3, arrays[0].Cols())
	require.Equal(t, 2, arrays[1].Rows())
	require.Equal(t, 2, arrays[1].Cols())
	require.Equal(t, []float64{4, 5, 6, 7}, arrays[1].Values())
}

// -----------------------------
// PARSE: cells
// -----------------------------

func TestParse_StringNumbers(t *testing.T) {
	arrays, err := jsonmat.Parse(`[["1.2", "3.4", "5"]]`)
	require.NoError(t, err)
	require.Len(t, arrays, 1)
	require.Equal(t, []float64{1.2, 3.4, 5}, arrays[0].Values())
}

func TestParse_SpecialTokenStrings(t *testing.T) {
	arrays, err := jsonmat.Parse(`[["inf", "-inf", "nan"]]`)
	require.NoError(t, err)
	require.Len(t, arrays, 1)
	vals := arrays[0].Values()
	require.True(t, math.IsInf(vals[0], +1))
	require.True(t, math.IsInf(vals[1], -1))
	require.True(t, math.IsNaN(vals[2]))
}

func TestParse_HostNonFiniteLiterals(t *testing.T) {
	// The host format writes non-finite numbers as bare literals; they
	// arrive as strings through the decoder and parse exactly.
	arrays, err := jsonmat.Parse("[NaN, Infinity, -Infinity]")
	require.NoError(t, err)
	require.Len(t, arrays, 1)
	vals := arrays[0].Values()
	require.True(t, math.IsNaN(vals[0]))
	require.True(t, math.IsInf(vals[1], +1))
	require.True(t, math.IsInf(vals[2], -1))
}

func TestParse_InvalidNumericString(t *testing.T) {
	_, err := jsonmat.Parse(`[["abc", "123"]]`)
	require.ErrorIs(t, err, numfmt.ErrInvalidNumber)
}

func TestParse_MixedRoot(t *testing.T) {
	// Mixing scalar and list at the top level is malformed.
	_, err := jsonmat.Parse("[1, [2, 3]]")
	require.ErrorIs(t, err, jsonmat.ErrMalformedRow)
}

func TestParse_NonListRoot(t *testing.T) {
	_, err := jsonmat.Parse("5")
	require.ErrorIs(t, err, jsonmat.ErrMalformedRow)
}

func TestParse_UnsupportedElement(t *testing.T) {
	_, err := jsonmat.Parse("[true, false]")
	require.ErrorIs(t, err, jsonmat.ErrUnsupportedElement)

	_, err = jsonmat.Parse(`[{"a": 1}]`)
	require.ErrorIs(t, err, jsonmat.ErrUnsupportedElement)
}

func TestParse_RankThreeCell(t *testing.T) {
	// A list-valued cell means rank ≥3, which the data model rejects.
	_, err := jsonmat.Parse("[[[[1]]]]")
	require.ErrorIs(t, err, marray.ErrUnsupportedRank)
}

func TestParse_RaggedRows(t *testing.T) {
	_, err := jsonmat.Parse("[[1, 2], [3]]")
	require.ErrorIs(t, err, marray.ErrRaggedRow)
}

// -----------------------------
// PARSE: ambiguous roots (implementation-defined, pinned here)
// -----------------------------

func TestParse_EmptyRootYieldsZeroArrays(t *testing.T) {
	arrays, err := jsonmat.Parse("[]")
	require.NoError(t, err)
	require.Empty(t, arrays)
}

func TestParse_EmptyDocumentYieldsZeroArrays(t *testing.T) {
	arrays, err := jsonmat.Parse("")
	require.NoError(t, err)
	require.Empty(t, arrays)
}

func TestParse_ListOfEmptyListYieldsOneEmptyArray(t *testing.T) {
	arrays, err := jsonmat.Parse("[[]]")
	require.NoError(t, err)
	require.Len(t, arrays, 1)
	require.Equal(t, 0, arrays[0].Len())
}

// -----------------------------
// SERIALIZE
// -----------------------------

func TestSerialize_VectorFlatList(t *testing.T) {
	v := marray.NewVector([]float64{1.2345, 2.3456, 3.4567})
	out, err := jsonmat.Serialize(v, numfmt.DefaultSpec(), 0)
	require.NoError(t, err)
	require.Equal(t, "[1.23, 2.35, 3.46]", out)
}

func TestSerialize_MatrixRowLists(t *testing.T) {
	m, err := marray.NewFromRows([][]float64{{1.2345, 2.3456}, {3.4567, 4.5678}})
	require.NoError(t, err)

	out, err := jsonmat.Serialize(m, numfmt.DefaultSpec(), 0)
	require.NoError(t, err)
	require.Equal(t, "[[1.23, 2.35], [3.46, 4.57]]", out)
}

func TestSerialize_IntegersStayNumbers(t *testing.T) {
	m, err := marray.NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	out, err := jsonmat.Serialize(m, numfmt.DefaultSpec(), 0)
	require.NoError(t, err)
	require.Equal(t, "[[1, 2], [3, 4]]", out)
}

func TestSerialize_IndentApplied(t *testing.T) {
	v := marray.NewVector([]float64{1})
	out, err := jsonmat.Serialize(v, numfmt.DefaultSpec(), 4)
	require.NoError(t, err)
	require.Equal(t, "[\n    1\n]", out)
}

func TestSerialize_IndentNested(t *testing.T) {
	m, err := marray.NewFromRows([][]float64{{1, 2}})
	require.NoError(t, err)

	out, err := jsonmat.Serialize(m, numfmt.DefaultSpec(), 2)
	require.NoError(t, err)
	require.Equal(t, "[\n  [\n    1,\n    2\n  ]\n]", out)
}

func TestSerialize_EmptyArray(t *testing.T) {
	out, err := jsonmat.Serialize(marray.NewVector(nil), numfmt.DefaultSpec(), 2)
	require.NoError(t, err)
	require.Equal(t, "[]", out)
}

func TestSerialize_NonFiniteLiterals(t *testing.T) {
	v := marray.NewVector([]float64{math.NaN(), math.Inf(+1), math.Inf(-1)})
	out, err := jsonmat.Serialize(v, numfmt.DefaultSpec(), 0)
	require.NoError(t, err)
	require.Equal(t, "[NaN, Infinity, -Infinity]", out)
}

func TestSerialize_RankRejection(t *testing.T) {
	_, err := jsonmat.Serialize(&marray.Matrix{}, numfmt.DefaultSpec(), 0)
	require.ErrorIs(t, err, marray.ErrUnsupportedRank)
}

// -----------------------------
// ROUND TRIP
// -----------------------------

func TestRoundTrip_WithinPrecision(t *testing.T) {
	m, err := marray.NewFromRows([][]float64{{1e10, 5e-12}, {-1, -2.5}})
	require.NoError(t, err)

	out, err := jsonmat.Serialize(m, numfmt.Sig(9), 2)
	require.NoError(t, err)

	back, err := jsonmat.Parse(out)
	require.NoError(t, err)
	require.Len(t, back, 1)
	require.Equal(t, 2, back[0].Rows())
	want := m.Values()
	got := back[0].Values()
	for i := range want {
		require.InDelta(t, want[i], got[i], math.Abs(want[i])*1e-8)
	}
}

func TestRoundTrip_NonFiniteExact(t *testing.T) {
	v := marray.NewVector([]float64{math.NaN(), math.Inf(+1), math.Inf(-1)})
	out, err := jsonmat.Serialize(v, numfmt.DefaultSpec(), 0)
	require.NoError(t, err)

	back, err := jsonmat.Parse(out)
	require.NoError(t, err)
	require.Len(t, back, 1)
	vals := back[0].Values()
	require.True(t, math.IsNaN(vals[0]))
	require.True(t, math.IsInf(vals[1], +1))
	require.True(t, math.IsInf(vals[2], -1))
}
