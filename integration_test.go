package iomatrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/iomatrix/csvmat"
	"github.com/katalvlaran/iomatrix/jsonmat"
	"github.com/katalvlaran/iomatrix/marray"
	"github.com/katalvlaran/iomatrix/numfmt"
	"github.com/katalvlaran/iomatrix/texmat"
	"github.com/stretchr/testify/require"
)

// requireClose asserts element-wise closeness within the relative error a
// 9-significant-digit serialization can introduce.
func requireClose(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if math.IsNaN(want[i]) {
			require.True(t, math.IsNaN(got[i]), "index %d", i)
			continue
		}
		if math.IsInf(want[i], 0) {
			require.Equal(t, want[i], got[i], "index %d", i)
			continue
		}
		require.InDelta(t, want[i], got[i], math.Abs(want[i])*1e-8+1e-15, "index %d", i)
	}
}

func TestTypesetToTabular(t *testing.T) {
	doc := `Coefficients:
\begin{bmatrix}
1.25 & -2.5 \\
0.031 & 1e6
\end{bmatrix}
`
	arrays, err := texmat.Parse(doc)
	require.NoError(t, err)
	require.Len(t, arrays, 1)

	out, err := csvmat.Serialize(arrays[0], numfmt.Sig(9))
	require.NoError(t, err)

	back, err := csvmat.Parse(out)
	require.NoError(t, err)
	require.Equal(t, 2, back.Rows())
	require.Equal(t, 2, back.Cols())
	requireClose(t, arrays[0].Values(), back.Values())
}

func TestTabularToStructuredToTypeset(t *testing.T) {
	m, err := csvmat.Parse("1.5,2.5\n3.5,4.5\n")
	require.NoError(t, err)

	jsonDoc, err := jsonmat.Serialize(m, numfmt.Sig(9), 2)
	require.NoError(t, err)
	arrays, err := jsonmat.Parse(jsonDoc)
	require.NoError(t, err)
	require.Len(t, arrays, 1)

	texDoc, err := texmat.Serialize(arrays[0], texmat.EnvParen, numfmt.Sig(9))
	require.NoError(t, err)
	final, err := texmat.Parse(texDoc)
	require.NoError(t, err)
	require.Len(t, final, 1)
	require.Equal(t, 2, final[0].Rows())
	require.Equal(t, 2, final[0].Cols())
	requireClose(t, m.Values(), final[0].Values())
}

func TestNonFiniteSurviveEveryNotation(t *testing.T) {
	src := marray.NewVector([]float64{math.NaN(), math.Inf(+1), math.Inf(-1)})
	spec := numfmt.DefaultSpec()

	texDoc, err := texmat.Serialize(src, texmat.EnvPlain, spec)
	require.NoError(t, err)
	fromTex, err := texmat.Parse(texDoc)
	require.NoError(t, err)
	require.Len(t, fromTex, 1)
	requireClose(t, src.Values(), fromTex[0].Values())

	jsonDoc, err := jsonmat.Serialize(fromTex[0], spec, 0)
	require.NoError(t, err)
	fromJSON, err := jsonmat.Parse(jsonDoc)
	require.NoError(t, err)
	require.Len(t, fromJSON, 1)
	requireClose(t, src.Values(), fromJSON[0].Values())

	csvDoc, err := csvmat.Serialize(fromJSON[0], spec)
	require.NoError(t, err)
	fromCSV, err := csvmat.Parse(csvDoc)
	require.NoError(t, err)
	requireClose(t, src.Values(), fromCSV.Values())
}

func TestRankRejectionIsUniform(t *testing.T) {
	zero := &marray.Matrix{} // dims 0: no codec accepts it

	_, err := texmat.Serialize(zero, texmat.EnvPlain, numfmt.DefaultSpec())
	require.ErrorIs(t, err, marray.ErrUnsupportedRank)

	_, err = jsonmat.Serialize(zero, numfmt.DefaultSpec(), 0)
	require.ErrorIs(t, err, marray.ErrUnsupportedRank)

	_, err = csvmat.Serialize(zero, numfmt.DefaultSpec())
	require.ErrorIs(t, err, marray.ErrUnsupportedRank)
}
