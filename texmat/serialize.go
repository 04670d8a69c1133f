// SPDX-License-Identifier: MIT
// Package texmat: rendering arrays into typeset blocks.

package texmat

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/iomatrix/marray"
	"github.com/katalvlaran/iomatrix/numfmt"
)

// Serialize renders m as a typeset block in the requested environment.
// Stage 1 (Validate): env must be one of the five recognized names
// (ErrInvalidEnvironment) and m must be 1-D or 2-D (marray.ErrUnsupportedRank).
// Stage 2 (Render): 1-D arrays become a single row — the typeset form never
// distinguishes row/column orientation for vectors; 2-D arrays render one
// row per array row.
// Stage 3 (Finalize): wrap the body in \begin{env} / \end{env}.
// Non-finite values render as \mathrm{NaN}, \infty and -\infty.
// Complexity: O(r*c).
func Serialize(m *marray.Matrix, env Env, spec numfmt.Spec) (string, error) {
	if !env.Valid() {
		return "", fmt.Errorf("texmat.Serialize(%q): %w", env, ErrInvalidEnvironment)
	}
	if err := marray.ValidateRank(m); err != nil {
		return "", err
	}

	var rows []string
	if m.Dims() == 1 {
		rows = []string{renderRow(m.Values(), spec)}
	} else {
		rows = make([]string, 0, m.Rows())
		for i := 0; i < m.Rows(); i++ {
			r, _ := m.Row(i) // i is in range by construction
			rows = append(rows, renderRow(r, spec))
		}
	}
	body := strings.Join(rows, " "+rowSep+"\n")

	return beginPrefix + string(env) + nameClose + "\n" +
		body + "\n" +
		endPrefix + string(env) + nameClose, nil
}

// renderRow formats one row's cells and joins them with the cell separator.
func renderRow(values []float64, spec numfmt.Spec) string {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = spec.FormatWith(v, tokens)
	}

	return strings.Join(cells, " "+colSep+" ")
}
