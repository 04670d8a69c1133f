// SPDX-License-Identifier: MIT
// Package csvmat: sentinel error set.

package csvmat

import "errors"

// ErrEmptyInput indicates a tabular document with zero cells. The tabular
// form carries exactly one array per document, so emptiness is an error
// here while it is a zero-match success in the other notations.
var ErrEmptyInput = errors.New("csvmat: empty input")
