// SPDX-License-Identifier: MIT
// Package numfmt: sentinel error set.
// Same conventions as marray/errors.go: return sentinels directly, wrap with
// %w only at outer boundaries, match with errors.Is.

package numfmt

import "errors"

// ErrInvalidNumber indicates a token that is neither a standard
// decimal/scientific number nor a recognized special-value token.
var ErrInvalidNumber = errors.New("numfmt: not a number or special token")
