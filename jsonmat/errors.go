// SPDX-License-Identifier: MIT
// Package jsonmat: sentinel error set.

package jsonmat

import "errors"

var (
	// ErrMalformedRow indicates a row position holding a non-list value in a
	// context where rows are required (an array mixing scalar and list
	// elements, or a non-list document root).
	ErrMalformedRow = errors.New("jsonmat: row is not a list")

	// ErrUnsupportedElement indicates a document leaf that is neither a
	// number, a string nor a list (bool, null, mapping, ...).
	ErrUnsupportedElement = errors.New("jsonmat: unsupported element type")
)
