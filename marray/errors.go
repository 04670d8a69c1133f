// SPDX-License-Identifier: MIT
// Package marray: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors shared across the
// iomatrix codecs. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. No operation panics on user-triggered error
// conditions.

package marray

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "marray: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrRaggedRow indicates inconsistent row lengths: a 2-D array whose rows
	// do not all share the same cell count. Construction and every codec parse
	// reject jagged input atomically — no partial array is ever returned.
	ErrRaggedRow = errors.New("marray: inconsistent row lengths")

	// ErrUnsupportedRank indicates an array whose dimension is neither 1 nor 2.
	// The zero value of Matrix (dims == 0) trips this in every codec; ranks of
	// 3 and above cannot be represented at all.
	ErrUnsupportedRank = errors.New("marray: rank must be 1 or 2")

	// ErrNilMatrix indicates that a nil *Matrix was passed where a value is
	// required (serialize entry points).
	ErrNilMatrix = errors.New("marray: nil matrix")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("marray: index out of range")
)
