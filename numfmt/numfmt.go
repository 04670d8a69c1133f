// SPDX-License-Identifier: MIT
// Package numfmt: precision policy, special-value token tables, scalar parse.

package numfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Style selects how Digits is interpreted when rendering a scalar.
//
//   - SigDigits     — general (%g-style) formatting at Digits significant
//     digits; fixed notation unless the exponent leaves the normal display
//     range, then scientific (mantissa e±NN).
//   - FixedDecimals — plain fixed-point (%f-style) with Digits decimals.
//
// The set is intentionally closed: each style maps 1:1 onto a
// strconv.FormatFloat verb, so no format-string rewriting is ever needed.
type Style int

const (
	// SigDigits renders at a significant-digit count (verb 'g').
	SigDigits Style = iota

	// FixedDecimals renders with a fixed decimal count (verb 'f').
	FixedDecimals
)

// DefaultPrecision is the module-wide default significant-digit count.
// Single source of truth: every codec default derives from here.
const DefaultPrecision = 3

// Spec carries the effective precision policy through a codec call.
// The zero value is NOT a valid spec; obtain one via DefaultSpec or the
// Sig/Fixed constructors.
type Spec struct {
	Style  Style
	Digits int
}

// DefaultSpec returns the documented default policy: 3 significant digits.
// Complexity: O(1).
func DefaultSpec() Spec {
	return Spec{Style: SigDigits, Digits: DefaultPrecision}
}

// Sig returns a significant-digit Spec. Non-positive digits fall back to
// DefaultPrecision so a careless zero never produces degenerate output.
// Complexity: O(1).
func Sig(digits int) Spec {
	if digits <= 0 {
		digits = DefaultPrecision
	}

	return Spec{Style: SigDigits, Digits: digits}
}

// Fixed returns a fixed-decimal Spec. Negative digits clamp to zero.
// Complexity: O(1).
func Fixed(digits int) Spec {
	if digits < 0 {
		digits = 0
	}

	return Spec{Style: FixedDecimals, Digits: digits}
}

// verb maps the closed Style enum onto its strconv.FormatFloat verb.
func (s Spec) verb() byte {
	if s.Style == FixedDecimals {
		return 'f'
	}

	return 'g'
}

// Format renders a finite value under the spec's precision policy.
// Non-finite values pass through strconv's platform-neutral spellings
// (NaN, +Inf, -Inf); codecs that need notation-specific tokens must use
// FormatWith. Complexity: O(digits).
func (s Spec) Format(v float64) string {
	digits := s.Digits
	if s.Style == SigDigits && digits <= 0 {
		digits = DefaultPrecision
	}

	return strconv.FormatFloat(v, s.verb(), digits, 64)
}

// Tokens is a per-notation spelling table for the three non-finite values.
// Each codec owns exactly one table; finite values never consult it.
type Tokens struct {
	NaN    string
	PosInf string
	NegInf string
}

// FormatWith renders v using the notation's token table for non-finite
// values and the spec's numeric policy otherwise.
// Complexity: O(digits).
func (s Spec) FormatWith(v float64, t Tokens) string {
	switch {
	case math.IsNaN(v):
		return t.NaN
	case math.IsInf(v, +1):
		return t.PosInf
	case math.IsInf(v, -1):
		return t.NegInf
	}

	return s.Format(v)
}

// Parse recovers a float64 from a single cell token.
// Stage 1 (Normalize): trim surrounding whitespace, lowercase for matching.
// Stage 2 (Specials): accept the canonical tokens nan, inf, +inf, infinity,
// -inf, -infinity (case-insensitive).
// Stage 3 (Numeric): standard decimal/scientific parse via strconv.
// Fails with ErrInvalidNumber when the token matches neither pattern.
// Complexity: O(len(token)).
func Parse(token string) (float64, error) {
	tok := strings.TrimSpace(token)
	switch strings.ToLower(tok) {
	case "nan":
		return math.NaN(), nil
	case "inf", "+inf", "infinity", "+infinity":
		return math.Inf(+1), nil
	case "-inf", "-infinity":
		return math.Inf(-1), nil
	}

	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("numfmt.Parse(%q): %w", token, ErrInvalidNumber)
	}

	return v, nil
}
