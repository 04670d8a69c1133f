// SPDX-License-Identifier: MIT
// Package texmat: sentinel error set.

package texmat

import "errors"

// ErrInvalidEnvironment indicates a serialize request for an environment
// name outside the five recognized ones. Parsing never returns this:
// unrecognized begin/end pairs in a document are simply not matches.
var ErrInvalidEnvironment = errors.New("texmat: invalid environment")
