// SPDX-License-Identifier: MIT

package progression

import "errors"

var (
	// ErrConflictingParameters indicates d and s were both set.
	ErrConflictingParameters = errors.New("progression: d and s are mutually exclusive")

	// ErrTooManyParameters indicates a fourth parameter was set while three are already known.
	ErrTooManyParameters = errors.New("progression: exactly three parameters may be set")

	// ErrInsufficientParameters indicates fewer than three parameters were set.
	ErrInsufficientParameters = errors.New("progression: three parameters are required")

	// ErrInvalidN indicates a non-positive term count.
	ErrInvalidN = errors.New("progression: n must be > 0")

	// ErrUndefined indicates the given parameters do not determine a progression
	// (e.g. a1 + an == 0 while deriving n from s, or d == 0 while deriving n).
	ErrUndefined = errors.New("progression: parameters do not determine a progression")
)
