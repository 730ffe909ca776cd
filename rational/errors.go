// SPDX-License-Identifier: MIT

package rational

import "errors"

var (
	// ErrUnsupportedType indicates a value whose Go type has no rational conversion.
	ErrUnsupportedType = errors.New("rational: unsupported type")

	// ErrNotFinite indicates a NaN or ±Inf float at the boundary.
	ErrNotFinite = errors.New("rational: NaN or Inf")

	// ErrParse indicates a string that is not a rational literal.
	ErrParse = errors.New("rational: cannot parse")

	// ErrNonPositive indicates an element <= 0 where only positive weights are allowed.
	ErrNonPositive = errors.New("rational: value must be > 0")

	// ErrEmpty indicates an empty vector where at least one element is required.
	ErrEmpty = errors.New("rational: empty vector")
)
