// SPDX-License-Identifier: MIT

package fibonacci

import "errors"

var (
	// ErrInvalidArgument is returned for a negative index.
	ErrInvalidArgument = errors.New("fibonacci: invalid argument")

	// ErrOverflow is returned when F(n) does not fit in a uint64 (n > MaxIndex).
	ErrOverflow = errors.New("fibonacci: result overflows uint64")
)
