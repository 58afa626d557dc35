// SPDX-License-Identifier: MIT

package fibonacci

import "fmt"

// MaxIndex is the largest n with F(n) representable as uint64.
// F(93) = 12200160415121876738; F(94) exceeds 1<<64 - 1.
// MaxIndex bounds the result type, not the running time: the recursion
// makes about φ^n calls, so indices above ~45 are impractical.
const MaxIndex = 93

// Fibonacci returns F(n) under F(0)=0, F(1)=1.
//
// Errors:
//   - ErrInvalidArgument when n < 0.
//   - ErrOverflow when n > MaxIndex.
//
// Complexity: O(φ^n) time, O(n) stack depth. F(40) takes on the order of
// a second; each further index multiplies that by ~1.6, so n above ~45 is
// impractical.
func Fibonacci(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("Fibonacci(%d): %w", n, ErrInvalidArgument)
	}
	if n > MaxIndex {
		return 0, fmt.Errorf("Fibonacci(%d): index above %d: %w", n, MaxIndex, ErrOverflow)
	}

	return fib(uint64(n)), nil
}

// fib is the unchecked recursion; n is already validated.
func fib(n uint64) uint64 {
	if n < 2 {
		return n
	}

	return fib(n-1) + fib(n-2)
}
