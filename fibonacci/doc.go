// Package fibonacci computes Fibonacci numbers by plain double recursion.
//
// Convention: F(0) = 0, F(1) = 1, F(n) = F(n-1) + F(n-2).
//
// Key points:
//   - Fibonacci(n) validates its argument: negative indices fail with
//     ErrInvalidArgument, indices above MaxIndex fail with ErrOverflow
//     (F(94) no longer fits in a uint64).
//   - No memoization and no iteration: the call tree is the textbook
//     one, so the cost grows as O(φ^n). Indices in the low forties
//     already take seconds and anything above ~45 is impractical, even
//     though every index up to MaxIndex is accepted.
//
// Usage:
//
//	import "github.com/katalvlaran/cellfix/fibonacci"
//
//	f, err := fibonacci.Fibonacci(10) // 55, nil
package fibonacci
