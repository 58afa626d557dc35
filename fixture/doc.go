// Package fixture runs the matrix-multiply, Fibonacci and greet fixtures
// with literal sample inputs and returns their results.
//
// Every fixture has a stable Name, a one-line description and a runner.
// Inputs default to the literal samples and can be overridden from a
// YAML file:
//
//	matrix_multiply:
//	  a: [[1, 2], [3, 4]]
//	  b: [[5, 6], [7, 8]]
//	fibonacci:
//	  n: 10
//	greet:
//	  count: 3
//
// Runner logs each run through zap; a nil logger is replaced by a no-op one.
package fixture
