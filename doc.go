// Package cellfix runs small fixtures (a matrix product, a Fibonacci number
// and a greeting loop) with literal sample inputs and prints their results.
//
// What is in the box?
//
//	• matrix/      row-major Dense matrices and the naive product C = A × B
//	• fibonacci/   F(n) by plain double recursion, F(0)=0, F(1)=1
//	• fixture/     named fixtures (including greet), YAML sample inputs and a logging runner
//	• cmd/cellfix  the CLI: list, run, matmul, fib
//
// Both algorithms are intentionally naive: the product is the O(m·n·p)
// triple loop and Fibonacci makes O(φ^n) calls. Inputs are validated
// (shape mismatches and negative indices return sentinel errors) and are
// never mutated.
//
// Quick example:
//
//	[[1, 2],   ×   [[5, 6],   =   [[19, 22],
//	 [3, 4]]        [7, 8]]        [43, 50]]
//
//	fib(10) = 55
//
// From the command line:
//
//	go run ./cmd/cellfix run
//	go run ./cmd/cellfix matmul --a '[[1, 2], [3, 4]]' --b '[[5, 6], [7, 8]]'
//	go run ./cmd/cellfix fib 10
package cellfix
