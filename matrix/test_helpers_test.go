// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cellfix/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) path of a kernel.
type hide struct{ matrix.Matrix }

// mustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// mustRows BUILDS a *Dense from literal rows or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		tb.Fatalf("NewDenseFromRows(%v): %v", rows, err)
	}

	return m
}

// fillDenseRand FILLS m with values in [-1, 1) from a seeded source.
// Same seed ⇒ same matrix, so failures are reproducible.
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	err := m.Apply(func(_, _ int, _ float64) float64 {
		return rng.Float64()*2 - 1
	})
	if err != nil {
		tb.Fatalf("fillDenseRand: %v", err)
	}
}

// randDense ALLOCATES and fills an r×c matrix in one call.
func randDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	m := mustDense(tb, r, c)
	fillDenseRand(tb, m, seed)

	return m
}

// rowsOf EXPORTS any Matrix to plain rows via At (works for hide{} too).
func rowsOf(tb testing.TB, m matrix.Matrix) [][]float64 {
	tb.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			if err != nil {
				tb.Fatalf("At(%d,%d): %v", i, j, err)
			}
			out[i][j] = v
		}
	}

	return out
}
