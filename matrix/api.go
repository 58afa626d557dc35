// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication; each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

const opMultiplyRows = "MultiplyRows"

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as the neutral element when checking M × I == M.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ---------- Products ----------

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// MultiplyRows multiplies two matrices given as plain rows and returns plain rows.
// Implementation:
//   - Stage 1: ingest a and b via NewDenseFromRows (shape + numeric policy).
//   - Stage 2: Mul on the *Dense fast path.
//   - Stage 3: export with ToRows (fresh storage).
//
// Behavior highlights:
//   - a and b are read only; the result shares no storage with them.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape, ErrNaNInf (ingestion).
//   - ErrDimensionMismatch when len(a[0]) != len(b).
//
// Complexity:
//   - Time O(m*n*p), Space O(m*n + n*p + m*p).
func MultiplyRows(a, b [][]float64, opts ...Option) ([][]float64, error) {
	da, err := NewDenseFromRows(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opMultiplyRows, err)
	}
	db, err := NewDenseFromRows(b, opts...)
	if err != nil {
		return nil, matrixErrorf(opMultiplyRows, err)
	}
	c, err := Mul(da, db)
	if err != nil {
		return nil, matrixErrorf(opMultiplyRows, err)
	}

	return c.(*Dense).ToRows(), nil
}

// ---------- Numeric compare ----------

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; non-finite tolerances yield ErrNaNInf.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for associativity checks in tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
