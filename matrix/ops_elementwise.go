// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparison helpers.
//
// Determinism:
//   - Fixed i→j traversal (flat 0..n-1 on *Dense); early exit on first violation.

package matrix

import "math"

const opAllClose = "AllClose"

// ewAllClose checks |a-b| ≤ atol + rtol*|b| element-wise for identical shapes.
// NaN never compares close; +Inf equals +Inf and -Inf equals -Inf.
//
// Complexity: Time O(r*c), Space O(1).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf) // invalid tolerance
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := r * c
			for idx := 0; idx < n; idx++ {
				if !closeEnough(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j) // bounds guaranteed by the shape check
			bv, _ = b.At(i, j)
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeEnough is the scalar relation behind AllClose.
func closeEnough(av, bv, rtol, atol float64) bool {
	if av == bv { // covers equal infinities
		return true
	}
	if math.IsNaN(av) || math.IsNaN(bv) || math.IsInf(av, 0) || math.IsInf(bv, 0) {
		return false
	}

	return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
}
