// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Convert to and from plain [][]float64 rows without sharing storage.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewDenseFromRows/ToRows: O(r*c) copy; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxApply    = "Apply"    // method tag used in error wrappers
	ctxFromRows = "FromRows" // ctor tag for NewDenseFromRows
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <sentinel>"; the sentinel stays matchable via errors.Is.
//
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set/Apply (policy default from options.go).
type Dense struct {
	r, c           int       // row and column counts (>0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills the flat buffer deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseFromRows copies a rectangular [][]float64 into a fresh Dense.
// MAIN DESCRIPTION:
//   - Ingest plain row data (e.g. decoded YAML/JSON) with full shape and numeric validation.
//
// Implementation:
//   - Stage 1: ValidateRows (non-empty, rectangular).
//   - Stage 2: resolve options; allocate via NewDense.
//   - Stage 3: copy row by row; reject NaN/±Inf when the policy is on.
//
// Behavior highlights:
//   - The input slice is never retained; later mutations of rows do not leak in.
//   - The resolved numeric policy is stored on the result and carried by Clone.
//
// Inputs:
//   - rows: row-major data; every row must have len(rows[0]) entries.
//   - opts: WithValidateNaNInf / WithNoValidateNaNInf.
//
// Errors:
//   - ErrInvalidDimensions (no rows or empty first row).
//   - ErrBadShape (ragged rows).
//   - ErrNaNInf (non-finite entry under the validating policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxFromRows, err)
	}
	o := gatherOptions(opts...)

	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxFromRows, err)
	}
	m.validateNaNInf = o.validateNaNInf

	var i, j int
	for i = 0; i < r; i++ {
		if m.validateNaNInf {
			for j = 0; j < c; j++ {
				if isNonFinite(rows[i][j]) {
					return nil, denseErrorf(ctxFromRows, i, j, ErrNaNInf)
				}
			}
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// The sentinel is returned bare; public methods wrap it with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range indices.
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v when the policy is on.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Mutations on the clone never affect the original.
//
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// ToRows exports the matrix as freshly allocated [][]float64 rows.
// The returned slices share no storage with m.
//
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String renders rows as lines with comma-separated %g values, e.g. "[1, 2]\n[3, 4]\n".
// Intended for logs and CLI output; not for hot paths.
//
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only, no allocations.
//
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic row-major order.
//
// Behavior highlights:
//   - Early error aborts; elements written before the error remain updated.
//
// Errors:
//   - ErrNaNInf when f produced a non-finite value and the policy is on.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// Notes:
//   - For all-or-nothing semantics, transform a Clone and swap on success.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}
