// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities (O(1) alloc + O(rc) zeroing by runtime) ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init by the runtime.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// FromRows builds a *Dense from a rectangular [][]float64.
//
// Implementation:
//   - Stage 1: reject empty input (ErrInvalidDimensions) and ragged rows
//     (ErrRaggedRows) before allocating.
//   - Stage 2: copy row by row into the flat backing slice.
//
// The input slices are copied; later mutation of rows does not affect the
// returned matrix. Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	// Validate outer and inner dimensions.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, opErrorf(opFromRows, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, opErrorf(opFromRows, ErrRaggedRows)
		}
	}

	// Allocate and fill.
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, opErrorf(opFromRows, err)
	}
	for i, row := range rows {
		copy(m.data[i*cols:], row)
	}

	return m, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c) copy for dense; implementation-defined otherwise.
func CloneMatrix(m Matrix) Matrix {
	// Delegate to polymorphic clone on the concrete implementation.
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing. Handy to preallocate staging buffers.
func ZerosLike(m Matrix) (*Dense, error) {
	// Read shape once and call NewDense with the same dimensions.
	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2). Validates square via central validator.
func IdentityLike(m Matrix) (*Dense, error) {
	// Ensure the input is square using the centralized validator.
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, opErrorf("IdentityLike", err)
	}

	// Construct the identity of matching dimension.
	return NewIdentity(m.Rows())
}

// ---------- Linear Algebra aliases (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b. Complexity: O(rc).
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b. Complexity: O(rc).
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b. Complexity: O(r*n*c).
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ. Complexity: O(rc).
func T(m Matrix) (Matrix, error) { return Transpose(m) }
