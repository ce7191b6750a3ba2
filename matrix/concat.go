// SPDX-License-Identifier: MIT
// Package matrix: concatenation kernels.
// HConcat and VConcat are plainly named functions (no operator sugar); the
// axis that must agree is validated first so a horizontal mismatch and a
// vertical mismatch surface with distinct operation tags.

package matrix

import "fmt"

// HConcat returns the horizontal concatenation [A | B].
//
// Implementation:
//   - Stage 1: validate both operands non-nil and A.Rows == B.Rows.
//   - Stage 2: copy row blocks left-to-right with a *Dense fast path.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped as "HConcat: ...").
// Complexity: Time O(r*(ca+cb)), Space O(r*(ca+cb)).
func HConcat(a, b Matrix) (Matrix, error) {
	// Validate operands individually before touching shapes.
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(opHConcat, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, opErrorf(opHConcat, err)
	}
	// Row counts must agree for a side-by-side join.
	if a.Rows() != b.Rows() {
		return nil, opErrorf(opHConcat, ErrDimensionMismatch)
	}

	rows, ca, cb := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, ca+cb)
	if err != nil {
		return nil, opErrorf(opHConcat, err)
	}

	// Fast path: both *Dense → two copy calls per row.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var i int
			for i = 0; i < rows; i++ {
				copy(res.data[i*(ca+cb):], da.data[i*ca:(i+1)*ca])
				copy(res.data[i*(ca+cb)+ca:], db.data[i*cb:(i+1)*cb])
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop, fixed i→j order.
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < ca; j++ {
			v, err = a.At(i, j)
			if err != nil {
				return nil, opErrorf(opHConcat, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*(ca+cb)+j] = v
		}
		for j = 0; j < cb; j++ {
			v, err = b.At(i, j)
			if err != nil {
				return nil, opErrorf(opHConcat, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*(ca+cb)+ca+j] = v
		}
	}

	return res, nil
}

// VConcat returns the vertical concatenation [A ; B] (A stacked above B).
//
// Implementation:
//   - Stage 1: validate both operands non-nil and A.Cols == B.Cols.
//   - Stage 2: copy A's rows, then B's rows, top-to-bottom.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped as "VConcat: ...").
// Complexity: Time O((ra+rb)*c), Space O((ra+rb)*c).
func VConcat(a, b Matrix) (Matrix, error) {
	// Validate operands individually before touching shapes.
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(opVConcat, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, opErrorf(opVConcat, err)
	}
	// Column counts must agree for a stacked join.
	if a.Cols() != b.Cols() {
		return nil, opErrorf(opVConcat, ErrDimensionMismatch)
	}

	ra, rb, cols := a.Rows(), b.Rows(), a.Cols()
	res, err := NewDense(ra+rb, cols)
	if err != nil {
		return nil, opErrorf(opVConcat, err)
	}

	// Fast path: both *Dense → two block copies.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			copy(res.data, da.data)
			copy(res.data[ra*cols:], db.data)

			return res, nil
		}
	}

	// Fallback: generic interface loop, fixed i→j order.
	var i, j int
	var v float64
	for i = 0; i < ra; i++ {
		for j = 0; j < cols; j++ {
			v, err = a.At(i, j)
			if err != nil {
				return nil, opErrorf(opVConcat, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = v
		}
	}
	for i = 0; i < rb; i++ {
		for j = 0; j < cols; j++ {
			v, err = b.At(i, j)
			if err != nil {
				return nil, opErrorf(opVConcat, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[(ra+i)*cols+j] = v
		}
	}

	return res, nil
}
