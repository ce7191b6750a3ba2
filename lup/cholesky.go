// SPDX-License-Identifier: MIT
// Package lup: Cholesky factorization.
//
// Cholesky is NOT derived from the LUP cache: it is an independent
// algorithm over the original matrix, retained as a secondary capability
// for symmetric positive-definite inputs. Non-positive-definiteness is
// detected explicitly (the diagonal pivot argument is checked before the
// square root) instead of letting math.Sqrt return NaN.

package lup

import (
	"fmt"
	"math"

	"github.com/eheitfield/SimpleMatrixKit/matrix"
)

// opCholesky tags Cholesky errors.
const opCholesky = "Cholesky"

// Cholesky returns the lower-triangular L with A = L·Lᵀ for the symmetric
// positive-definite original matrix A.
//
// Implementation:
//   - Stage 1: validate symmetry within the configured epsilon
//     (matrix.ErrAsymmetry on violation; symmetry is checked against the
//     ORIGINAL matrix, not the factors).
//   - Stage 2: column by column, rows top-down:
//     diagonal      L[j,j] = sqrt(A[j,j] − Σ_{k<j} L[j,k]²)
//     off-diagonal  L[i,j] = (A[i,j] − Σ_{k<j} L[i,k]·L[j,k]) / L[j,j]
//     with the sqrt argument required strictly positive.
//
// Errors: matrix.ErrAsymmetry; ErrNotPositiveDefinite when a diagonal pivot
// argument is ≤ 0.
// Determinism: fixed j→i→k loop order.
// Complexity: Time O(n³), Space O(n²).
func (f *Factored) Cholesky() (matrix.Matrix, error) {
	// Symmetric-only precondition, within the configured tolerance.
	if err := matrix.ValidateSymmetric(f.a, f.opts.epsilon); err != nil {
		return nil, fmt.Errorf("%s: %w", opCholesky, err)
	}

	n := f.n
	l, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCholesky, err)
	}

	var (
		i, j, k        int     // loop iterators
		sum, aij       float64 // accumulator and A[i,j]
		ljk, lik, diag float64 // L elements and the current diagonal pivot
	)
	for j = 0; j < n; j++ {
		// Diagonal element first: it gates the whole column.
		sum = 0
		for k = 0; k < j; k++ {
			ljk, _ = l.At(j, k)
			sum += ljk * ljk
		}
		aij, _ = f.a.At(j, j)
		if aij-sum <= 0 {
			// Explicit positive-definiteness check: fail cleanly instead of
			// computing sqrt of a non-positive argument.
			return nil, fmt.Errorf("%s: %w", opCholesky, ErrNotPositiveDefinite)
		}
		diag = math.Sqrt(aij - sum)
		_ = l.Set(j, j, diag)

		// Off-diagonal elements below the pivot.
		for i = j + 1; i < n; i++ {
			sum = 0
			for k = 0; k < j; k++ {
				lik, _ = l.At(i, k)
				ljk, _ = l.At(j, k)
				sum += lik * ljk
			}
			aij, _ = f.a.At(i, j)
			_ = l.Set(i, j, (aij-sum)/diag)
		}
	}

	return l, nil
}
