// SPDX-License-Identifier: MIT
// Package lup: triangular solvers.
//
// ForwardSolve and BackwardSolve are pure functions with no shared mutable
// state: safe to invoke repeatedly with different right-hand sides against
// the same triangular factor. Each solution column is independent; the scan
// order within a column is fixed (top-down / bottom-up) for determinism.

package lup

import (
	"fmt"

	"github.com/eheitfield/SimpleMatrixKit/matrix"
)

// Operation tags for error wrapping.
const (
	opForward  = "ForwardSolve"
	opBackward = "BackwardSolve"
)

// validateTriangularArgs shares the shape preconditions of both solvers:
// the factor must be square and its row count must match the RHS.
func validateTriangularArgs(tag string, factor, b matrix.Matrix) error {
	if err := matrix.ValidateSquareNonNil(factor); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	if factor.Rows() != b.Rows() {
		return fmt.Errorf("%s: %w", tag, matrix.ErrDimensionMismatch)
	}

	return nil
}

// ForwardSolve solves L·X = B for lower-triangular L with nonzero diagonal,
// one solution column at a time, rows top-down:
//
//	x[i] = (b[i] − Σ_{k<i} L[i,k]·x[k]) / L[i,i]
//
// Entries above L's diagonal are never read, so a full (non-triangular)
// matrix may be passed; only its lower triangle participates.
//
// Errors: matrix.ErrNonSquare, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch
// on shape; ErrSingular on a zero diagonal entry.
// Complexity: Time O(n²·cols), Space O(n·cols) for the result.
func ForwardSolve(l, b matrix.Matrix) (matrix.Matrix, error) {
	if err := validateTriangularArgs(opForward, l, b); err != nil {
		return nil, err
	}

	n, cols := l.Rows(), b.Cols()
	x, err := matrix.NewDense(n, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opForward, err)
	}

	var (
		c, i, k   int     // loop iterators: column, row, dot-product index
		sum, lik  float64 // accumulator and L[i,k]
		xkc, diag float64 // x[k,c] and the diagonal pivot
	)
	for c = 0; c < cols; c++ { // each RHS column independently
		for i = 0; i < n; i++ { // rows top-down
			sum, _ = b.At(i, c) // At is O(1); errors impossible after validation
			for k = 0; k < i; k++ {
				lik, _ = l.At(i, k)
				xkc, _ = x.At(k, c)
				sum -= lik * xkc
			}
			diag, _ = l.At(i, i)
			if diag == 0 {
				return nil, fmt.Errorf("%s: %w", opForward, ErrSingular)
			}
			_ = x.Set(i, c, sum/diag)
		}
	}

	return x, nil
}

// BackwardSolve solves U·X = B for upper-triangular U with nonzero diagonal,
// the symmetric algorithm scanning rows bottom-up:
//
//	x[i] = (b[i] − Σ_{k>i} U[i,k]·x[k]) / U[i,i]
//
// Entries below U's diagonal are never read.
//
// Errors: matrix.ErrNonSquare, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch
// on shape; ErrSingular on a zero diagonal entry.
// Complexity: Time O(n²·cols), Space O(n·cols) for the result.
func BackwardSolve(u, b matrix.Matrix) (matrix.Matrix, error) {
	if err := validateTriangularArgs(opBackward, u, b); err != nil {
		return nil, err
	}

	n, cols := u.Rows(), b.Cols()
	x, err := matrix.NewDense(n, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBackward, err)
	}

	var (
		c, i, k   int
		sum, uik  float64
		xkc, diag float64
	)
	for c = 0; c < cols; c++ { // each RHS column independently
		for i = n - 1; i >= 0; i-- { // rows bottom-up
			sum, _ = b.At(i, c)
			for k = i + 1; k < n; k++ {
				uik, _ = u.At(i, k)
				xkc, _ = x.At(k, c)
				sum -= uik * xkc
			}
			diag, _ = u.At(i, i)
			if diag == 0 {
				return nil, fmt.Errorf("%s: %w", opBackward, ErrSingular)
			}
			_ = x.Set(i, c, sum/diag)
		}
	}

	return x, nil
}
