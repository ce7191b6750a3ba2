// SPDX-License-Identifier: MIT
// Package lup: queries served from the cached factorization.
// None of these recompute the factorization; they either read the cached
// factors or (Trace) the original diagonal.

package lup

import (
	"fmt"

	"github.com/eheitfield/SimpleMatrixKit/matrix"
)

// Operation tags for error wrapping.
const (
	opFactors = "Factors"
	opSolve   = "Solve"
	opInverse = "Inverse"
)

// Factors returns independent copies of the cached factors: L (unit lower
// triangular), U (upper triangular), the row order array (position i of P·A
// holds original row perm[i]) and the number of row transpositions
// performed. Returns ErrSingular when no factorization exists.
// Complexity: O(n²) for the defensive copies.
func (f *Factored) Factors() (l, u matrix.Matrix, perm []int, swaps int, err error) {
	if !f.Defined() {
		return nil, nil, nil, 0, fmt.Errorf("%s: %w", opFactors, ErrSingular)
	}

	order := make([]int, f.n)
	copy(order, f.perm)

	return f.l.Clone(), f.u.Clone(), order, f.swaps, nil
}

// Determinant returns det(A) from the cached factorization.
//
// A matrix with an undefined LUP factorization under this algorithm is
// singular, so Determinant reports 0 without error. Otherwise the result is
// sign · Πdiag(L) · Πdiag(U), with sign = +1 for an even number of row
// swaps, −1 for odd. L is unit-triangular so Πdiag(L) is always 1; it is
// included for symmetry with the general formula.
// Complexity: O(n).
func (f *Factored) Determinant() float64 {
	if !f.Defined() {
		return 0 // undefined factorization ⇒ singular ⇒ zero determinant
	}

	det := 1.0
	var lii, uii float64
	for i := 0; i < f.n; i++ {
		lii, _ = f.l.At(i, i)
		uii, _ = f.u.At(i, i)
		det *= lii * uii
	}
	if f.swaps%2 == 1 {
		det = -det
	}

	return det
}

// Trace returns the sum of the main-diagonal elements of the original
// matrix. Independent of the factorization: it works even when the matrix
// is singular. Complexity: O(n).
func (f *Factored) Trace() float64 {
	var sum, aii float64
	for i := 0; i < f.n; i++ {
		aii, _ = f.a.At(i, i)
		sum += aii
	}

	return sum
}

// Solve returns X such that A·X = B, using the cached factors:
// permute B by the cached row order, forward-substitute L·Y = P·B, then
// back-substitute U·X = Y.
//
// Errors: matrix.ErrNilMatrix / matrix.ErrDimensionMismatch when B does not
// conform (B.Rows must equal n); ErrSingular when no factorization is
// cached or a zero diagonal survives in U.
// Complexity: Time O(n²·cols), Space O(n·cols).
func (f *Factored) Solve(b matrix.Matrix) (matrix.Matrix, error) {
	// Shape preconditions first: they are programmer errors, detected
	// eagerly before any computation.
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	if b.Rows() != f.n {
		return nil, fmt.Errorf("%s: %w", opSolve, matrix.ErrDimensionMismatch)
	}
	// Numerical singularity second: a legitimate run-time outcome.
	if !f.Defined() {
		return nil, fmt.Errorf("%s: %w", opSolve, ErrSingular)
	}

	// P·B, then two triangular sweeps.
	pb := permuteRows(b, f.perm)
	y, err := ForwardSolve(f.l, pb)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	x, err := BackwardSolve(f.u, y)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	return x, nil
}

// Inverse returns A⁻¹, computed as Solve(I_n).
// Errors: ErrSingular when no factorization is cached.
// Complexity: Time O(n³), Space O(n²).
func (f *Factored) Inverse() (matrix.Matrix, error) {
	// Report singularity before allocating the identity RHS.
	if !f.Defined() {
		return nil, fmt.Errorf("%s: %w", opInverse, ErrSingular)
	}

	eye, err := matrix.NewIdentity(f.n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInverse, err)
	}
	x, err := f.Solve(eye)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInverse, err)
	}

	return x, nil
}
