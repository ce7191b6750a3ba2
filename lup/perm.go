// SPDX-License-Identifier: MIT
// Package lup: permutation helpers.
// The engine stores permutations as order arrays, not materialized 0/1
// matrices, to avoid wasted memory; PermutationMatrix is the documented
// reconstruction helper for callers that need the explicit P.

package lup

import (
	"fmt"

	"github.com/eheitfield/SimpleMatrixKit/matrix"
)

// opPermMatrix tags PermutationMatrix validation errors.
const opPermMatrix = "PermutationMatrix"

// PermutationMatrix reconstructs the dense permutation matrix P implied by
// an order array: P[i, order[i]] = 1, so that (P·A) row i equals A row
// order[i] — exactly the convention of the order returned by Factors.
//
// Errors: ErrBadPermutation unless order is a bijection on [0, len(order)),
// matrix.ErrInvalidDimensions on an empty order.
// Complexity: Time O(n²) (allocation-dominated), Space O(n²).
func PermutationMatrix(order []int) (*matrix.Dense, error) {
	n := len(order)
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", opPermMatrix, matrix.ErrInvalidDimensions)
	}

	// Validate bijectivity with a seen-set over [0, n).
	seen := make([]bool, n)
	for _, src := range order {
		if src < 0 || src >= n || seen[src] {
			return nil, fmt.Errorf("%s: %w", opPermMatrix, ErrBadPermutation)
		}
		seen[src] = true
	}

	p, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPermMatrix, err)
	}
	for i, src := range order {
		_ = p.Set(i, src, 1.0)
	}

	return p, nil
}

// permuteRows materializes P·B for the given order array:
// row i of the result is row order[i] of b. The caller guarantees
// len(order) == b.Rows(). Complexity: O(r*c).
func permuteRows(b matrix.Matrix, order []int) *matrix.Dense {
	rows, cols := b.Rows(), b.Cols()
	out, _ := matrix.NewDense(rows, cols)

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = b.At(order[i], j) // bounds hold: order is a bijection on rows
			_ = out.Set(i, j, v)
		}
	}

	return out
}
