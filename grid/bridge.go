// SPDX-License-Identifier: MIT
// Package grid: bridging between generic float64 storage and the dense
// engine in package matrix. This is the seam the lup core enters through:
// any RowProvider[float64] can be lowered to a *matrix.Dense and factored.

package grid

import "github.com/eheitfield/SimpleMatrixKit/matrix"

// ToDense lowers any float64 row provider to a *matrix.Dense copy.
// Errors: matrix.ErrInvalidDimensions on an empty provider,
// matrix.ErrRaggedRows when the provider violates its contract.
// Complexity: O(r*c).
func ToDense(p RowProvider[float64]) (*matrix.Dense, error) {
	// FromRows re-validates rectangularity; a provider breaking its contract
	// surfaces as matrix.ErrRaggedRows instead of corrupting the engine.
	return matrix.FromRows(p.GridRows())
}

// FromMatrix lifts any matrix.Matrix into a generic float64 Grid copy.
// Errors: ErrInvalidDimensions on nil input. Complexity: O(r*c).
func FromMatrix(m matrix.Matrix) (*Grid[float64], error) {
	if m == nil {
		return nil, gridErrorf("FromMatrix", ErrInvalidDimensions)
	}

	r, c := m.Rows(), m.Cols()
	out, err := NewSized[float64](r, c)
	if err != nil {
		return nil, gridErrorf("FromMatrix", err)
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, gridErrorf("FromMatrix", err)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}
