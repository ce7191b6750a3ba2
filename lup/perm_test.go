// SPDX-License-Identifier: MIT
package lup_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eheitfield/SimpleMatrixKit/lup"
	"github.com/eheitfield/SimpleMatrixKit/matrix"
)

func TestPermutationMatrixReordersRows(t *testing.T) {
	t.Parallel()

	p, err := lup.PermutationMatrix([]int{2, 0, 1})
	require.NoError(t, err)

	a := mustDenseOf(t, [][]float64{{1, 1}, {2, 2}, {3, 3}})
	pa, err := matrix.Mul(p, a)
	require.NoError(t, err)

	// Row i of P·A is row order[i] of A.
	want := mustDenseOf(t, [][]float64{{3, 3}, {1, 1}, {2, 2}})
	requireClose(t, want, pa, solveTol)
}

func TestPermutationMatrixIdentityOrder(t *testing.T) {
	t.Parallel()

	p, err := lup.PermutationMatrix([]int{0, 1, 2, 3})
	require.NoError(t, err)

	eye, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	requireClose(t, eye, p, 0)
}

func TestPermutationMatrixRejectsBadOrders(t *testing.T) {
	t.Parallel()

	for name, order := range map[string][]int{
		"duplicate":    {0, 0, 2},
		"out of range": {0, 3, 1},
		"negative":     {0, -1, 2},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := lup.PermutationMatrix(order)
			require.ErrorIs(t, err, lup.ErrBadPermutation)
		})
	}

	_, err := lup.PermutationMatrix(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
