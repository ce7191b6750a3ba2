// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the universal kernels.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/eheitfield/SimpleMatrixKit/matrix"
)

// ---------- Add / Sub ----------

func TestAddFastPathCorrectness(t *testing.T) {
	t.Parallel()

	const rows, cols = 6, 6
	var i, j int

	A := MustDense(t, rows, cols)
	B := MustDense(t, rows, cols)

	// A[i,j] = i+j; B[i,j] = 10 - (i+j)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			MustSet(t, A, i, j, float64(i+j))
			MustSet(t, B, i, j, float64(10-(i+j)))
		}
	}

	S, err := matrix.Add(A, B)
	if err != nil {
		t.Fatalf("matrix.Add: want err == nil, got: %v", err)
	}

	// Expect constant 10 everywhere
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if got := MustAt(t, S, i, j); got != 10.0 {
				t.Fatalf("at [%d,%d]: want 10, got %g", i, j, got)
			}
		}
	}
}

// TestAddFallbackMatchesFastPath ensures that using a non-nil wrapper
// (which hides the concrete type) forces the interface fallback path
// and produces the same results as with the bare Dense.
func TestAddFallbackMatchesFastPath(t *testing.T) {
	t.Parallel()

	const rows, cols = 3, 3
	var i, j int

	base := MustDense(t, rows, cols)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			MustSet(t, base, i, j, float64(i*cols+j+1))
		}
	}

	wrapped := hide{base} // force fallback

	sum1, err := matrix.Add(base, base)
	if err != nil {
		t.Fatalf("matrix.Add(base, base): %v", err)
	}
	sum2, err := matrix.Add(wrapped, base)
	if err != nil {
		t.Fatalf("matrix.Add(wrapped, base): %v", err)
	}

	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if MustAt(t, sum1, i, j) != MustAt(t, sum2, i, j) {
				t.Fatalf("fast path and fallback disagree at [%d,%d]", i, j)
			}
		}
	}
}

func TestSubYieldsZero(t *testing.T) {
	t.Parallel()

	A := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	D, err := matrix.Sub(A, A)
	if err != nil {
		t.Fatalf("matrix.Sub: %v", err)
	}
	CompareExact(t, [][]float64{{0, 0}, {0, 0}}, D)
}

func TestAddShapeMismatch(t *testing.T) {
	t.Parallel()

	A := MustDense(t, 2, 3)
	B := MustDense(t, 3, 2)
	if _, err := matrix.Add(A, B); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
	if _, err := matrix.Add(nil, B); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("want ErrNilMatrix, got %v", err)
	}
}

// ---------- Mul ----------

func TestMulKnownProduct(t *testing.T) {
	t.Parallel()

	A := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	B := MustFromRows(t, [][]float64{{5, 6}, {7, 8}})

	P, err := matrix.Mul(A, B)
	if err != nil {
		t.Fatalf("matrix.Mul: %v", err)
	}
	CompareExact(t, [][]float64{{19, 22}, {43, 50}}, P)
}

func TestMulIdentityIsNeutral(t *testing.T) {
	t.Parallel()

	A := MustFromRows(t, [][]float64{{1, 2, 4}, {4, 5, 6}, {7, 8, 12}})
	I := MustIdentity(t, 3)

	left, err := matrix.Mul(I, A)
	if err != nil {
		t.Fatalf("I*A: %v", err)
	}
	right, err := matrix.Mul(A, I)
	if err != nil {
		t.Fatalf("A*I: %v", err)
	}
	CompareExact(t, [][]float64{{1, 2, 4}, {4, 5, 6}, {7, 8, 12}}, left)
	CompareExact(t, [][]float64{{1, 2, 4}, {4, 5, 6}, {7, 8, 12}}, right)
}

func TestMulFallbackMatchesFastPath(t *testing.T) {
	t.Parallel()

	A := MustFromRows(t, [][]float64{{2, 0, 1}, {-1, 3, 2}})
	B := MustFromRows(t, [][]float64{{1, 1}, {0, -2}, {4, 5}})

	fast, err := matrix.Mul(A, B)
	if err != nil {
		t.Fatalf("fast path Mul: %v", err)
	}
	slow, err := matrix.Mul(hide{A}, hide{B})
	if err != nil {
		t.Fatalf("fallback Mul: %v", err)
	}

	var i, j int
	for i = 0; i < fast.Rows(); i++ {
		for j = 0; j < fast.Cols(); j++ {
			if MustAt(t, fast, i, j) != MustAt(t, slow, i, j) {
				t.Fatalf("fast path and fallback disagree at [%d,%d]", i, j)
			}
		}
	}
}

func TestMulInnerMismatch(t *testing.T) {
	t.Parallel()

	A := MustDense(t, 2, 3)
	B := MustDense(t, 2, 3)
	if _, err := matrix.Mul(A, B); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
}

// ---------- Transpose / Scale ----------

func TestTransposeTwiceIsIdentity(t *testing.T) {
	t.Parallel()

	A := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	T1, err := matrix.Transpose(A)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, T1)

	T2, err := matrix.Transpose(hide{T1})
	if err != nil {
		t.Fatalf("Transpose fallback: %v", err)
	}
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, T2)
}

func TestScale(t *testing.T) {
	t.Parallel()

	A := MustFromRows(t, [][]float64{{1, -2}, {0, 4}})
	S, err := matrix.Scale(A, -0.5)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	CompareExact(t, [][]float64{{-0.5, 1}, {0, -2}}, S)
}

// ---------- Hadamard / MatVec ----------

func TestHadamard(t *testing.T) {
	t.Parallel()

	A := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	B := MustFromRows(t, [][]float64{{2, 0.5}, {-1, 2}})
	H, err := matrix.Hadamard(A, B)
	if err != nil {
		t.Fatalf("Hadamard: %v", err)
	}
	CompareExact(t, [][]float64{{2, 1}, {-3, 8}}, H)
}

func TestMatVec(t *testing.T) {
	t.Parallel()

	A := MustFromRows(t, [][]float64{{1, 2, 4}, {4, 5, 6}})
	y, err := matrix.MatVec(A, []float64{1, 0, -1})
	if err != nil {
		t.Fatalf("MatVec: %v", err)
	}
	if y[0] != -3 || y[1] != -2 {
		t.Fatalf("MatVec result: want [-3 -2], got %v", y)
	}

	// Length mismatch must surface the dimension sentinel.
	if _, err = matrix.MatVec(A, []float64{1, 2}); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
}
