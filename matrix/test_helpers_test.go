// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"testing"

	"github.com/eheitfield/SimpleMatrixKit/matrix"
)

// testTol is the default comparison tolerance for floating-point assertions.
const testTol = 1e-9

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths of kernels;
// fast path and fallback must agree bit-for-bit or within AllClose.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows builds a *Dense from literal rows or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes m[i,j] = v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// CompareExact asserts that m equals the reference rows exactly (==).
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	if len(want) != m.Rows() || len(want[0]) != m.Cols() {
		t.Fatalf("shape mismatch: want %dx%d, got %dx%d",
			len(want), len(want[0]), m.Rows(), m.Cols())
	}
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if got := MustAt(t, m, i, j); got != want[i][j] {
				t.Fatalf("at [%d,%d]: want %g, got %g", i, j, want[i][j], got)
			}
		}
	}
}

// CompareClose asserts that m equals the reference rows within tol.
func CompareClose(t *testing.T, want [][]float64, m matrix.Matrix, tol float64) {
	t.Helper()
	if len(want) != m.Rows() || len(want[0]) != m.Cols() {
		t.Fatalf("shape mismatch: want %dx%d, got %dx%d",
			len(want), len(want[0]), m.Rows(), m.Cols())
	}
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			got := MustAt(t, m, i, j)
			if math.Abs(got-want[i][j]) > tol {
				t.Fatalf("at [%d,%d]: want %g, got %g (tol %g)", i, j, want[i][j], got, tol)
			}
		}
	}
}
