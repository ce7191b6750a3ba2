// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/eheitfield/SimpleMatrixKit/matrix"
)

// ExampleMul multiplies two small dense matrices.
func ExampleMul() {
	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]float64{{0, 1}, {1, 0}})

	p, _ := matrix.Mul(a, b)
	fmt.Print(p)
	// Output:
	// [2, 1]
	// [4, 3]
}

// ExampleHConcat joins two matrices side by side.
func ExampleHConcat() {
	a, _ := matrix.FromRows([][]float64{{1}, {2}})
	b, _ := matrix.FromRows([][]float64{{3}, {4}})

	c, _ := matrix.HConcat(a, b)
	fmt.Print(c)
	// Output:
	// [1, 3]
	// [2, 4]
}
