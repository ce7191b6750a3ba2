// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/eheitfield/SimpleMatrixKit/lup"
	"github.com/eheitfield/SimpleMatrixKit/matrix"
)

// factorArg reads the matrix file named by args[0] and factors it.
func factorArg(args []string) (*lup.Factored, error) {
	m, err := readMatrixFile(args[0])
	if err != nil {
		return nil, err
	}

	return lup.New(m)
}

// printMatrix writes a result in the same row-per-line shape the input
// files use.
func printMatrix(cmd *cobra.Command, m matrix.Matrix) {
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if j > 0 {
				fmt.Fprint(cmd.OutOrStdout(), " ")
			}
			v, _ = m.At(i, j)
			fmt.Fprintf(cmd.OutOrStdout(), "%g", v)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}
}

var detCmd = &cobra.Command{
	Use:   "det <matrix-file>",
	Short: "Determinant of a square matrix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := factorArg(args)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%g\n", f.Determinant())

		return nil
	},
}

var traceCmd = &cobra.Command{
	Use:   "trace <matrix-file>",
	Short: "Sum of the main diagonal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := factorArg(args)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%g\n", f.Trace())

		return nil
	},
}

var solveCmd = &cobra.Command{
	Use:   "solve <matrix-file> <rhs-file>",
	Short: "Solve A·X = B for a right-hand side file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := factorArg(args)
		if err != nil {
			return err
		}
		b, err := readMatrixFile(args[1])
		if err != nil {
			return err
		}
		x, err := f.Solve(b)
		if err != nil {
			return err
		}
		printMatrix(cmd, x)

		return nil
	},
}

var inverseCmd = &cobra.Command{
	Use:   "inverse <matrix-file>",
	Short: "Inverse of a nonsingular matrix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := factorArg(args)
		if err != nil {
			return err
		}
		inv, err := f.Inverse()
		if err != nil {
			return err
		}
		printMatrix(cmd, inv)

		return nil
	},
}

var choleskyCmd = &cobra.Command{
	Use:   "cholesky <matrix-file>",
	Short: "Lower-triangular L with A = L·Lᵀ",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eps, err := cmd.Flags().GetFloat64("epsilon")
		if err != nil {
			return err
		}
		if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
			return fmt.Errorf("invalid --epsilon %v: must be finite and non-negative", eps)
		}
		m, err := readMatrixFile(args[0])
		if err != nil {
			return err
		}
		f, err := lup.New(m, lup.WithEpsilon(eps))
		if err != nil {
			return err
		}
		l, err := f.Cholesky()
		if err != nil {
			return err
		}
		printMatrix(cmd, l)

		return nil
	},
}

func init() {
	choleskyCmd.Flags().Float64("epsilon", lup.DefaultEpsilon, "symmetry tolerance")
	rootCmd.AddCommand(detCmd, traceCmd, solveCmd, inverseCmd, choleskyCmd)
}
