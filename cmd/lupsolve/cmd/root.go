// SPDX-License-Identifier: MIT
// Package cmd wires the lupsolve command tree: small linear-algebra queries
// over whitespace-separated matrix files, answered from a single cached
// factorization per invocation.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lupsolve",
	Short: "Dense-matrix queries backed by a cached LUP factorization",
	Long: `lupsolve reads real matrices from plain text files (one row per line,
whitespace-separated values), factors them once with partial-pivot Gaussian
elimination and answers queries off the cached factors.

Commands:
  det       determinant of a square matrix
  trace     sum of the main diagonal
  solve     X with A·X = B for a right-hand side file
  inverse   A⁻¹ of a nonsingular matrix
  cholesky  lower-triangular L with A = L·Lᵀ`,
	SilenceUsage: true,
}

// Execute runs the root command; main translates a non-nil error into a
// nonzero exit status.
func Execute() error {
	return rootCmd.Execute()
}
