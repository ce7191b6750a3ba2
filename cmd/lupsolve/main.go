// SPDX-License-Identifier: MIT
package main

import (
	"os"

	"github.com/eheitfield/SimpleMatrixKit/cmd/lupsolve/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
