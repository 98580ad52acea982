// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Command matmul multiplies matrices with the go-matrix kernels.
//
// Usage:
//
//	matmul info
//	matmul multiply --left "1,2;3,4" --right "5,6;7,8" --type int32
//	matmul random --m 512 --k 256 --n 512 --strategy pool --workers 8 --verify
//
// Rows are separated by ';' and elements by ','. The strategy is one of
// sequential, parallel or pool; --workers 0 uses GOMAXPROCS.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
