// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package matrix provides a dense two-dimensional numeric matrix over any
// lane element type (signed and unsigned integers, float32, float64) and the
// row-parallel multiply built on the dot kernel.
//
// Matrices are created through validated constructors (New, FromRows) and
// keep their shape for life; element values can be changed with Set. Derived
// matrices (Transpose, Multiply) are freshly allocated and never share
// storage with their operands.
//
// Multiply transposes the right operand so that every output cell is the dot
// product of two contiguous rows, then fills the output row by row using an
// explicit Strategy:
//
//	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.FromRows([][]float64{{5, 6}, {7, 8}})
//
//	c, err := matrix.Multiply(matrix.Parallel(0), a, b)
//	// c = [[19 22] [43 50]]
//
// All strategies produce bit-identical results: each cell's accumulation
// order is fixed by the dot kernel and cells are independent.
package matrix
