// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package matrix

import (
	"fmt"

	"github.com/ajroetker/go-matrix/hwy"
	"github.com/ajroetker/go-matrix/hwy/contrib/dot"
	"github.com/ajroetker/go-matrix/hwy/contrib/matmul"
)

// Multiply returns left * right, an m×n matrix for an m×k left and a k×n
// right operand. It returns ErrShapeMismatch if the inner dimensions differ.
//
// right is transposed once so each output cell is the dot product of a left
// row and a transposed-right row; rows of the result are then filled by s
// (nil means Sequential). Neither operand is modified and the result shares
// no storage with them. If any row fails, no matrix is returned.
func Multiply[T hwy.Lanes](s Strategy, left, right *Matrix[T]) (*Matrix[T], error) {
	if left == nil || right == nil {
		return nil, fmt.Errorf("matrix: multiply: %w", ErrNilMatrix)
	}
	if left.cols != right.rows {
		return nil, fmt.Errorf("%w: %dx%d * %dx%d", ErrShapeMismatch, left.rows, left.cols, right.rows, right.cols)
	}
	if s == nil {
		s = Sequential()
	}

	k := left.cols
	rightT := Transpose(right) // n×k
	result := newMatrix[T](left.rows, right.cols)
	kernel := dot.KernelFor[T]()

	err := s.ForEachRow(result.rows, func(row int) error {
		return matmul.MatMulKLastRow(kernel, left.data, rightT.data, result.data, row, result.cols, k)
	})
	if err != nil {
		return nil, fmt.Errorf("matrix: multiply with %s: %w", s, err)
	}
	return result, nil
}
