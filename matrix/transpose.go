// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package matrix

import (
	"github.com/ajroetker/go-matrix/hwy"
	"github.com/ajroetker/go-matrix/hwy/contrib/matmul"
)

// Transpose returns a new cols×rows matrix t with t(i, j) == m(j, i).
// m is not modified.
func Transpose[T hwy.Lanes](m *Matrix[T]) *Matrix[T] {
	t := newMatrix[T](m.cols, m.rows)
	matmul.Transpose2D(m.data, m.rows, m.cols, t.data)
	return t
}
