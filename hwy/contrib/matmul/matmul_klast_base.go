// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package matmul

import (
	"fmt"

	"github.com/ajroetker/go-matrix/hwy"
	"github.com/ajroetker/go-matrix/hwy/contrib/dot"
)

// MatMulKLastRow computes one output row of C = A * B^T where:
//   - A is M x K (row-major, K last)
//   - B is N x K (row-major, K last), i.e. the original right operand transposed
//   - C is M x N (row-major)
//
// Each output element: C[row,j] = dot(A[row,:], B[j,:]).
//
// Only C[row*n : row*n+n] is written, so distinct rows can be computed
// concurrently without synchronization. A and B are only read.
//
// Memory access pattern:
//   - A row: A[row*K : row*K+K] - sequential (cache friendly)
//   - B row j: B[j*K : j*K+K] - sequential (cache friendly)
func MatMulKLastRow[T hwy.Lanes](kernel dot.Kernel[T], a, b, c []T, row, n, k int) error {
	if len(a) < (row+1)*k {
		panic("matmul: A slice too short")
	}
	if len(b) < n*k {
		panic("matmul: B slice too short")
	}
	if len(c) < (row+1)*n {
		panic("matmul: C slice too short")
	}

	aRow := a[row*k : row*k+k]
	cRow := c[row*n : row*n+n]

	for j := range n {
		sum, err := kernel.Dot(aRow, b[j*k:j*k+k])
		if err != nil {
			return fmt.Errorf("matmul: C[%d,%d]: %w", row, j, err)
		}
		cRow[j] = sum
	}
	return nil
}

// MatMulKLast computes every row of C = A * B^T sequentially.
// See MatMulKLastRow for the layouts.
func MatMulKLast[T hwy.Lanes](kernel dot.Kernel[T], a, b, c []T, m, n, k int) error {
	for row := range m {
		if err := MatMulKLastRow(kernel, a, b, c, row, n, k); err != nil {
			return err
		}
	}
	return nil
}
