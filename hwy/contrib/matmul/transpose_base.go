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

import "github.com/ajroetker/go-matrix/hwy"

// transposeTile is the edge length of the square tiles copied by Transpose2D.
// A tile of source rows and destination rows stays cache resident while it
// is copied.
const transposeTile = 32

// Transpose2D transposes an M×K row-major matrix to K×M.
//
// Source element (i, j) at src[i*k+j] lands at dst[j*m+i]. src and dst must
// not overlap. It panics if either slice is too short.
func Transpose2D[T hwy.Lanes](src []T, m, k int, dst []T) {
	if len(src) < m*k {
		panic("matmul: transpose source slice too short")
	}
	if len(dst) < k*m {
		panic("matmul: transpose destination slice too short")
	}

	for ii := 0; ii < m; ii += transposeTile {
		iEnd := min(ii+transposeTile, m)
		for jj := 0; jj < k; jj += transposeTile {
			jEnd := min(jj+transposeTile, k)
			transposeTileScalar(src, dst, ii, iEnd, jj, jEnd, m, k)
		}
	}
}

// transposeTileScalar copies rows [iStart, iEnd) × columns [jStart, jEnd).
func transposeTileScalar[T hwy.Lanes](src, dst []T, iStart, iEnd, jStart, jEnd, m, k int) {
	for i := iStart; i < iEnd; i++ {
		row := src[i*k : i*k+k]
		for j := jStart; j < jEnd; j++ {
			dst[j*m+i] = row[j]
		}
	}
}
