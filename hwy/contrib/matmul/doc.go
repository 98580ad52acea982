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

// Package matmul provides flat-slice kernels for row-major matrices: a tiled
// transpose and a K-last multiply that fills C = A * B^T one output row at a
// time with a lane-chunked dot kernel.
//
// Example usage:
//
//	// C = A * B where A is MxK, B is KxN, C is MxN
//	bt := make([]float32, N*K)
//	matmul.Transpose2D(b, K, N, bt) // B^T is NxK
//
//	kernel := dot.KernelFor[float32]()
//	err := matmul.MatMulKLast(kernel, a, bt, c, M, N, K)
//
// Rows are independent, so callers may spread MatMulKLastRow calls across
// goroutines as long as each row is written by exactly one of them.
package matmul
