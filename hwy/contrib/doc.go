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

// Package contrib groups the kernels built on the hwy lane operations.
//
// # Subpackages
//
//   - dot: lane-chunked dot product with a scalar tail, one Kernel per element type
//   - matmul: tiled transpose and the K-last multiply (C = A * B^T, one row at a time)
//   - workerpool: persistent worker pool whose tasks report errors and recovered panics
//
// The matrix package at the module root combines them into the Matrix type:
//
//	import "github.com/ajroetker/go-matrix/hwy/contrib/dot"
//
//	kernel := dot.KernelFor[float64]() // lane count resolved once
//	sum, err := kernel.Dot(a, b)
package contrib
