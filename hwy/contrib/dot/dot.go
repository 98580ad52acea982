// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package dot provides the lane-chunked dot-product kernel used by the matrix
// multiply.
//
// A Kernel captures the lane count for its element type once. Vectors of
// length four or more are processed in chunks of that many lanes: each chunk
// is multiplied lane-wise and reduced to a scalar (horizontal sum), the chunk
// sums are accumulated in order, and the remaining elements are added one by
// one. Vectors shorter than four elements take a scalar path over at most
// their first three elements.
//
// Floating-point results are reproducible for identical inputs and lane count,
// but can differ in the low bits from a strict left-to-right sum because each
// chunk is reduced before being added to the running total.
package dot

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/ajroetker/go-matrix/hwy"
)

// ErrLengthMismatch is returned when the two operands have different lengths.
var ErrLengthMismatch = errors.New("dot: length mismatch")

// shortLen is the length below which the scalar short path is taken.
const shortLen = 4

// shortTerms is the maximum number of products summed by the short path.
const shortTerms = 3

// Kernel computes dot products for one element type with a fixed lane count.
// The zero value is not usable; use NewKernel or KernelFor.
type Kernel[T hwy.Lanes] struct {
	lanes int
}

// NewKernel returns a kernel using the current lane count for T.
func NewKernel[T hwy.Lanes]() Kernel[T] {
	return Kernel[T]{lanes: hwy.MaxLanes[T]()}
}

// NewKernelLanes returns a kernel with an explicit lane count.
// It panics if lanes is not positive.
func NewKernelLanes[T hwy.Lanes](lanes int) Kernel[T] {
	if lanes <= 0 {
		panic(fmt.Sprintf("dot: invalid lane count %d", lanes))
	}
	return Kernel[T]{lanes: lanes}
}

// kernels caches one resolved Kernel per element type.
var kernels sync.Map // reflect.Type -> Kernel[T]

// KernelFor returns the kernel for T, resolving the lane count on first use
// and reusing it afterwards.
func KernelFor[T hwy.Lanes]() Kernel[T] {
	key := reflect.TypeFor[T]()
	if k, ok := kernels.Load(key); ok {
		return k.(Kernel[T])
	}
	k, _ := kernels.LoadOrStore(key, NewKernel[T]())
	return k.(Kernel[T])
}

// Lanes returns the number of elements processed per chunk.
func (k Kernel[T]) Lanes() int {
	return k.lanes
}

// Dot returns the sum of element-wise products of a and b.
//
// The operands must have equal lengths, otherwise ErrLengthMismatch is
// returned. Lengths 1 to 3 sum at most the first three products in index
// order. Longer vectors are summed chunk by chunk, then the tail.
func (k Kernel[T]) Dot(a, b []T) (T, error) {
	// Products are converted to T before accumulation so they are rounded
	// exactly like the lane products, never fused into the add.
	var sum T
	if len(a) != len(b) {
		return sum, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}

	n := len(a)
	if n < shortLen {
		for i := range min(n, shortTerms) {
			sum += T(a[i] * b[i])
		}
		return sum, nil
	}

	lanes := k.lanes
	hwy.ProcessWithTail(n, lanes,
		func(offset int) {
			va := hwy.LoadN(a[offset:], lanes)
			vb := hwy.LoadN(b[offset:], lanes)
			sum += hwy.ReduceSum(hwy.Mul(va, vb))
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				sum += T(a[i] * b[i])
			}
		},
	)
	return sum, nil
}

// Dot computes the dot product of a and b with the cached kernel for T.
//
// Example:
//
//	a := []float32{1, 2, 3}
//	b := []float32{4, 5, 6}
//	result, _ := dot.Dot(a, b) // 1*4 + 2*5 + 3*6 = 32
func Dot[T hwy.Lanes](a, b []T) (T, error) {
	return KernelFor[T]().Dot(a, b)
}
