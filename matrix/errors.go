// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package matrix

import (
	"errors"

	"github.com/ajroetker/go-matrix/hwy/contrib/dot"
	"github.com/ajroetker/go-matrix/hwy/contrib/workerpool"
)

// Every error returned by this package wraps one of these sentinels; match
// them with errors.Is.
var (
	// ErrShape is returned when a requested shape is invalid: a non-positive
	// dimension, no rows, or rows of different lengths.
	ErrShape = errors.New("matrix: invalid shape")

	// ErrShapeMismatch is returned by Multiply when left.Cols() != right.Rows().
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrIndex is returned when a row or column index is outside the matrix.
	ErrIndex = errors.New("matrix: index out of range")

	// ErrNilMatrix is returned when a nil matrix is passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// ErrLengthMismatch is the dot kernel's operand-length error. Multiply never
// hands the kernel rows of different lengths, but a Strategy still reports it
// if it happens.
var ErrLengthMismatch = dot.ErrLengthMismatch

// ErrTaskPanic wraps a panic recovered from a parallel row task.
var ErrTaskPanic = workerpool.ErrTaskPanic
