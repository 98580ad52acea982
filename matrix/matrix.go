// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package matrix

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/ajroetker/go-matrix/hwy"
)

// Matrix is a dense rows×cols matrix stored row-major in one flat slice.
// Row i occupies data[i*cols : (i+1)*cols].
type Matrix[T hwy.Lanes] struct {
	rows, cols int
	data       []T
}

// newMatrix allocates a zeroed matrix without validating the shape.
func newMatrix[T hwy.Lanes](rows, cols int) *Matrix[T] {
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// New creates a zero-filled rows×cols matrix.
// Both dimensions must be at least 1, otherwise ErrShape is returned.
func New[T hwy.Lanes](rows, cols int) (*Matrix[T], error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d, dimensions must be > 0", ErrShape, rows, cols)
	}
	return newMatrix[T](rows, cols), nil
}

// FromRows creates a matrix holding a copy of data, one inner slice per row.
//
// data must have at least one row, the first row must be non-empty, and every
// row must have the same length as the first; otherwise ErrShape is returned
// and nothing is allocated.
func FromRows[T hwy.Lanes](data [][]T) (*Matrix[T], error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrShape)
	}
	cols := len(data[0])
	if cols == 0 {
		return nil, fmt.Errorf("%w: row 0 is empty", ErrShape)
	}
	if _, i, found := lo.FindIndexOf(data, func(row []T) bool { return len(row) != cols }); found {
		return nil, fmt.Errorf("%w: row %d has %d elements, want %d", ErrShape, i, len(data[i]), cols)
	}

	m := newMatrix[T](len(data), cols)
	for i, row := range data {
		copy(m.data[i*cols:], row)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Matrix[T]) Shape() (rows, cols int) {
	return m.rows, m.cols
}

func (m *Matrix[T]) checkRow(row int) error {
	if row < 0 || row >= m.rows {
		return fmt.Errorf("%w: row %d not in [0,%d)", ErrIndex, row, m.rows)
	}
	return nil
}

func (m *Matrix[T]) checkCol(col int) error {
	if col < 0 || col >= m.cols {
		return fmt.Errorf("%w: column %d not in [0,%d)", ErrIndex, col, m.cols)
	}
	return nil
}

// At returns the element at (row, col).
func (m *Matrix[T]) At(row, col int) (T, error) {
	if err := m.checkRow(row); err != nil {
		var zero T
		return zero, err
	}
	if err := m.checkCol(col); err != nil {
		var zero T
		return zero, err
	}
	return m.data[row*m.cols+col], nil
}

// Set stores v at (row, col). Nothing else in the matrix changes.
func (m *Matrix[T]) Set(row, col int, v T) error {
	if err := m.checkRow(row); err != nil {
		return err
	}
	if err := m.checkCol(col); err != nil {
		return err
	}
	m.data[row*m.cols+col] = v
	return nil
}

// Row returns row i as a view into the matrix storage.
//
// Writes through the returned slice change the matrix. Its capacity is
// limited to the row, so appending to it reallocates instead of overwriting
// row i+1. Use slices.Clone for an independent copy.
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if err := m.checkRow(i); err != nil {
		return nil, err
	}
	start, end := i*m.cols, (i+1)*m.cols
	return m.data[start:end:end], nil
}

// Column returns a fresh copy of column j, gathered top to bottom.
func (m *Matrix[T]) Column(j int) ([]T, error) {
	if err := m.checkCol(j); err != nil {
		return nil, err
	}
	col := make([]T, m.rows)
	for i := range m.rows {
		col[i] = m.data[i*m.cols+j]
	}
	return col, nil
}

// ToRows returns a deep copy of the matrix as one slice per row.
func (m *Matrix[T]) ToRows() [][]T {
	return lo.Times(m.rows, func(i int) []T {
		return slices.Clone(m.data[i*m.cols : (i+1)*m.cols])
	})
}

// Clone returns an independent copy of m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{rows: m.rows, cols: m.cols, data: slices.Clone(m.data)}
}

// Equal reports whether m and o have the same shape and elements.
// Floating-point NaN elements are never equal.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.rows == o.rows && m.cols == o.cols && slices.Equal(m.data, o.data)
}

// String renders the matrix for debugging: every element followed by a tab,
// every row followed by a newline.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for i := range m.rows {
		for _, v := range m.data[i*m.cols : (i+1)*m.cols] {
			fmt.Fprint(&sb, v)
			sb.WriteByte('\t')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
