// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package matrix

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestTranspose(t *testing.T) {
	m, err := FromRows([][]int32{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	got := Transpose(m)
	want := [][]int32{{1, 4}, {2, 5}, {3, 6}}
	if diff := cmp.Diff(want, got.ToRows()); diff != "" {
		t.Errorf("Transpose mismatch (-want +got):\n%s", diff)
	}

	// Input untouched.
	require.Equal(t, [][]int32{{1, 2, 3}, {4, 5, 6}}, m.ToRows())
}

func TestTransposeProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for range 25 {
		rows, cols := rng.Intn(40)+1, rng.Intn(40)+1
		m, err := New[float64](rows, cols)
		require.NoError(t, err)
		for i := range rows {
			for j := range cols {
				require.NoError(t, m.Set(i, j, rng.NormFloat64()))
			}
		}

		tr := Transpose(m)
		tRows, tCols := tr.Shape()
		require.Equal(t, cols, tRows)
		require.Equal(t, rows, tCols)

		for i := range tRows {
			for j := range tCols {
				a, _ := tr.At(i, j)
				b, _ := m.At(j, i)
				require.Equal(t, b, a)
			}
		}

		require.True(t, Transpose(tr).Equal(m), "transpose(transpose(m)) != m for %dx%d", rows, cols)
	}
}

func TestTransposeDoesNotAlias(t *testing.T) {
	m, err := FromRows([][]int32{{1, 2}, {3, 4}})
	require.NoError(t, err)

	tr := Transpose(m)
	require.NoError(t, tr.Set(0, 1, 100))

	v, _ := m.At(1, 0)
	require.Equal(t, int32(3), v)
}
