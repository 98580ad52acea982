// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/ajroetker/go-matrix/hwy"
	"github.com/ajroetker/go-matrix/matrix"
)

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	return int32(v), err
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseFloat32(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	return float32(v), err
}

func parseFloat64(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// parseMatrix parses "1,2;3,4" into a 2x2 matrix. Whitespace around
// elements and a trailing ';' are ignored.
func parseMatrix[T hwy.Lanes](s string, parse func(string) (T, error)) (*matrix.Matrix[T], error) {
	rows := lo.Filter(strings.Split(s, ";"), func(r string, _ int) bool {
		return strings.TrimSpace(r) != ""
	})

	data := make([][]T, len(rows))
	for i, r := range rows {
		fields := lo.Map(strings.Split(r, ","), func(f string, _ int) string {
			return strings.TrimSpace(f)
		})
		data[i] = make([]T, len(fields))
		for j, f := range fields {
			v, err := parse(f)
			if err != nil {
				return nil, fmt.Errorf("element (%d,%d) %q: %w", i, j, f, err)
			}
			data[i][j] = v
		}
	}
	return matrix.FromRows(data)
}
