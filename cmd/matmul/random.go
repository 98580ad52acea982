// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-matrix/hwy"
	"github.com/ajroetker/go-matrix/matrix"
)

type randomOptions struct {
	execOptions
	m, k, n int
	seed    int64
	verify  bool
}

func newRandomCmd(a *app) *cobra.Command {
	opts := &randomOptions{}
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Multiply random float64 matrices and report timing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRandom(cmd, a.logger, opts)
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&opts.m, "m", 256, "rows of the left matrix")
	fs.IntVar(&opts.k, "k", 256, "columns of the left matrix and rows of the right matrix")
	fs.IntVar(&opts.n, "n", 256, "columns of the right matrix")
	fs.Int64Var(&opts.seed, "seed", 1, "random seed")
	fs.BoolVar(&opts.verify, "verify", false, "also run sequentially and check the results are identical")
	opts.register(fs)
	return cmd
}

func randomMatrix(rng *rand.Rand, rows, cols int) (*matrix.Matrix[float64], error) {
	m, err := matrix.New[float64](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		row, _ := m.Row(i)
		for j := range row {
			row[j] = rng.NormFloat64()
		}
	}
	return m, nil
}

// checksum sums every element row by row.
func checksum(m *matrix.Matrix[float64]) float64 {
	var sum float64
	for i := range m.Rows() {
		row, _ := m.Row(i)
		for _, v := range row {
			sum += v
		}
	}
	return sum
}

func runRandom(cmd *cobra.Command, logger *slog.Logger, opts *randomOptions) error {
	rng := rand.New(rand.NewSource(opts.seed))
	left, err := randomMatrix(rng, opts.m, opts.k)
	if err != nil {
		return fmt.Errorf("left: %w", err)
	}
	right, err := randomMatrix(rng, opts.k, opts.n)
	if err != nil {
		return fmt.Errorf("right: %w", err)
	}

	strategy, cleanup, err := opts.build()
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Info("multiplying",
		"simd", hwy.CurrentName(),
		"strategy", strategy.String(),
		"m", opts.m, "k", opts.k, "n", opts.n)

	start := time.Now()
	product, err := matrix.Multiply(strategy, left, right)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	logger.Info("done", "elapsed", elapsed)

	if opts.verify {
		want, err := matrix.Multiply(matrix.Sequential(), left, right)
		if err != nil {
			return err
		}
		if !want.Equal(product) {
			return errors.New("result differs from the sequential multiply")
		}
		logger.Debug("verified against sequential multiply")
	}

	rows, cols := product.Shape()
	fmt.Fprintf(cmd.OutOrStdout(), "shape: %dx%d checksum: %.6g elapsed: %s\n", rows, cols, checksum(product), elapsed)
	return nil
}
