// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-matrix/hwy"
	"github.com/ajroetker/go-matrix/matrix"
)

type multiplyOptions struct {
	execOptions
	left, right string
	elemType    string
}

func newMultiplyCmd(a *app) *cobra.Command {
	opts := &multiplyOptions{}
	cmd := &cobra.Command{
		Use:   "multiply",
		Short: "Multiply two matrices given on the command line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch opts.elemType {
			case "int32":
				return runMultiply(cmd.OutOrStdout(), a.logger, opts, parseInt32)
			case "int64":
				return runMultiply(cmd.OutOrStdout(), a.logger, opts, parseInt64)
			case "float32":
				return runMultiply(cmd.OutOrStdout(), a.logger, opts, parseFloat32)
			case "float64":
				return runMultiply(cmd.OutOrStdout(), a.logger, opts, parseFloat64)
			default:
				return fmt.Errorf("unknown element type %q (want int32, int64, float32 or float64)", opts.elemType)
			}
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&opts.left, "left", "", "left matrix, rows separated by ';' and elements by ','")
	fs.StringVar(&opts.right, "right", "", "right matrix, same format as --left")
	fs.StringVar(&opts.elemType, "type", "float64", "element type: int32, int64, float32 or float64")
	opts.register(fs)
	_ = cmd.MarkFlagRequired("left")
	_ = cmd.MarkFlagRequired("right")
	return cmd
}

func runMultiply[T hwy.Lanes](out io.Writer, logger *slog.Logger, opts *multiplyOptions, parse func(string) (T, error)) error {
	left, err := parseMatrix(opts.left, parse)
	if err != nil {
		return fmt.Errorf("--left: %w", err)
	}
	right, err := parseMatrix(opts.right, parse)
	if err != nil {
		return fmt.Errorf("--right: %w", err)
	}

	strategy, cleanup, err := opts.build()
	if err != nil {
		return err
	}
	defer cleanup()

	start := time.Now()
	product, err := matrix.Multiply(strategy, left, right)
	if err != nil {
		return err
	}
	rows, cols := product.Shape()
	logger.Debug("multiplied",
		"type", opts.elemType,
		"strategy", strategy.String(),
		"rows", rows,
		"cols", cols,
		"elapsed", time.Since(start))

	_, err = io.WriteString(out, product.String())
	return err
}
