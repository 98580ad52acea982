// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-matrix/hwy"
	"github.com/ajroetker/go-matrix/hwy/contrib/dot"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the dispatch level and lane counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "SIMD Level: %s, Width: %d bytes\n", hwy.CurrentName(), hwy.CurrentWidth())
			fmt.Fprintf(out, "GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))
			fmt.Fprintf(out, "Lanes: int32=%d int64=%d float32=%d float64=%d\n",
				dot.KernelFor[int32]().Lanes(),
				dot.KernelFor[int64]().Lanes(),
				dot.KernelFor[float32]().Lanes(),
				dot.KernelFor[float64]().Lanes(),
			)
			return nil
		},
	}
}
