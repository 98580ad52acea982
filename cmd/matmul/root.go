// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-matrix/hwy/contrib/workerpool"
	"github.com/ajroetker/go-matrix/matrix"
)

// execOptions are the flags shared by every command that multiplies.
type execOptions struct {
	strategy string
	workers  int
}

func (o *execOptions) register(fs *pflag.FlagSet) {
	fs.StringVar(&o.strategy, "strategy", "parallel", "execution strategy: sequential, parallel or pool")
	fs.IntVar(&o.workers, "workers", 0, "number of workers for parallel and pool strategies (0 = GOMAXPROCS)")
}

// build returns the strategy and a cleanup function releasing its resources.
func (o *execOptions) build() (matrix.Strategy, func(), error) {
	switch o.strategy {
	case "sequential":
		return matrix.Sequential(), func() {}, nil
	case "parallel":
		return matrix.Parallel(o.workers), func() {}, nil
	case "pool":
		pool := workerpool.New(o.workers)
		return matrix.Pooled(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown strategy %q (want sequential, parallel or pool)", o.strategy)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// app holds state shared by the subcommands.
type app struct {
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	var verbose bool
	a := &app{logger: newLogger(os.Stderr, false)}

	root := &cobra.Command{
		Use:           "matmul",
		Short:         "Dense matrix multiplication with lane-chunked dot products",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = newLogger(cmd.ErrOrStderr(), verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newInfoCmd(),
		newMultiplyCmd(a),
		newRandomCmd(a),
	)
	return root
}
