// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package matrix

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-matrix/hwy/contrib/workerpool"
)

// Strategy decides how the output rows of Multiply are executed.
//
// ForEachRow must call fn exactly once for every row in [0, n) unless a call
// fails, and return the first error. Each call writes only to its own row, so
// calls may run concurrently without locking.
type Strategy interface {
	ForEachRow(n int, fn func(row int) error) error
	String() string
}

// Sequential runs every row on the calling goroutine, in order.
// A panicking row propagates to the caller unchanged.
func Sequential() Strategy {
	return sequential{}
}

type sequential struct{}

func (sequential) ForEachRow(n int, fn func(row int) error) error {
	for row := range n {
		if err := fn(row); err != nil {
			return err
		}
	}
	return nil
}

func (sequential) String() string { return "sequential" }

// Parallel runs one goroutine per row with at most workers running at once.
// workers <= 0 means runtime.GOMAXPROCS(0).
//
// After the first failure no new rows are started. A panicking row is
// reported as an error wrapping ErrTaskPanic.
func Parallel(workers int) Strategy {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return parallel{workers: workers}
}

type parallel struct {
	workers int
}

func (p parallel) ForEachRow(n int, fn func(row int) error) error {
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(p.workers)

	for row := range n {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return workerpool.RunTask(fn, row)
		})
	}
	return g.Wait()
}

func (p parallel) String() string { return fmt.Sprintf("parallel(%d)", p.workers) }

// Pooled hands rows to a persistent worker pool, one row per grab.
// The pool is not closed by Multiply. A nil pool runs sequentially.
//
// A panicking row is reported as an error wrapping ErrTaskPanic.
func Pooled(pool *workerpool.Pool) Strategy {
	if pool == nil {
		return Sequential()
	}
	return pooled{pool: pool}
}

type pooled struct {
	pool *workerpool.Pool
}

func (p pooled) ForEachRow(n int, fn func(row int) error) error {
	return p.pool.ParallelForAtomic(n, fn)
}

func (p pooled) String() string { return fmt.Sprintf("pool(%d)", p.pool.NumWorkers()) }
