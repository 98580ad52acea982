// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for parallel
// computation. Unlike per-call goroutine spawning, a Pool is created once and
// reused across many operations, eliminating allocation and spawn overhead.
//
// Tasks return errors. A panic inside a task is recovered on the worker and
// reported as an error wrapping ErrTaskPanic, so a failing task never takes
// down the process or goes unnoticed by the caller.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	// Reuse pool across many operations
//	for _, job := range jobs {
//	    err := pool.ParallelForAtomic(rows, func(row int) error {
//	        return processRow(job, row)
//	    })
//	}
package workerpool

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrTaskPanic wraps the value recovered from a panicking task.
var ErrTaskPanic = errors.New("workerpool: task panicked")

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single parallel operation to execute.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	// Spawn persistent workers
	for range numWorkers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// RunTask calls fn(i), converting a panic into an error wrapping ErrTaskPanic.
// It is exported for executors outside the pool that need the same contract.
func RunTask(fn func(i int) error, i int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: index %d: %v", ErrTaskPanic, i, r)
		}
	}()
	return fn(i)
}

// firstError records the first error reported by any task.
type firstError struct {
	once sync.Once
	err  error
	set  atomic.Bool
}

func (f *firstError) record(err error) {
	f.once.Do(func() {
		f.err = err
		f.set.Store(true)
	})
}

func (f *firstError) failed() bool {
	return f.set.Load()
}

// ParallelForAtomic executes fn for each index in [0, n) using atomic work
// stealing, one index per grab. This provides good load balancing when work
// per item varies. Blocks until all started work completes.
//
// The first error returned (or panic raised) by fn is returned. Once a task
// has failed no further indices are handed out; tasks already running finish.
func (p *Pool) ParallelForAtomic(n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}

	workers := min(p.numWorkers, n)

	if p.closed.Load() || workers == 1 {
		// Sequential fallback for a closed pool or a single worker
		for i := range n {
			if err := RunTask(fn, i); err != nil {
				return err
			}
		}
		return nil
	}

	var nextIdx atomic.Int64
	var first firstError
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		p.workC <- workItem{
			fn: func() {
				for !first.failed() {
					idx := int(nextIdx.Add(1)) - 1
					if idx >= n {
						return
					}
					if err := RunTask(fn, idx); err != nil {
						first.record(err)
						return
					}
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
	return first.err
}
