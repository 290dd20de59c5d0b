// Copyright 2026 go-pimbench Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for fork-join
// parallel loops. A Pool is created once, sized to the number of workers a
// benchmark was configured with, and reused for every repetition, so the
// timed region measures the work and not goroutine spawning.
//
// Usage:
//
//	pool := workerpool.New(4)
//	defer pool.Close()
//
//	for range reps {
//	    pool.ForEach(4, func(worker int) {
//	        processRows(worker)
//	    })
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one task of a fork-join round.
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
		// Buffer enough for every worker to have a pending task
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

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

// ForEach runs fn(i) once for every i in [0, n) and blocks until all calls
// have returned. Each index is a separate task, so the assignment of work
// to indices is entirely up to the caller; the pool only decides which
// goroutine executes a task. Calls for different indices may run
// concurrently and complete in any order.
//
// On a closed pool the calls run sequentially on the caller's goroutine.
func (p *Pool) ForEach(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for i := range n {
		p.workC <- workItem{
			fn: func() {
				fn(i)
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}
