// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for splitting image
// rows across goroutines. A Pool is created once and reused for every frame,
// so colourising a video does not pay goroutine spawn cost per frame.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, frame := range frames {
//	    pool.ParallelRows(frame.Height(), 8, func(y0, y1 int) {
//	        processRows(frame, y0, y1)
//	    })
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent set of workers. Workers are spawned by New and exit
// when Close is called.
type Pool struct {
	numWorkers int
	jobs       chan job
	closeOnce  sync.Once

	// mu guards closed and is held for reading while jobs are sent, so
	// Close never closes the channel under a pending send.
	mu     sync.RWMutex
	closed bool
}

type job struct {
	run  func()
	done *sync.WaitGroup
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		jobs:       make(chan job, numWorkers),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for j := range p.jobs {
		j.run()
		j.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once pending work has drained. It is safe to call
// Close more than once; a closed pool runs work on the calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.jobs)
		p.mu.Unlock()
	})
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn(start, end) for each. Blocks until all ranges are done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	p.ParallelRows(n, (n+workers-1)/workers, fn)
}

// ParallelRows calls fn(y0, y1) over [0, height) in chunks of minRows rows
// (the last chunk may be shorter). Workers pull chunks from a shared
// counter, so rows with uneven cost still balance. Blocks until every row
// has been processed.
func (p *Pool) ParallelRows(height, minRows int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	if minRows <= 0 {
		minRows = 1
	}

	chunks := (height + minRows - 1) / minRows
	workers := min(p.numWorkers, chunks)
	if workers <= 1 {
		fn(0, height)
		return
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		fn(0, height)
		return
	}
	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.jobs <- job{
			run: func() {
				for {
					chunk := int(next.Add(1)) - 1
					y0 := chunk * minRows
					if y0 >= height {
						return
					}
					fn(y0, min(y0+minRows, height))
				}
			},
			done: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}
