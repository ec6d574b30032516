// Package parallel runs independent glyph jobs on a bounded set of
// goroutines.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs indexed jobs on a fixed number of goroutines.
//
// Workers pull the next job index from a shared counter, so slow jobs do
// not hold back the rest of the batch. The pool keeps no goroutines
// between calls to Run.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
}

// NewWorkerPool creates a pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &WorkerPool{workers: workers}
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// Run calls job for every index in [0, n) and waits for all started jobs
// to return.
//
// The first error stops the dispensing of further indexes and is
// returned. Cancelling ctx does the same and Run returns ctx.Err(). Jobs
// already running are not interrupted.
func (p *WorkerPool) Run(ctx context.Context, n int, job func(i int) error) error {
	if n <= 0 {
		return ctx.Err()
	}

	var (
		next     atomic.Int64
		stopped  atomic.Bool
		errOnce  sync.Once
		firstErr error
		wg       sync.WaitGroup
	)
	fail := func(err error) {
		errOnce.Do(func() { firstErr = err })
		stopped.Store(true)
	}

	workers := min(p.workers, n)
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for !stopped.Load() {
				if err := ctx.Err(); err != nil {
					fail(err)
					return
				}
				i := int(next.Add(1) - 1)
				if i >= n {
					return
				}
				if err := job(i); err != nil {
					fail(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	return firstErr
}
