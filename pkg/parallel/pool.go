package parallel

import (
	"runtime"
	"sync"
)

type (
	WorkerFunc func(func())
	WaitFunc   func(done bool)
	CancelFunc func()
)

// Pool runs submitted tasks on a fixed number of goroutines. A pool of one
// worker runs each task inline in Do, so a single-worker render is fully
// sequential.
type Pool struct {
	wg      sync.WaitGroup
	workers int

	// Do submits a task. It blocks while all workers are busy and the queue is full.
	Do WorkerFunc
	// Wait blocks until the workers exit. With done set it first calls Cancel;
	// otherwise another goroutine must.
	Wait WaitFunc
	// Cancel stops accepting tasks. It is safe to call more than once.
	Cancel CancelFunc
}

// Start launches a pool. numWorkers < 1 means GOMAXPROCS workers.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		workers: numWorkers,
		Do: func(f func()) {
			f()
		},
		Wait:   func(bool) {},
		Cancel: func() {},
	}

	if numWorkers > 1 {
		workChan := make(chan func(), numWorkers)

		for range numWorkers {
			pool.wg.Go(func() {
				for f := range workChan {
					f()
				}
			})
		}

		pool.Do = func(f func()) {
			workChan <- f
		}

		pool.Cancel = sync.OnceFunc(func() { close(workChan) })
		pool.Wait = func(done bool) {
			if done {
				pool.Cancel()
			}
			pool.wg.Wait()
		}
	}

	return pool
}

// Workers is the number of goroutines serving the pool.
func (p *Pool) Workers() int {
	return p.workers
}
