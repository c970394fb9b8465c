// Package workers runs batches of functions on a fixed set of goroutines.
package workers

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of goroutines fed from one queue.
//
// Pool is safe for concurrent use.
type Pool struct {
	size    int
	queue   chan func()
	wg      sync.WaitGroup
	running atomic.Bool
}

// New starts a pool of n goroutines. If n is 0 or negative, GOMAXPROCS
// is used.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		size:  n,
		queue: make(chan func(), max(n*4, 8)),
	}
	p.running.Store(true)

	p.wg.Add(n)
	for range n {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for fn := range p.queue {
		fn()
	}
}

// Run executes every function of batch on the pool and waits for all of
// them. Run on a closed pool does nothing.
func (p *Pool) Run(batch []func()) {
	if len(batch) == 0 || !p.running.Load() {
		return
	}

	var done sync.WaitGroup
	done.Add(len(batch))
	for _, fn := range batch {
		p.queue <- func() {
			defer done.Done()
			fn()
		}
	}
	done.Wait()
}

// Size returns the number of goroutines.
func (p *Pool) Size() int {
	return p.size
}

// Close waits for queued work and stops the goroutines. Close must not be
// called concurrently with Run; calling it twice is safe.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.queue)
	p.wg.Wait()
}
