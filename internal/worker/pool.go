// Package worker provides a bounded worker pool for fanning independent
// jobs out over goroutines, such as the root moves of a perft run.
package worker

import (
	"sync"
	"sync/atomic"
)

// WorkItem is a job payload tagged with its submission index.
type WorkItem[T any] struct {
	Payload T
	Index   int // Original index for tracking
}

// Result is the outcome of processing one WorkItem.
type Result[R any] struct {
	Value R
	Index int
	Err   error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc[T, R any] func(item WorkItem[T]) Result[R]

// Pool manages a pool of workers for parallel processing.
type Pool[T, R any] struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem[T]
	resultChan  chan Result[R]
	processFunc ProcessFunc[T, R]
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// poolSettings holds the tunables applied by PoolOption.
type poolSettings struct {
	numWorkers int
	bufferSize int
}

// PoolOption configures a Pool.
type PoolOption func(*poolSettings)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(s *poolSettings) {
		if n >= 1 {
			s.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(s *poolSettings) {
		if size >= 1 {
			s.bufferSize = size
		}
	}
}

// NewPoolWithOptions creates a new worker pool using functional options.
// processFunc is required; other settings have sensible defaults.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions[T, R any](processFunc ProcessFunc[T, R], opts ...PoolOption) *Pool[T, R] {
	s := poolSettings{numWorkers: 1, bufferSize: 10}
	for _, opt := range opts {
		opt(&s)
	}
	return &Pool[T, R]{
		numWorkers:  s.numWorkers,
		bufferSize:  s.bufferSize,
		workChan:    make(chan WorkItem[T], s.bufferSize),
		resultChan:  make(chan Result[R], s.bufferSize),
		processFunc: processFunc,
	}
}

// Start starts the worker goroutines.
func (p *Pool[T, R]) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool[T, R]) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool[T, R]) Submit(item WorkItem[T]) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool[T, R]) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool[T, R]) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool[T, R]) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool[T, R]) Results() <-chan Result[R] {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool[T, R]) NumWorkers() int {
	return p.numWorkers
}
