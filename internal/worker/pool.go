// Package worker provides a worker pool for parallel position analysis.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessgeo-go/internal/processing"
)

// WorkItem represents a position to be analysed.
type WorkItem struct {
	FEN   string
	Index int // Position in the batch, used to restore input order
	Line  int // Source line, 0 when not read from a file
}

// ProcessResult represents the result of analysing a position.
type ProcessResult struct {
	Index     int
	Line      int
	FEN       string
	Analysis  *processing.PositionAnalysis // nil when Error is set or Duplicate is true
	Duplicate bool                         // Position already seen in this batch
	Error     error
}

// ProcessFunc analyses one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted positions on a fixed set of
// goroutines. Results arrive in completion order, not submission order.
type Pool struct {
	workers   int
	work      chan WorkItem
	results   chan ProcessResult
	process   ProcessFunc
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	processed atomic.Int64
}

// NewPool creates a pool with the given number of workers and channel
// buffer size. Values below one are raised to one.
func NewPool(workers, bufferSize int, process ProcessFunc) *Pool {
	return NewPoolContext(context.Background(), workers, bufferSize, process)
}

// NewPoolContext is NewPool with a parent context; cancelling it stops
// the pool like Stop does.
func NewPoolContext(ctx context.Context, workers, bufferSize int, process ProcessFunc) *Pool {
	workers = max(workers, 1)
	bufferSize = max(bufferSize, 1)
	ctx, cancel := context.WithCancel(ctx)
	return &Pool{
		workers: workers,
		work:    make(chan WorkItem, bufferSize),
		results: make(chan ProcessResult, bufferSize),
		process: process,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the workers. The result channel is closed once every
// worker has returned.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.run()
	}
	go func() {
		p.wg.Wait()
		p.cancel()
		close(p.results)
	}()
}

func (p *Pool) run() {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case item, ok := <-p.work:
			if !ok || p.ctx.Err() != nil {
				return
			}
			r := p.process(item)
			p.processed.Add(1)
			select {
			case p.results <- r:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues an item, blocking while the queue is full. It returns
// false if the pool was stopped before the item could be queued.
// Submit must not be called after Close.
func (p *Pool) Submit(item WorkItem) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case <-p.ctx.Done():
		return false
	case p.work <- item:
		return true
	}
}

// Close signals that no more items will be submitted. Queued items are
// still processed.
func (p *Pool) Close() {
	close(p.work)
}

// Stop abandons queued items. Workers finish the position in hand and
// return; the result channel is then closed.
func (p *Pool) Stop() {
	p.cancel()
}

// Stopped reports whether Stop was called or the parent context ended.
func (p *Pool) Stopped() bool {
	return p.ctx.Err() != nil
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// Processed returns how many items have been analysed so far.
func (p *Pool) Processed() int64 {
	return p.processed.Load()
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Run analyses items on a pool and returns the results in input order.
// Item indexes must run from 0 to len(items)-1.
func Run(items []WorkItem, workers, bufferSize int, process ProcessFunc) []ProcessResult {
	results := make([]ProcessResult, len(items))
	if workers <= 1 || len(items) <= 1 {
		for i, item := range items {
			results[i] = process(item)
		}
		return results
	}

	pool := NewPool(workers, bufferSize, process)
	pool.Start()
	go func() {
		defer pool.Close()
		for _, item := range items {
			if !pool.Submit(item) {
				return
			}
		}
	}()

	for r := range pool.Results() {
		results[r.Index] = r
	}
	return results
}
