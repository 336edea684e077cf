// Package worker plays move scripts on a pool of goroutines, one game per
// script.
package worker

import (
	"sort"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lgbarn/super-checkers-go/internal/engine"
	"github.com/lgbarn/super-checkers-go/internal/script"
)

// WorkItem represents a script to be played.
type WorkItem struct {
	Name   string // script source, used in reports
	Script *script.Script
	Index  int // Original index for tracking
}

// ProcessResult represents the outcome of playing one script.
type ProcessResult struct {
	Name  string
	Index int
	Game  *engine.Game
	Run   *script.Result // may be partial when Error is set
	Error error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// PlayScript returns a ProcessFunc that plays each script on a fresh game.
// Every game logs through logger with its own game_id.
func PlayScript(logger *zap.Logger, stopOnError bool) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		logger := logger
		if logger != nil {
			logger = logger.With(zap.String("script", item.Name))
		}
		game := engine.NewGame(logger)
		run, err := script.Run(game, item.Script, stopOnError)
		return ProcessResult{
			Name:  item.Name,
			Index: item.Index,
			Game:  game,
			Run:   run,
			Error: err,
		}
	}
}

// Pool manages a pool of workers that play scripts in parallel. Games are
// independent, so each worker owns the games it creates.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool.
// Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
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
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// RunAll plays every item on the pool and returns the results in item
// order. With stopOnFirstError set, items not yet started when a result
// carries an error are skipped and missing from the output.
func RunAll(items []WorkItem, processFunc ProcessFunc, stopOnFirstError bool, opts ...PoolOption) []ProcessResult {
	pool := NewPool(processFunc, opts...)
	pool.Start()

	go func() {
		for _, item := range items {
			pool.Submit(item)
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(items))
	for r := range pool.Results() {
		if r.Error != nil && stopOnFirstError {
			pool.Stop()
		}
		results = append(results, r)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
