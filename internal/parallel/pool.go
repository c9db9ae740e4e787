// Package parallel provides the worker pool used to race independently
// seeded solver attempts. It offers controlled concurrency with
// backpressure so a large portfolio cannot exhaust resources, and a
// shutdown path that waits for in-flight attempts to finish.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// ErrPoolShutdown is returned when submitting to a pool that has been
// shut down.
var ErrPoolShutdown = errors.New("worker pool has been shut down")

// WorkerPool runs submitted tasks on a fixed set of goroutines. The
// task channel is buffered so bursts of submissions queue up instead of
// spawning unbounded goroutines; once the buffer fills, Submit blocks
// until a worker frees up.
type WorkerPool struct {
	maxWorkers int
	tasks      chan func()
	workers    sync.WaitGroup
	shutdown   chan struct{}
	once       sync.Once
}

// NewWorkerPool creates a pool with the given number of workers,
// defaulting to the number of CPU cores when maxWorkers is not
// positive.
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	p := &WorkerPool{
		maxWorkers: maxWorkers,
		tasks:      make(chan func(), maxWorkers),
		shutdown:   make(chan struct{}),
	}
	for i := 0; i < maxWorkers; i++ {
		p.workers.Add(1)
		go p.worker()
	}
	return p
}

// worker drains the task channel until shutdown.
func (p *WorkerPool) worker() {
	defer p.workers.Done()
	for {
		select {
		case task := <-p.tasks:
			if task != nil {
				task()
			}
		case <-p.shutdown:
			return
		}
	}
}

// Submit queues a task for execution, blocking while the pool is
// saturated. Returns the context's error if ctx is cancelled first, or
// ErrPoolShutdown if the pool has been shut down.
func (p *WorkerPool) Submit(ctx context.Context, task func()) error {
	select {
	case <-p.shutdown:
		return ErrPoolShutdown
	default:
	}
	select {
	case p.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.shutdown:
		return ErrPoolShutdown
	}
}

// Shutdown stops the pool and waits for running tasks to complete.
// Safe to call more than once.
func (p *WorkerPool) Shutdown() {
	p.once.Do(func() {
		close(p.shutdown)
		p.workers.Wait()
	})
}
