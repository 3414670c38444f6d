// Package workerpool bounds concurrency for expensive outbound work.
// The AI content endpoints submit generation calls through a pool so a
// burst of admin requests cannot open unlimited upstream connections.
package workerpool

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned when submitting to a stopped pool.
var ErrClosed = errors.New("workerpool: pool is closed")

// Pool runs submitted functions on a fixed number of workers.
type Pool struct {
	tasks  chan func()
	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

// New creates a pool with size workers and a queue of queueLen pending
// tasks. Submit blocks once the queue is full, which is the backpressure
// the AI endpoints rely on.
func New(size, queueLen int) *Pool {
	if size < 1 {
		size = 1
	}
	p := &Pool{tasks: make(chan func(), queueLen)}
	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		task()
	}
}

// Submit enqueues fn, blocking if the queue is full or ctx is done first.
func (p *Pool) Submit(ctx context.Context, fn func()) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	p.mu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.tasks <- fn:
		return nil
	}
}

// Run submits fn and waits for it to complete, returning fn's error.
func (p *Pool) Run(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)
	if err := p.Submit(ctx, func() { done <- fn() }); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

// Close stops accepting work and waits for in-flight tasks to finish.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()
	p.wg.Wait()
}
