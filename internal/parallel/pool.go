// Package parallel runs independent tasks on a bounded set of goroutines.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Task is a unit of work. The context is the one passed to ExecuteAll.
type Task func(ctx context.Context)

// WorkerPool is a fixed set of goroutines with per-worker queues.
//
// Tasks are distributed round-robin; an idle worker steals from the other
// queues, so one slow task does not hold up the work queued behind it.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan func()

	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case fn := <-own:
			fn()
			continue
		default:
		}

		if fn := p.steal(id); fn != nil {
			fn()
			continue
		}

		select {
		case <-p.done:
			p.drain(own)
			return
		case fn := <-own:
			fn()
		}
	}
}

func (p *WorkerPool) drain(q chan func()) {
	for {
		select {
		case fn := <-q:
			fn()
		default:
			return
		}
	}
}

func (p *WorkerPool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case fn := <-p.queues[i]:
			return fn
		default:
		}
	}
	return nil
}

// ExecuteAll runs every task and waits for them to finish.
//
// Tasks that have not started when ctx is done are skipped, as are all
// tasks once the pool is closed. ExecuteAll returns the number of tasks
// that ran.
func (p *WorkerPool) ExecuteAll(ctx context.Context, tasks []Task) int {
	if len(tasks) == 0 || !p.running.Load() {
		return 0
	}

	var (
		wg  sync.WaitGroup
		ran atomic.Int64
	)
	wg.Add(len(tasks))
	for i, task := range tasks {
		fn := func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			ran.Add(1)
			task(ctx)
		}

		select {
		case p.queues[i%p.workers] <- fn:
		case <-p.done:
			wg.Done()
		case <-ctx.Done():
			wg.Done()
		}
	}
	wg.Wait()
	return int(ran.Load())
}

// Close stops the pool after the queued tasks have run.
// Close is safe to call multiple times but must not race with ExecuteAll.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
