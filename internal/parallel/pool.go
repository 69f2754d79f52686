// Package parallel runs independent conversions on a bounded set of
// goroutines. Each task owns its streams; nothing is shared between tasks
// except what the caller passes in.
package parallel

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/xerrors"
)

// ErrPoolShutdown is returned when trying to submit tasks to a shutdown pool.
var ErrPoolShutdown = xerrors.New("worker pool has been shutdown")

// WorkerPool manages a fixed number of goroutines that execute submitted
// tasks. Submit blocks once every worker is busy and the queue is full.
type WorkerPool struct {
	maxWorkers   int
	taskChan     chan func()
	workerWg     sync.WaitGroup
	shutdownChan chan struct{}
	once         sync.Once
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If maxWorkers is 0 or negative, it defaults to the number of CPU cores.
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	pool := &WorkerPool{
		maxWorkers:   maxWorkers,
		taskChan:     make(chan func(), maxWorkers),
		shutdownChan: make(chan struct{}),
	}

	for i := 0; i < maxWorkers; i++ {
		pool.workerWg.Add(1)
		go pool.worker()
	}

	return pool
}

// Workers returns the number of goroutines in the pool.
func (wp *WorkerPool) Workers() int {
	return wp.maxWorkers
}

func (wp *WorkerPool) worker() {
	defer wp.workerWg.Done()

	for {
		select {
		case task := <-wp.taskChan:
			task()
		case <-wp.shutdownChan:
			return
		}
	}
}

// Submit queues task for execution, blocking while the queue is full.
func (wp *WorkerPool) Submit(ctx context.Context, task func()) error {
	select {
	case <-wp.shutdownChan:
		return ErrPoolShutdown
	default:
	}

	select {
	case wp.taskChan <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.shutdownChan:
		return ErrPoolShutdown
	}
}

// Shutdown stops the workers and waits for running tasks to return. Tasks
// still queued are dropped, so callers that need every result wait for their
// tasks before shutting down.
func (wp *WorkerPool) Shutdown() {
	wp.once.Do(func() {
		close(wp.shutdownChan)
		wp.workerWg.Wait()
	})
}

// Run calls fn for every index in [0, n) on a pool of the given size and
// returns the first error. After the first failure ctx passed to fn is
// cancelled and calls that have not started yet are skipped.
func Run(ctx context.Context, workers, n int, fn func(ctx context.Context, i int) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := NewWorkerPool(workers)
	defer pool.Shutdown()

	var (
		wg    sync.WaitGroup
		once  sync.Once
		first error
	)
	fail := func(err error) {
		once.Do(func() {
			first = err
			cancel()
		})
	}

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			fail(err)
			break
		}
		i := i // per-iteration copy; go.mod targets go1.21 loop semantics
		wg.Add(1)
		err := pool.Submit(ctx, func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			if err := fn(ctx, i); err != nil {
				fail(xerrors.Errorf("task %d: %w", i, err))
			}
		})
		if err != nil {
			wg.Done()
			fail(err)
			break
		}
	}

	wg.Wait()
	return first
}
