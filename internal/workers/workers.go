package workers

import (
	"context"
	"sync"
)

// Workers runs a set of [Worker] implementations as one unit.
type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and returns immediately.
// Workers stop when ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			worker.Run(ctx)
		}(worker)
	}
}

// Wait blocks until every started worker has returned. Used during graceful
// shutdown so in-flight work can finish.
func (w *Workers) Wait() {
	w.wg.Wait()
}
