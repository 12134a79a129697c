package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// WorkerPool renders image rows in parallel. Rows are handed out through a
// shared queue, so a worker that finishes early takes the next pending row.
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Run calls renderRow once for every row in [0, rows) across the workers.
// rowDone, when set, is called from the calling goroutine only, once per
// finished row, in completion order. Run stops handing out rows when ctx is
// cancelled and returns the context error.
func (wp *WorkerPool) Run(ctx context.Context, rows int, renderRow func(row int), rowDone func(row int)) error {
	g, ctx := errgroup.WithContext(ctx)
	tasks := make(chan int)
	done := make(chan int, rows)

	// Producer
	g.Go(func() error {
		defer close(tasks)
		for row := 0; row < rows; row++ {
			select {
			case tasks <- row:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	workers := min(wp.numWorkers, max(rows, 1))
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for row := range tasks {
				renderRow(row)
				done <- row
			}
			return nil
		})
	}

	errc := make(chan error, 1)
	go func() {
		errc <- g.Wait()
		close(done)
	}()

	for row := range done {
		if rowDone != nil {
			rowDone(row)
		}
	}
	return <-errc
}
