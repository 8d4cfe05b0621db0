// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"sync"

	"alnedit-core/records"
	"alnedit/internal/engine"
)

// Config controls the worker pool.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

type seqJob struct {
	seq int
	job records.Job
}

type seqResult struct {
	seq int
	res engine.Result
}

// ForEachResult runs every job from feed through proc on cfg.Threads workers
// and calls visit with the results in the order the jobs were fed.
//
// A visit error stops the run: remaining jobs are abandoned and that error
// is returned. Otherwise the first feed error, or ctx.Err() if ctx was
// cancelled, is returned after all fed jobs have been visited.
func ForEachResult(
	ctx context.Context,
	cfg Config,
	feed Feeder,
	proc Processor,
	visit func(engine.Result) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan seqJob, cfg.Threads*2)
	results := make(chan seqResult, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-runCtx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					r := seqResult{seq: j.seq, res: proc.Process(j.job)}
					select {
					case results <- r:
					case <-runCtx.Done():
						return
					}
				}
			}
		}()
	}

	// Feed work
	feedErr := make(chan error, 1)
	go func() {
		defer close(jobs)
		n := 0
		feedErr <- feed(runCtx, func(j records.Job) error {
			select {
			case jobs <- seqJob{seq: n, job: j}:
				n++
				return nil
			case <-runCtx.Done():
				return runCtx.Err()
			}
		})
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector: restore input order
	var (
		verr    error
		next    int
		pending = make(map[int]engine.Result)
	)
	for r := range results {
		pending[r.seq] = r.res
		for {
			res, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if verr != nil {
				continue
			}
			if err := visit(res); err != nil {
				verr = err
				cancel()
			}
		}
	}

	ferr := <-feedErr
	switch {
	case verr != nil:
		return verr
	case ctx.Err() != nil:
		return ctx.Err()
	case ferr != nil && !errors.Is(ferr, context.Canceled):
		return ferr
	}
	return nil
}
